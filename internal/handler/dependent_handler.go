package handler

import (
	"encoding/json"
	"net/http"

	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/ports"
)

type DependentHandler struct {
	ports.DependentService
}

func NewDependentHandler(dependentService ports.DependentService) *DependentHandler {
	return &DependentHandler{dependentService}
}

// List godoc
// @Summary Список иждивенцев
// @Description Возвращает всех иждивенцев с именами их сотрудников
// @Tags Dependents
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.DependentResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents [get]
func (h *DependentHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.DependentService.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetByID godoc
// @Summary Иждивенец по id
// @Tags Dependents
// @Produce json
// @Param id path int true "Идентификатор иждивенца"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DependentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents/{id} [get]
func (h *DependentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	resp, err := h.DependentService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ListByEmployee godoc
// @Summary Иждивенцы сотрудника
// @Tags Dependents
// @Produce json
// @Param employeeId path int true "Идентификатор сотрудника"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.DependentResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents/employee/{employeeId} [get]
func (h *DependentHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	employeeID, err := parseIDParam(r, "employeeId")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный employeeId")
		return
	}

	resp, err := h.DependentService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// CountByEmployee godoc
// @Summary Число иждивенцев сотрудника
// @Description Считает только активных иждивенцев
// @Tags Dependents
// @Produce json
// @Param employeeId path int true "Идентификатор сотрудника"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DependentCountResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents/employee/{employeeId}/count [get]
func (h *DependentHandler) CountByEmployee(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	employeeID, err := parseIDParam(r, "employeeId")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный employeeId")
		return
	}

	resp, err := h.DependentService.CountByEmployee(r.Context(), employeeID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Create godoc
// @Summary Добавление иждивенца
// @Description Доступно только пользователям с ролью Admin
// @Tags Dependents
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateDependentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.DependentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents [post]
func (h *DependentHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateDependentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.DependentService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// Update godoc
// @Summary Обновление иждивенца
// @Description Частичное обновление: непереданные поля не меняются. Только для Admin
// @Tags Dependents
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор иждивенца"
// @Param body body requestresponse.UpdateDependentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DependentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents/{id} [put]
func (h *DependentHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	var req requestresponse.UpdateDependentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.DependentService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Deactivate godoc
// @Summary Деактивация иждивенца
// @Description Мягкое удаление: строка остаётся, is_active сбрасывается. Только для Admin
// @Tags Dependents
// @Produce json
// @Param id path int true "Идентификатор иждивенца"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents/{id} [delete]
func (h *DependentHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	if err := h.DependentService.Deactivate(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "иждивенец деактивирован"})
}

// Purge godoc
// @Summary Окончательное удаление иждивенца
// @Description Удаляет строку из БД. Только для Admin
// @Tags Dependents
// @Produce json
// @Param id path int true "Идентификатор иждивенца"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/dependents/{id}/permanent [delete]
func (h *DependentHandler) Purge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	if err := h.DependentService.Purge(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "иждивенец удалён"})
}
