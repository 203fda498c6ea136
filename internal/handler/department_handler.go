package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/ports"

	"github.com/go-chi/chi/v5"
)

type DepartmentHandler struct {
	ports.DepartmentService
}

func NewDepartmentHandler(departmentService ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService}
}

// List godoc
// @Summary Список подразделений
// @Description Возвращает активные подразделения с количеством сотрудников
// @Tags Departments
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.DepartmentResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments [get]
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.DepartmentService.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetByID godoc
// @Summary Подразделение по id
// @Description Возвращает подразделение вместе со списком его сотрудников
// @Tags Departments
// @Produce json
// @Param id path int true "Идентификатор подразделения"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DepartmentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/{id} [get]
func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	resp, err := h.DepartmentService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetByCode godoc
// @Summary Подразделение по коду
// @Tags Departments
// @Produce json
// @Param code path string true "Код подразделения"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DepartmentResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/code/{code} [get]
func (h *DepartmentHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	code := chi.URLParam(r, "code")
	if code == "" {
		sendErrorResponse(w, http.StatusBadRequest, "код не указан")
		return
	}

	resp, err := h.DepartmentService.GetByCode(r.Context(), code)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Create godoc
// @Summary Создание подразделения
// @Description Доступно только пользователям с ролью Admin
// @Tags Departments
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateDepartmentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.DepartmentResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или занятый код"
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments [post]
func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.DepartmentService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// Update godoc
// @Summary Обновление подразделения
// @Description Частичное обновление: непереданные поля не меняются. Только для Admin
// @Tags Departments
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор подразделения"
// @Param body body requestresponse.UpdateDepartmentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DepartmentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/{id} [put]
func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	var req requestresponse.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.DepartmentService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Deactivate godoc
// @Summary Деактивация подразделения
// @Description Мягкое удаление: строка остаётся, is_active сбрасывается. Только для Admin
// @Tags Departments
// @Produce json
// @Param id path int true "Идентификатор подразделения"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/{id} [delete]
func (h *DepartmentHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	if err := h.DepartmentService.Deactivate(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "подразделение деактивировано"})
}

// Purge godoc
// @Summary Окончательное удаление подразделения
// @Description Удаляет строку из БД, сотрудники остаются без подразделения. Только для Admin
// @Tags Departments
// @Produce json
// @Param id path int true "Идентификатор подразделения"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/{id}/permanent [delete]
func (h *DepartmentHandler) Purge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	if err := h.DepartmentService.Purge(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "подразделение удалено"})
}

// Search godoc
// @Summary Поиск подразделений
// @Description Поиск по подстроке в названии или коде
// @Tags Departments
// @Produce json
// @Param q query string true "Строка поиска"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.DepartmentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/search [get]
func (h *DepartmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.DepartmentService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Stats godoc
// @Summary Статистика по подразделениям
// @Description Агрегаты по всем подразделениям, ответ кэшируется в Redis
// @Tags Departments
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DepartmentStatsResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/stats [get]
func (h *DepartmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.DepartmentService.Stats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// TransferEmployees godoc
// @Summary Перевод сотрудников между подразделениями
// @Description Переводит перечисленных сотрудников целиком: либо всех, либо никого. Только для Admin
// @Tags Departments
// @Accept json
// @Produce json
// @Param fromId path int true "Исходное подразделение"
// @Param toId path int true "Целевое подразделение"
// @Param body body requestresponse.TransferEmployeesRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.TransferEmployeesResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/departments/{fromId}/transfer/{toId} [post]
func (h *DepartmentHandler) TransferEmployees(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	fromID, err := parseIDParam(r, "fromId")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный fromId")
		return
	}

	toID, err := parseIDParam(r, "toId")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный toId")
		return
	}

	var req requestresponse.TransferEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.DepartmentService.TransferEmployees(r.Context(), fromID, toID, req.EmployeeIDs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
