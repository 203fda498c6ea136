package handler

import (
	"encoding/json"
	"net/http"

	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/ports"
)

type EmployeeHandler struct {
	ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService}
}

// List godoc
// @Summary Список сотрудников
// @Description Возвращает активных сотрудников с подразделением и числом иждивенцев
// @Tags Employees
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.EmployeeResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.EmployeeService.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetByID godoc
// @Summary Сотрудник по id
// @Description Возвращает сотрудника вместе со списком его иждивенцев
// @Tags Employees
// @Produce json
// @Param id path int true "Идентификатор сотрудника"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.EmployeeResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	resp, err := h.EmployeeService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ListByDepartment godoc
// @Summary Сотрудники подразделения
// @Tags Employees
// @Produce json
// @Param departmentId path int true "Идентификатор подразделения"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.EmployeeResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/department/{departmentId} [get]
func (h *EmployeeHandler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	departmentID, err := parseIDParam(r, "departmentId")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный departmentId")
		return
	}

	resp, err := h.EmployeeService.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Create godoc
// @Summary Приём нового сотрудника
// @Description Доступно только пользователям с ролью Admin
// @Tags Employees
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateEmployeeRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.EmployeeResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или занятый email"
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.EmployeeService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// Update godoc
// @Summary Обновление сотрудника
// @Description Частичное обновление: непереданные поля не меняются. Только для Admin
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор сотрудника"
// @Param body body requestresponse.UpdateEmployeeRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.EmployeeResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/{id} [put]
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	var req requestresponse.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	resp, err := h.EmployeeService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Deactivate godoc
// @Summary Деактивация сотрудника
// @Description Мягкое удаление: строка остаётся, is_active сбрасывается. Только для Admin
// @Tags Employees
// @Produce json
// @Param id path int true "Идентификатор сотрудника"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	if err := h.EmployeeService.Deactivate(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "сотрудник деактивирован"})
}

// Purge godoc
// @Summary Окончательное удаление сотрудника
// @Description Удаляет строку из БД вместе с иждивенцами. Только для Admin
// @Tags Employees
// @Produce json
// @Param id path int true "Идентификатор сотрудника"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/{id}/permanent [delete]
func (h *EmployeeHandler) Purge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := parseIDParam(r, "id")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный id")
		return
	}

	if err := h.EmployeeService.Purge(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "сотрудник удалён"})
}

// Search godoc
// @Summary Поиск сотрудников
// @Description Поиск по подстроке в имени, фамилии или email
// @Tags Employees
// @Produce json
// @Param q query string true "Строка поиска"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.EmployeeResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/search [get]
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.EmployeeService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Stats godoc
// @Summary Статистика по сотрудникам
// @Description Итоговые агрегаты и распределение по подразделениям, ответ кэшируется в Redis
// @Tags Employees
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.EmployeeStatsResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/employees/stats [get]
func (h *EmployeeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.EmployeeService.Stats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
