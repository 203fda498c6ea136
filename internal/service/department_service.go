package service

import (
	"context"
	"fmt"

	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/ports"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/util"
)

type DepartmentServiceImpl struct {
	departmentRepository ports.DepartmentRepositoryInterface
	employeeRepository   ports.EmployeeRepositoryInterface
	statsCache           ports.StatsCacheInterface
}

func NewDepartmentService(
	departmentRepository ports.DepartmentRepositoryInterface,
	employeeRepository ports.EmployeeRepositoryInterface,
	statsCache ports.StatsCacheInterface,
) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{
		departmentRepository: departmentRepository,
		employeeRepository:   employeeRepository,
		statsCache:           statsCache,
	}
}

// List возвращает активные подразделения с количеством сотрудников,
// без развёрнутых списков сотрудников
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]requestresponse.DepartmentResponse, error) {
	departments, err := s.departmentRepository.Find(ctx, repository.Where("is_active", repository.OpEq, true))
	if err != nil {
		return nil, err
	}

	counts, err := s.departmentRepository.EmployeeCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]requestresponse.DepartmentResponse, 0, len(departments))
	for i := range departments {
		response := toDepartmentResponse(&departments[i])
		response.EmployeeCount = counts[departments[i].ID]
		responses = append(responses, *response)
	}

	return responses, nil
}

// GetByID возвращает подразделение вместе со списком его активных сотрудников
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id int64) (*requestresponse.DepartmentResponse, error) {
	department, err := s.departmentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, fmt.Errorf("%w: подразделение не найдено", ErrNotFound)
	}

	return s.withEmployees(ctx, department)
}

// GetByCode : то же, что GetByID, но по уникальному коду подразделения
func (s *DepartmentServiceImpl) GetByCode(ctx context.Context, code string) (*requestresponse.DepartmentResponse, error) {
	department, err := s.departmentRepository.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, fmt.Errorf("%w: подразделение не найдено", ErrNotFound)
	}

	return s.withEmployees(ctx, department)
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, req *requestresponse.CreateDepartmentRequest) (*requestresponse.DepartmentResponse, error) {
	if req.Name == "" || req.Code == "" {
		return nil, fmt.Errorf("%w: name и code обязательны", ErrBadRequest)
	}

	existing, err := s.departmentRepository.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: подразделение с кодом %s уже существует", ErrConflict, req.Code)
	}

	department := &model.Department{
		BaseEntity:  model.BaseEntity{IsActive: true},
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Location:    req.Location,
	}

	if err := s.departmentRepository.Add(ctx, department); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: подразделение с кодом %s уже существует", ErrConflict, req.Code)
		}
		return nil, util.LogError("ошибка создания подразделения", err)
	}

	s.invalidateStats(ctx)

	return toDepartmentResponse(department), nil
}

// Update применяет только переданные поля запроса
func (s *DepartmentServiceImpl) Update(ctx context.Context, id int64, req *requestresponse.UpdateDepartmentRequest) (*requestresponse.DepartmentResponse, error) {
	department, err := s.departmentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, fmt.Errorf("%w: подразделение не найдено", ErrNotFound)
	}

	if req.Code != nil && *req.Code != department.Code {
		existing, err := s.departmentRepository.FindByCode(ctx, *req.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: подразделение с кодом %s уже существует", ErrConflict, *req.Code)
		}
		department.Code = *req.Code
	}
	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = req.Description
	}
	if req.Location != nil {
		department.Location = req.Location
	}

	if _, err := s.departmentRepository.Update(ctx, department); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: код подразделения уже занят", ErrConflict)
		}
		return nil, util.LogError("ошибка обновления подразделения", err)
	}

	s.invalidateStats(ctx)

	return s.withEmployees(ctx, department)
}

// Deactivate помечает подразделение неактивным, сотрудники остаются привязанными
func (s *DepartmentServiceImpl) Deactivate(ctx context.Context, id int64) error {
	department, err := s.departmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if department == nil {
		return fmt.Errorf("%w: подразделение не найдено", ErrNotFound)
	}

	department.IsActive = false
	if _, err := s.departmentRepository.Update(ctx, department); err != nil {
		return util.LogError("ошибка деактивации подразделения", err)
	}

	s.invalidateStats(ctx)
	return nil
}

// Purge удаляет строку подразделения; внешний ключ сотрудников
// сбрасывается в NULL на уровне БД
func (s *DepartmentServiceImpl) Purge(ctx context.Context, id int64) error {
	deleted, err := s.departmentRepository.DeleteByID(ctx, id)
	if err != nil {
		return util.LogError("ошибка удаления подразделения", err)
	}
	if !deleted {
		return fmt.Errorf("%w: подразделение не найдено", ErrNotFound)
	}

	s.invalidateStats(ctx)
	return nil
}

// Search : поиск по подстроке в названии или коде
func (s *DepartmentServiceImpl) Search(ctx context.Context, query string) ([]requestresponse.DepartmentResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: пустая строка поиска", ErrBadRequest)
	}

	departments, err := s.departmentRepository.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	counts, err := s.departmentRepository.EmployeeCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]requestresponse.DepartmentResponse, 0, len(departments))
	for i := range departments {
		response := toDepartmentResponse(&departments[i])
		response.EmployeeCount = counts[departments[i].ID]
		responses = append(responses, *response)
	}

	return responses, nil
}

// Stats отдаёт статистику из Redis, при промахе пересчитывает из БД
func (s *DepartmentServiceImpl) Stats(ctx context.Context) (*requestresponse.DepartmentStatsResponse, error) {
	var cached requestresponse.DepartmentStatsResponse
	hit, err := s.statsCache.Get(ctx, repository.DepartmentStatsKey, &cached)
	if err == nil && hit {
		return &cached, nil
	}

	rows, err := s.departmentRepository.Stats(ctx)
	if err != nil {
		return nil, err
	}

	response := &requestresponse.DepartmentStatsResponse{
		Departments: make([]requestresponse.DepartmentStatsItem, 0, len(rows)),
	}
	for _, row := range rows {
		response.TotalDepartments++
		response.TotalEmployees += row.EmployeeCount
		response.Departments = append(response.Departments, requestresponse.DepartmentStatsItem{
			Name:          row.Name,
			Code:          row.Code,
			EmployeeCount: row.EmployeeCount,
			AverageSalary: row.AverageSalary,
		})
	}
	if response.TotalDepartments > 0 {
		response.AverageEmployeesPerDepartment = float64(response.TotalEmployees) / float64(response.TotalDepartments)
	}

	// недоступность кэша не мешает отдать ответ
	_ = s.statsCache.Set(ctx, repository.DepartmentStatsKey, response)

	return response, nil
}

// TransferEmployees переводит сотрудников между подразделениями атомарно:
// либо переводятся все перечисленные, либо никто
func (s *DepartmentServiceImpl) TransferEmployees(ctx context.Context, fromID, toID int64, employeeIDs []int64) (*requestresponse.TransferEmployeesResponse, error) {
	if len(employeeIDs) == 0 {
		return nil, fmt.Errorf("%w: список сотрудников пуст", ErrBadRequest)
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: исходное и целевое подразделения совпадают", ErrBadRequest)
	}

	from, err := s.departmentRepository.GetByID(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return nil, fmt.Errorf("%w: исходное подразделение не найдено", ErrNotFound)
	}

	to, err := s.departmentRepository.GetByID(ctx, toID)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, fmt.Errorf("%w: целевое подразделение не найдено", ErrNotFound)
	}

	inDepartment, err := s.departmentRepository.CountInDepartment(ctx, employeeIDs, fromID)
	if err != nil {
		return nil, err
	}
	if inDepartment != int64(len(employeeIDs)) {
		return nil, fmt.Errorf("%w: не все сотрудники числятся в исходном подразделении", ErrBadRequest)
	}

	transferred, err := s.departmentRepository.TransferEmployees(ctx, fromID, toID, employeeIDs)
	if err != nil {
		return nil, util.LogError("ошибка перевода сотрудников", err)
	}

	names := make([]string, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		employee, err := s.employeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if employee != nil {
			names = append(names, employee.FullName())
		}
	}

	s.invalidateStats(ctx)

	return &requestresponse.TransferEmployeesResponse{
		Message:     fmt.Sprintf("переведено сотрудников: %d", transferred),
		From:        from.Name,
		To:          to.Name,
		Transferred: names,
	}, nil
}

// withEmployees дополняет ответ активными сотрудниками подразделения
func (s *DepartmentServiceImpl) withEmployees(ctx context.Context, department *model.Department) (*requestresponse.DepartmentResponse, error) {
	employees, err := s.employeeRepository.ListByDepartment(ctx, department.ID)
	if err != nil {
		return nil, err
	}

	response := toDepartmentResponse(department)
	response.EmployeeCount = len(employees)
	response.Employees = make([]requestresponse.DepartmentEmployeeItem, 0, len(employees))
	for i := range employees {
		employee := &employees[i]
		response.Employees = append(response.Employees, requestresponse.DepartmentEmployeeItem{
			ID:       employee.ID,
			FullName: employee.FullName(),
			Email:    employee.Email,
			Position: employee.Position,
			Salary:   employee.Salary,
		})
	}

	return response, nil
}

// invalidateStats сбрасывает оба кэша статистики: перевод и удаление
// затрагивают и подразделения, и распределение сотрудников
func (s *DepartmentServiceImpl) invalidateStats(ctx context.Context) {
	_ = s.statsCache.Invalidate(ctx, repository.DepartmentStatsKey, repository.EmployeeStatsKey)
}

func toDepartmentResponse(department *model.Department) *requestresponse.DepartmentResponse {
	return &requestresponse.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Code:        department.Code,
		Description: department.Description,
		Location:    department.Location,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
		IsActive:    department.IsActive,
	}
}
