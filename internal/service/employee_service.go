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

type EmployeeServiceImpl struct {
	employeeRepository   ports.EmployeeRepositoryInterface
	departmentRepository ports.DepartmentRepositoryInterface
	dependentRepository  ports.DependentRepositoryInterface
	statsCache           ports.StatsCacheInterface
}

func NewEmployeeService(
	employeeRepository ports.EmployeeRepositoryInterface,
	departmentRepository ports.DepartmentRepositoryInterface,
	dependentRepository ports.DependentRepositoryInterface,
	statsCache ports.StatsCacheInterface,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepository:   employeeRepository,
		departmentRepository: departmentRepository,
		dependentRepository:  dependentRepository,
		statsCache:           statsCache,
	}
}

// List возвращает активных сотрудников с подразделением и числом иждивенцев
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]requestresponse.EmployeeResponse, error) {
	employees, err := s.employeeRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponses(employees), nil
}

// GetByID возвращает сотрудника вместе со списком его иждивенцев
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (*requestresponse.EmployeeResponse, error) {
	employee, err := s.employeeRepository.GetWithDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: сотрудник не найден", ErrNotFound)
	}

	dependents, err := s.dependentRepository.ListByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toEmployeeResponse(employee)
	response.Dependents = toDependentResponses(dependents)
	return response, nil
}

func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, departmentID int64) ([]requestresponse.EmployeeResponse, error) {
	department, err := s.departmentRepository.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, fmt.Errorf("%w: подразделение не найдено", ErrNotFound)
	}

	employees, err := s.employeeRepository.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponses(employees), nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req *requestresponse.CreateEmployeeRequest) (*requestresponse.EmployeeResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: firstName, lastName и email обязательны", ErrBadRequest)
	}
	if req.Salary < 0 {
		return nil, fmt.Errorf("%w: зарплата не может быть отрицательной", ErrBadRequest)
	}

	taken, err := s.employeeRepository.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email %s уже занят", ErrConflict, req.Email)
	}

	if req.DepartmentID != nil {
		if err := s.checkDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	employee := &model.Employee{
		BaseEntity:   model.BaseEntity{IsActive: true},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		HireDate:     req.HireDate,
		Position:     req.Position,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}

	if err := s.employeeRepository.Add(ctx, employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %s уже занят", ErrConflict, req.Email)
		}
		return nil, util.LogError("ошибка создания сотрудника", err)
	}

	s.invalidateStats(ctx)

	return s.GetByID(ctx, employee.ID)
}

// Update применяет только переданные поля запроса
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req *requestresponse.UpdateEmployeeRequest) (*requestresponse.EmployeeResponse, error) {
	employee, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: сотрудник не найден", ErrNotFound)
	}

	if req.Email != nil && *req.Email != employee.Email {
		taken, err := s.employeeRepository.EmailTaken(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email %s уже занят", ErrConflict, *req.Email)
		}
		employee.Email = *req.Email
	}
	if req.DepartmentID != nil {
		if err := s.checkDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		employee.DepartmentID = req.DepartmentID
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = req.PhoneNumber
	}
	if req.HireDate != nil {
		employee.HireDate = *req.HireDate
	}
	if req.Position != nil {
		employee.Position = req.Position
	}
	if req.Salary != nil {
		if *req.Salary < 0 {
			return nil, fmt.Errorf("%w: зарплата не может быть отрицательной", ErrBadRequest)
		}
		employee.Salary = *req.Salary
	}

	if _, err := s.employeeRepository.Update(ctx, employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email уже занят", ErrConflict)
		}
		return nil, util.LogError("ошибка обновления сотрудника", err)
	}

	s.invalidateStats(ctx)

	return s.GetByID(ctx, id)
}

// Deactivate помечает сотрудника неактивным, его иждивенцы не затрагиваются
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id int64) error {
	employee, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("%w: сотрудник не найден", ErrNotFound)
	}

	employee.IsActive = false
	if _, err := s.employeeRepository.Update(ctx, employee); err != nil {
		return util.LogError("ошибка деактивации сотрудника", err)
	}

	s.invalidateStats(ctx)
	return nil
}

// Purge удаляет строку сотрудника; иждивенцы удаляются каскадно на уровне БД
func (s *EmployeeServiceImpl) Purge(ctx context.Context, id int64) error {
	deleted, err := s.employeeRepository.DeleteByID(ctx, id)
	if err != nil {
		return util.LogError("ошибка удаления сотрудника", err)
	}
	if !deleted {
		return fmt.Errorf("%w: сотрудник не найден", ErrNotFound)
	}

	s.invalidateStats(ctx)
	return nil
}

// Search : поиск активных сотрудников по имени, фамилии или email
func (s *EmployeeServiceImpl) Search(ctx context.Context, query string) ([]requestresponse.EmployeeResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: пустая строка поиска", ErrBadRequest)
	}

	employees, err := s.employeeRepository.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponses(employees), nil
}

// Stats отдаёт статистику из Redis, при промахе пересчитывает из БД
func (s *EmployeeServiceImpl) Stats(ctx context.Context) (*requestresponse.EmployeeStatsResponse, error) {
	var cached requestresponse.EmployeeStatsResponse
	hit, err := s.statsCache.Get(ctx, repository.EmployeeStatsKey, &cached)
	if err == nil && hit {
		return &cached, nil
	}

	totals, byDepartment, err := s.employeeRepository.Stats(ctx)
	if err != nil {
		return nil, err
	}

	response := &requestresponse.EmployeeStatsResponse{
		TotalEmployees:        totals.TotalEmployees,
		TotalDependents:       totals.TotalDependents,
		AverageSalary:         totals.AverageSalary,
		EmployeesByDepartment: make([]requestresponse.DepartmentCountItem, 0, len(byDepartment)),
	}
	for _, row := range byDepartment {
		response.EmployeesByDepartment = append(response.EmployeesByDepartment, requestresponse.DepartmentCountItem{
			Department: row.Department,
			Count:      row.Count,
		})
	}

	// недоступность кэша не мешает отдать ответ
	_ = s.statsCache.Set(ctx, repository.EmployeeStatsKey, response)

	return response, nil
}

func (s *EmployeeServiceImpl) checkDepartment(ctx context.Context, departmentID int64) error {
	department, err := s.departmentRepository.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return fmt.Errorf("%w: подразделение %d не существует", ErrBadRequest, departmentID)
	}
	return nil
}

func (s *EmployeeServiceImpl) invalidateStats(ctx context.Context) {
	_ = s.statsCache.Invalidate(ctx, repository.EmployeeStatsKey, repository.DepartmentStatsKey)
}

func toEmployeeResponse(employee *repository.EmployeeWithDepartment) *requestresponse.EmployeeResponse {
	return &requestresponse.EmployeeResponse{
		ID:              employee.ID,
		FirstName:       employee.FirstName,
		LastName:        employee.LastName,
		FullName:        employee.FullName(),
		Email:           employee.Email,
		PhoneNumber:     employee.PhoneNumber,
		HireDate:        employee.HireDate,
		Position:        employee.Position,
		Salary:          employee.Salary,
		DepartmentID:    employee.DepartmentID,
		DepartmentName:  employee.DepartmentName,
		DependentsCount: employee.DependentsCount,
		CreatedAt:       employee.CreatedAt,
		UpdatedAt:       employee.UpdatedAt,
		IsActive:        employee.IsActive,
	}
}

func toEmployeeResponses(employees []repository.EmployeeWithDepartment) []requestresponse.EmployeeResponse {
	responses := make([]requestresponse.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *toEmployeeResponse(&employees[i]))
	}
	return responses
}
