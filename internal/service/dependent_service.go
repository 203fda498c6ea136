package service

import (
	"context"
	"fmt"
	"time"

	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/ports"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/util"
)

type DependentServiceImpl struct {
	dependentRepository ports.DependentRepositoryInterface
	employeeRepository  ports.EmployeeRepositoryInterface
	statsCache          ports.StatsCacheInterface
}

func NewDependentService(
	dependentRepository ports.DependentRepositoryInterface,
	employeeRepository ports.EmployeeRepositoryInterface,
	statsCache ports.StatsCacheInterface,
) *DependentServiceImpl {
	return &DependentServiceImpl{
		dependentRepository: dependentRepository,
		employeeRepository:  employeeRepository,
		statsCache:          statsCache,
	}
}

// List возвращает всех иждивенцев с именами их сотрудников
func (s *DependentServiceImpl) List(ctx context.Context) ([]requestresponse.DependentResponse, error) {
	dependents, err := s.dependentRepository.ListWithEmployee(ctx)
	if err != nil {
		return nil, err
	}

	return toDependentResponses(dependents), nil
}

func (s *DependentServiceImpl) GetByID(ctx context.Context, id int64) (*requestresponse.DependentResponse, error) {
	dependent, err := s.dependentRepository.GetWithEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if dependent == nil {
		return nil, fmt.Errorf("%w: иждивенец не найден", ErrNotFound)
	}

	return toDependentResponse(dependent), nil
}

func (s *DependentServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]requestresponse.DependentResponse, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	dependents, err := s.dependentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return toDependentResponses(dependents), nil
}

func (s *DependentServiceImpl) Create(ctx context.Context, req *requestresponse.CreateDependentRequest) (*requestresponse.DependentResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Relationship == "" {
		return nil, fmt.Errorf("%w: firstName, lastName и relationship обязательны", ErrBadRequest)
	}
	if req.DateOfBirth.After(time.Now()) {
		return nil, fmt.Errorf("%w: дата рождения в будущем", ErrBadRequest)
	}

	employee, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: сотрудник %d не существует", ErrBadRequest, req.EmployeeID)
	}

	dependent := &model.Dependent{
		BaseEntity:           model.BaseEntity{IsActive: true},
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		DateOfBirth:          req.DateOfBirth,
		Relationship:         req.Relationship,
		Gender:               req.Gender,
		IdentificationNumber: req.IdentificationNumber,
		EmployeeID:           req.EmployeeID,
	}

	if err := s.dependentRepository.Add(ctx, dependent); err != nil {
		return nil, util.LogError("ошибка создания иждивенца", err)
	}

	s.invalidateStats(ctx)

	return s.GetByID(ctx, dependent.ID)
}

// Update применяет только переданные поля запроса.
// Перепривязка к другому сотруднику не поддерживается
func (s *DependentServiceImpl) Update(ctx context.Context, id int64, req *requestresponse.UpdateDependentRequest) (*requestresponse.DependentResponse, error) {
	dependent, err := s.dependentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dependent == nil {
		return nil, fmt.Errorf("%w: иждивенец не найден", ErrNotFound)
	}

	if req.FirstName != nil {
		dependent.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		dependent.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		if req.DateOfBirth.After(time.Now()) {
			return nil, fmt.Errorf("%w: дата рождения в будущем", ErrBadRequest)
		}
		dependent.DateOfBirth = *req.DateOfBirth
	}
	if req.Relationship != nil {
		dependent.Relationship = *req.Relationship
	}
	if req.Gender != nil {
		dependent.Gender = req.Gender
	}
	if req.IdentificationNumber != nil {
		dependent.IdentificationNumber = req.IdentificationNumber
	}

	if _, err := s.dependentRepository.Update(ctx, dependent); err != nil {
		return nil, util.LogError("ошибка обновления иждивенца", err)
	}

	return s.GetByID(ctx, id)
}

func (s *DependentServiceImpl) Deactivate(ctx context.Context, id int64) error {
	dependent, err := s.dependentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dependent == nil {
		return fmt.Errorf("%w: иждивенец не найден", ErrNotFound)
	}

	dependent.IsActive = false
	if _, err := s.dependentRepository.Update(ctx, dependent); err != nil {
		return util.LogError("ошибка деактивации иждивенца", err)
	}

	s.invalidateStats(ctx)
	return nil
}

func (s *DependentServiceImpl) Purge(ctx context.Context, id int64) error {
	deleted, err := s.dependentRepository.DeleteByID(ctx, id)
	if err != nil {
		return util.LogError("ошибка удаления иждивенца", err)
	}
	if !deleted {
		return fmt.Errorf("%w: иждивенец не найден", ErrNotFound)
	}

	s.invalidateStats(ctx)
	return nil
}

// CountByEmployee : число активных иждивенцев сотрудника
func (s *DependentServiceImpl) CountByEmployee(ctx context.Context, employeeID int64) (*requestresponse.DependentCountResponse, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	count, err := s.dependentRepository.CountActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &requestresponse.DependentCountResponse{
		EmployeeID: employeeID,
		Count:      int(count),
	}, nil
}

func (s *DependentServiceImpl) checkEmployee(ctx context.Context, employeeID int64) error {
	employee, err := s.employeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("%w: сотрудник не найден", ErrNotFound)
	}
	return nil
}

// invalidateStats : статистика сотрудников включает число иждивенцев
func (s *DependentServiceImpl) invalidateStats(ctx context.Context) {
	_ = s.statsCache.Invalidate(ctx, repository.EmployeeStatsKey)
}

func toDependentResponse(dependent *repository.DependentWithEmployee) *requestresponse.DependentResponse {
	return &requestresponse.DependentResponse{
		ID:                   dependent.ID,
		FirstName:            dependent.FirstName,
		LastName:             dependent.LastName,
		FullName:             dependent.FullName(),
		DateOfBirth:          dependent.DateOfBirth,
		Age:                  dependent.Age(),
		Relationship:         dependent.Relationship,
		Gender:               dependent.Gender,
		IdentificationNumber: dependent.IdentificationNumber,
		EmployeeID:           dependent.EmployeeID,
		EmployeeName:         dependent.EmployeeName,
		CreatedAt:            dependent.CreatedAt,
		UpdatedAt:            dependent.UpdatedAt,
		IsActive:             dependent.IsActive,
	}
}

func toDependentResponses(dependents []repository.DependentWithEmployee) []requestresponse.DependentResponse {
	responses := make([]requestresponse.DependentResponse, 0, len(dependents))
	for i := range dependents {
		responses = append(responses, *toDependentResponse(&dependents[i]))
	}
	return responses
}
