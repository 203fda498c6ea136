package service_test

import (
	"context"
	"testing"
	"time"

	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

// MockDependentRepository
type MockDependentRepository struct {
	mock.Mock
}

func (m *MockDependentRepository) ListWithEmployee(ctx context.Context) ([]repository.DependentWithEmployee, error) {
	args := m.Called(ctx)
	if ds, ok := args.Get(0).([]repository.DependentWithEmployee); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) GetWithEmployee(ctx context.Context, id int64) (*repository.DependentWithEmployee, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*repository.DependentWithEmployee); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]repository.DependentWithEmployee, error) {
	args := m.Called(ctx, employeeID)
	if ds, ok := args.Get(0).([]repository.DependentWithEmployee); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) CountActiveByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

// ==== ЗАГЛУШКИ, ЧТОБЫ ИМПЛЕМЕНТИРОВАТЬ ИНТЕРФЕЙСЫ ====
func (m *MockDependentRepository) GetAll(ctx context.Context) ([]model.Dependent, error) {
	args := m.Called(ctx)
	if ds, ok := args.Get(0).([]model.Dependent); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) GetByID(ctx context.Context, id int64) (*model.Dependent, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Dependent); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) Find(ctx context.Context, filters ...repository.Filter) ([]model.Dependent, error) {
	args := m.Called(ctx, filters)
	if ds, ok := args.Get(0).([]model.Dependent); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) FirstOrDefault(ctx context.Context, filters ...repository.Filter) (*model.Dependent, error) {
	args := m.Called(ctx, filters)
	if d, ok := args.Get(0).(*model.Dependent); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) Add(ctx context.Context, entity *model.Dependent) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockDependentRepository) AddRange(ctx context.Context, entities []*model.Dependent) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockDependentRepository) Update(ctx context.Context, entity *model.Dependent) (*model.Dependent, error) {
	args := m.Called(ctx, entity)
	if d, ok := args.Get(0).(*model.Dependent); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDependentRepository) UpdateRange(ctx context.Context, entities []*model.Dependent) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockDependentRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDependentRepository) Delete(ctx context.Context, entity *model.Dependent) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *MockDependentRepository) DeleteRange(ctx context.Context, entities []*model.Dependent) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockDependentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDependentRepository) CountWhere(ctx context.Context, filters ...repository.Filter) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDependentRepository) Exists(ctx context.Context, filters ...repository.Filter) (bool, error) {
	args := m.Called(ctx, filters)
	return args.Bool(0), args.Error(1)
}

// ===== HELPERS =====

func newTestEmployeeService() (*service.EmployeeServiceImpl, *MockEmployeeRepository, *MockDepartmentRepository, *MockDependentRepository, *MockStatsCache) {
	mockEmployeeRepo := new(MockEmployeeRepository)
	mockDepartmentRepo := new(MockDepartmentRepository)
	mockDependentRepo := new(MockDependentRepository)
	mockCache := new(MockStatsCache)

	svc := service.NewEmployeeService(mockEmployeeRepo, mockDepartmentRepo, mockDependentRepo, mockCache)

	return svc, mockEmployeeRepo, mockDepartmentRepo, mockDependentRepo, mockCache
}

func testCreateEmployeeRequest() *requestresponse.CreateEmployeeRequest {
	return &requestresponse.CreateEmployeeRequest{
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan.petrov@company.com",
		HireDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Salary:    100000,
	}
}

// ===== TESTS =====

// 1. Создание: email уже занят
func TestCreateEmployee_EmailTaken(t *testing.T) {
	svc, mockEmployeeRepo, _, _, _ := newTestEmployeeService()
	ctx := context.Background()

	mockEmployeeRepo.On("EmailTaken", ctx, "ivan.petrov@company.com", int64(0)).Return(true, nil)

	_, err := svc.Create(ctx, testCreateEmployeeRequest())

	assert.ErrorIs(t, err, service.ErrConflict)
	mockEmployeeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// 2. Создание: несуществующее подразделение
func TestCreateEmployee_UnknownDepartment(t *testing.T) {
	svc, mockEmployeeRepo, mockDepartmentRepo, _, _ := newTestEmployeeService()
	ctx := context.Background()

	req := testCreateEmployeeRequest()
	departmentID := int64(42)
	req.DepartmentID = &departmentID

	mockEmployeeRepo.On("EmailTaken", ctx, req.Email, int64(0)).Return(false, nil)
	mockDepartmentRepo.On("GetByID", ctx, departmentID).Return(nil, nil)

	_, err := svc.Create(ctx, req)

	assert.ErrorIs(t, err, service.ErrBadRequest)
	mockEmployeeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// 3. Создание: успех, кэш статистики сбрасывается
func TestCreateEmployee_Success(t *testing.T) {
	svc, mockEmployeeRepo, _, mockDependentRepo, mockCache := newTestEmployeeService()
	ctx := context.Background()

	req := testCreateEmployeeRequest()

	mockEmployeeRepo.On("EmailTaken", ctx, req.Email, int64(0)).Return(false, nil)
	mockEmployeeRepo.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Employee).ID = 10
		}).
		Return(nil)
	mockCache.On("Invalidate", ctx, mock.Anything).Return(nil)
	mockEmployeeRepo.On("GetWithDepartment", ctx, int64(10)).
		Return(&repository.EmployeeWithDepartment{
			Employee: model.Employee{
				BaseEntity: model.BaseEntity{ID: 10, IsActive: true},
				FirstName:  req.FirstName,
				LastName:   req.LastName,
				Email:      req.Email,
				Salary:     req.Salary,
			},
		}, nil)
	mockDependentRepo.On("ListByEmployee", ctx, int64(10)).Return([]repository.DependentWithEmployee{}, nil)

	resp, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Иван Петров", resp.FullName)
	assert.True(t, resp.IsActive)
	mockCache.AssertExpectations(t)
}

// 4. Создание: отрицательная зарплата
func TestCreateEmployee_NegativeSalary(t *testing.T) {
	svc, mockEmployeeRepo, _, _, _ := newTestEmployeeService()

	req := testCreateEmployeeRequest()
	req.Salary = -1

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, service.ErrBadRequest)
	mockEmployeeRepo.AssertNotCalled(t, "EmailTaken", mock.Anything, mock.Anything, mock.Anything)
}

// 5. Получение по id: не найдено
func TestGetEmployeeByID_NotFound(t *testing.T) {
	svc, mockEmployeeRepo, _, _, _ := newTestEmployeeService()
	ctx := context.Background()

	mockEmployeeRepo.On("GetWithDepartment", ctx, int64(99)).Return(nil, nil)

	_, err := svc.GetByID(ctx, 99)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// 6. Обновление: смена email на занятый
func TestUpdateEmployee_EmailTaken(t *testing.T) {
	svc, mockEmployeeRepo, _, _, _ := newTestEmployeeService()
	ctx := context.Background()

	existing := &model.Employee{
		BaseEntity: model.BaseEntity{ID: 10, IsActive: true},
		FirstName:  "Иван",
		LastName:   "Петров",
		Email:      "ivan.petrov@company.com",
	}
	newEmail := "anna.sidorova@company.com"

	mockEmployeeRepo.On("GetByID", ctx, int64(10)).Return(existing, nil)
	mockEmployeeRepo.On("EmailTaken", ctx, newEmail, int64(10)).Return(true, nil)

	_, err := svc.Update(ctx, 10, &requestresponse.UpdateEmployeeRequest{Email: &newEmail})

	assert.ErrorIs(t, err, service.ErrConflict)
	mockEmployeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// 7. Статистика: промах кэша — пересчёт из БД
func TestEmployeeStats_CacheMiss(t *testing.T) {
	svc, mockEmployeeRepo, _, _, mockCache := newTestEmployeeService()
	ctx := context.Background()

	totals := &repository.EmployeeStatsRow{TotalEmployees: 8, TotalDependents: 3, AverageSalary: 110000}
	byDepartment := []repository.DepartmentCountRow{
		{Department: "Технологии", Count: 6},
		{Department: "Кадры", Count: 2},
	}

	mockCache.On("Get", ctx, repository.EmployeeStatsKey, mock.Anything).Return(false, nil)
	mockEmployeeRepo.On("Stats", ctx).Return(totals, byDepartment, nil)
	mockCache.On("Set", ctx, repository.EmployeeStatsKey, mock.Anything).Return(nil)

	resp, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 8, resp.TotalEmployees)
	assert.Equal(t, 3, resp.TotalDependents)
	require.Len(t, resp.EmployeesByDepartment, 2)
	assert.Equal(t, "Технологии", resp.EmployeesByDepartment[0].Department)
	mockCache.AssertExpectations(t)
}

// 8. Окончательное удаление: не найдено
func TestPurgeEmployee_NotFound(t *testing.T) {
	svc, mockEmployeeRepo, _, _, _ := newTestEmployeeService()
	ctx := context.Background()

	mockEmployeeRepo.On("DeleteByID", ctx, int64(99)).Return(false, nil)

	err := svc.Purge(ctx, 99)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// 9. Поиск: пустая строка запроса
func TestSearchEmployees_EmptyQuery(t *testing.T) {
	svc, _, _, _, _ := newTestEmployeeService()

	_, err := svc.Search(context.Background(), "")

	assert.ErrorIs(t, err, service.ErrBadRequest)
}
