package service_test

import (
	"context"
	"testing"

	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

// MockDepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindByCode(ctx context.Context, code string) (*model.Department, error) {
	args := m.Called(ctx, code)
	if d, ok := args.Get(0).(*model.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) Search(ctx context.Context, query string) ([]model.Department, error) {
	args := m.Called(ctx, query)
	if ds, ok := args.Get(0).([]model.Department); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) Stats(ctx context.Context) ([]repository.DepartmentStatsRow, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]repository.DepartmentStatsRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) EmployeeCounts(ctx context.Context) (map[int64]int, error) {
	args := m.Called(ctx)
	if counts, ok := args.Get(0).(map[int64]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) CountInDepartment(ctx context.Context, employeeIDs []int64, departmentID int64) (int64, error) {
	args := m.Called(ctx, employeeIDs, departmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) TransferEmployees(ctx context.Context, fromID, toID int64, employeeIDs []int64) (int64, error) {
	args := m.Called(ctx, fromID, toID, employeeIDs)
	return args.Get(0).(int64), args.Error(1)
}

// ==== ЗАГЛУШКИ, ЧТОБЫ ИМПЛЕМЕНТИРОВАТЬ ИНТЕРФЕЙСЫ ====
func (m *MockDepartmentRepository) GetAll(ctx context.Context) ([]model.Department, error) {
	args := m.Called(ctx)
	if ds, ok := args.Get(0).([]model.Department); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) Find(ctx context.Context, filters ...repository.Filter) ([]model.Department, error) {
	args := m.Called(ctx, filters)
	if ds, ok := args.Get(0).([]model.Department); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) FirstOrDefault(ctx context.Context, filters ...repository.Filter) (*model.Department, error) {
	args := m.Called(ctx, filters)
	if d, ok := args.Get(0).(*model.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) Add(ctx context.Context, entity *model.Department) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockDepartmentRepository) AddRange(ctx context.Context, entities []*model.Department) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, entity *model.Department) (*model.Department, error) {
	args := m.Called(ctx, entity)
	if d, ok := args.Get(0).(*model.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepository) UpdateRange(ctx context.Context, entities []*model.Department) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, entity *model.Department) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) DeleteRange(ctx context.Context, entities []*model.Department) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) CountWhere(ctx context.Context, filters ...repository.Filter) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) Exists(ctx context.Context, filters ...repository.Filter) (bool, error) {
	args := m.Called(ctx, filters)
	return args.Bool(0), args.Error(1)
}

// MockEmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListActive(ctx context.Context) ([]repository.EmployeeWithDepartment, error) {
	args := m.Called(ctx)
	if es, ok := args.Get(0).([]repository.EmployeeWithDepartment); ok {
		return es, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) GetWithDepartment(ctx context.Context, id int64) (*repository.EmployeeWithDepartment, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*repository.EmployeeWithDepartment); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]repository.EmployeeWithDepartment, error) {
	args := m.Called(ctx, departmentID)
	if es, ok := args.Get(0).([]repository.EmployeeWithDepartment); ok {
		return es, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) Search(ctx context.Context, query string) ([]repository.EmployeeWithDepartment, error) {
	args := m.Called(ctx, query)
	if es, ok := args.Get(0).([]repository.EmployeeWithDepartment); ok {
		return es, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) Stats(ctx context.Context) (*repository.EmployeeStatsRow, []repository.DepartmentCountRow, error) {
	args := m.Called(ctx)
	var totals *repository.EmployeeStatsRow
	if t, ok := args.Get(0).(*repository.EmployeeStatsRow); ok {
		totals = t
	}
	var byDepartment []repository.DepartmentCountRow
	if rows, ok := args.Get(1).([]repository.DepartmentCountRow); ok {
		byDepartment = rows
	}
	return totals, byDepartment, args.Error(2)
}

func (m *MockEmployeeRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if es, ok := args.Get(0).([]model.Employee); ok {
		return es, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*model.Employee); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) Find(ctx context.Context, filters ...repository.Filter) ([]model.Employee, error) {
	args := m.Called(ctx, filters)
	if es, ok := args.Get(0).([]model.Employee); ok {
		return es, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) FirstOrDefault(ctx context.Context, filters ...repository.Filter) (*model.Employee, error) {
	args := m.Called(ctx, filters)
	if e, ok := args.Get(0).(*model.Employee); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) Add(ctx context.Context, entity *model.Employee) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEmployeeRepository) AddRange(ctx context.Context, entities []*model.Employee) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, entity *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, entity)
	if e, ok := args.Get(0).(*model.Employee); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateRange(ctx context.Context, entities []*model.Employee) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, entity *model.Employee) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteRange(ctx context.Context, entities []*model.Employee) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountWhere(ctx context.Context, filters ...repository.Filter) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) Exists(ctx context.Context, filters ...repository.Filter) (bool, error) {
	args := m.Called(ctx, filters)
	return args.Bool(0), args.Error(1)
}

// MockStatsCache
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// ===== HELPERS =====

func newTestDepartmentService() (*service.DepartmentServiceImpl, *MockDepartmentRepository, *MockEmployeeRepository, *MockStatsCache) {
	mockDepartmentRepo := new(MockDepartmentRepository)
	mockEmployeeRepo := new(MockEmployeeRepository)
	mockCache := new(MockStatsCache)

	svc := service.NewDepartmentService(mockDepartmentRepo, mockEmployeeRepo, mockCache)

	return svc, mockDepartmentRepo, mockEmployeeRepo, mockCache
}

func testDepartment() *model.Department {
	return &model.Department{
		BaseEntity: model.BaseEntity{ID: 1, IsActive: true},
		Name:       "Технологии",
		Code:       "IT",
	}
}

// ===== TESTS =====

// 1. Создание: занятый код
func TestCreateDepartment_CodeTaken(t *testing.T) {
	svc, mockDepartmentRepo, _, _ := newTestDepartmentService()
	ctx := context.Background()

	mockDepartmentRepo.On("FindByCode", ctx, "IT").Return(testDepartment(), nil)

	_, err := svc.Create(ctx, &requestresponse.CreateDepartmentRequest{Name: "Технологии", Code: "IT"})

	assert.ErrorIs(t, err, service.ErrConflict)
}

// 2. Создание: успех, кэш статистики сбрасывается
func TestCreateDepartment_Success(t *testing.T) {
	svc, mockDepartmentRepo, _, mockCache := newTestDepartmentService()
	ctx := context.Background()

	mockDepartmentRepo.On("FindByCode", ctx, "HR").Return(nil, nil)
	mockDepartmentRepo.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Department).ID = 5
		}).
		Return(nil)
	mockCache.On("Invalidate", ctx, mock.Anything).Return(nil)

	resp, err := svc.Create(ctx, &requestresponse.CreateDepartmentRequest{Name: "Кадры", Code: "HR"})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "HR", resp.Code)
	assert.True(t, resp.IsActive)
	mockCache.AssertExpectations(t)
}

// 3. Получение по id: не найдено
func TestGetDepartmentByID_NotFound(t *testing.T) {
	svc, mockDepartmentRepo, _, _ := newTestDepartmentService()
	ctx := context.Background()

	mockDepartmentRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

	_, err := svc.GetByID(ctx, 99)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// 4. Получение по id: подразделение разворачивается вместе с сотрудниками
func TestGetDepartmentByID_WithEmployees(t *testing.T) {
	svc, mockDepartmentRepo, mockEmployeeRepo, _ := newTestDepartmentService()
	ctx := context.Background()

	employees := []repository.EmployeeWithDepartment{
		{Employee: model.Employee{BaseEntity: model.BaseEntity{ID: 10}, FirstName: "Иван", LastName: "Петров", Email: "ivan@company.com"}},
		{Employee: model.Employee{BaseEntity: model.BaseEntity{ID: 11}, FirstName: "Анна", LastName: "Сидорова", Email: "anna@company.com"}},
	}

	mockDepartmentRepo.On("GetByID", ctx, int64(1)).Return(testDepartment(), nil)
	mockEmployeeRepo.On("ListByDepartment", ctx, int64(1)).Return(employees, nil)

	resp, err := svc.GetByID(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.EmployeeCount)
	require.Len(t, resp.Employees, 2)
	assert.Equal(t, "Иван Петров", resp.Employees[0].FullName)
}

// 5. Статистика: попадание в кэш — БД не трогается
func TestDepartmentStats_CacheHit(t *testing.T) {
	svc, mockDepartmentRepo, _, mockCache := newTestDepartmentService()
	ctx := context.Background()

	mockCache.On("Get", ctx, repository.DepartmentStatsKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*requestresponse.DepartmentStatsResponse)
			dest.TotalDepartments = 2
			dest.TotalEmployees = 8
		}).
		Return(true, nil)

	resp, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.TotalDepartments)
	assert.Equal(t, 8, resp.TotalEmployees)
	mockDepartmentRepo.AssertNotCalled(t, "Stats", mock.Anything)
}

// 6. Статистика: промах кэша — пересчёт из БД и запись в кэш
func TestDepartmentStats_CacheMiss(t *testing.T) {
	svc, mockDepartmentRepo, _, mockCache := newTestDepartmentService()
	ctx := context.Background()

	rows := []repository.DepartmentStatsRow{
		{Name: "Технологии", Code: "IT", EmployeeCount: 6, AverageSalary: 120000},
		{Name: "Кадры", Code: "HR", EmployeeCount: 2, AverageSalary: 80000},
	}

	mockCache.On("Get", ctx, repository.DepartmentStatsKey, mock.Anything).Return(false, nil)
	mockDepartmentRepo.On("Stats", ctx).Return(rows, nil)
	mockCache.On("Set", ctx, repository.DepartmentStatsKey, mock.Anything).Return(nil)

	resp, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.TotalDepartments)
	assert.Equal(t, 8, resp.TotalEmployees)
	assert.InDelta(t, 4.0, resp.AverageEmployeesPerDepartment, 0.001)
	mockCache.AssertExpectations(t)
}

// 7. Перевод: исходное и целевое подразделения совпадают
func TestTransferEmployees_SameDepartment(t *testing.T) {
	svc, _, _, _ := newTestDepartmentService()

	_, err := svc.TransferEmployees(context.Background(), 1, 1, []int64{10})

	assert.ErrorIs(t, err, service.ErrBadRequest)
}

// 8. Перевод: часть сотрудников не числится в исходном подразделении
func TestTransferEmployees_NotAllInSource(t *testing.T) {
	svc, mockDepartmentRepo, _, _ := newTestDepartmentService()
	ctx := context.Background()

	target := testDepartment()
	target.ID = 2
	target.Code = "HR"

	mockDepartmentRepo.On("GetByID", ctx, int64(1)).Return(testDepartment(), nil)
	mockDepartmentRepo.On("GetByID", ctx, int64(2)).Return(target, nil)
	mockDepartmentRepo.On("CountInDepartment", ctx, []int64{10, 11}, int64(1)).Return(int64(1), nil)

	_, err := svc.TransferEmployees(ctx, 1, 2, []int64{10, 11})

	assert.ErrorIs(t, err, service.ErrBadRequest)
	mockDepartmentRepo.AssertNotCalled(t, "TransferEmployees", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 9. Перевод: успех
func TestTransferEmployees_Success(t *testing.T) {
	svc, mockDepartmentRepo, mockEmployeeRepo, mockCache := newTestDepartmentService()
	ctx := context.Background()

	target := testDepartment()
	target.ID = 2
	target.Name = "Кадры"
	target.Code = "HR"

	mockDepartmentRepo.On("GetByID", ctx, int64(1)).Return(testDepartment(), nil)
	mockDepartmentRepo.On("GetByID", ctx, int64(2)).Return(target, nil)
	mockDepartmentRepo.On("CountInDepartment", ctx, []int64{10}, int64(1)).Return(int64(1), nil)
	mockDepartmentRepo.On("TransferEmployees", ctx, int64(1), int64(2), []int64{10}).Return(int64(1), nil)
	mockEmployeeRepo.On("GetByID", ctx, int64(10)).
		Return(&model.Employee{BaseEntity: model.BaseEntity{ID: 10}, FirstName: "Иван", LastName: "Петров"}, nil)
	mockCache.On("Invalidate", ctx, mock.Anything).Return(nil)

	resp, err := svc.TransferEmployees(ctx, 1, 2, []int64{10})

	assert.NoError(t, err)
	assert.Equal(t, "Технологии", resp.From)
	assert.Equal(t, "Кадры", resp.To)
	assert.Equal(t, []string{"Иван Петров"}, resp.Transferred)
	mockDepartmentRepo.AssertExpectations(t)
}

// 10. Деактивация: не найдено
func TestDeactivateDepartment_NotFound(t *testing.T) {
	svc, mockDepartmentRepo, _, _ := newTestDepartmentService()
	ctx := context.Background()

	mockDepartmentRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

	err := svc.Deactivate(ctx, 99)

	assert.ErrorIs(t, err, service.ErrNotFound)
}
