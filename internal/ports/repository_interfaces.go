package ports

import (
	"context"
	"time"

	"employee-management-api/internal/model"
	"employee-management-api/internal/repository"
)

// Repository : единый CRUD-контракт над любой сущностью с BaseEntity.
// DeleteByID/Delete сообщают об отсутствии записи через bool, а не через ошибку
type Repository[T any, P repository.Auditable[T]] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (P, error)
	Find(ctx context.Context, filters ...repository.Filter) ([]T, error)
	FirstOrDefault(ctx context.Context, filters ...repository.Filter) (P, error)
	Add(ctx context.Context, entity P) error
	AddRange(ctx context.Context, entities []P) error
	Update(ctx context.Context, entity P) (P, error)
	UpdateRange(ctx context.Context, entities []P) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, entity P) (bool, error)
	DeleteRange(ctx context.Context, entities []P) error
	Count(ctx context.Context) (int64, error)
	CountWhere(ctx context.Context, filters ...repository.Filter) (int64, error)
	Exists(ctx context.Context, filters ...repository.Filter) (bool, error)
}

type UserRepositoryInterface interface {
	Repository[model.User, *model.User]
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	SaveRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID int64) error
}

type DepartmentRepositoryInterface interface {
	Repository[model.Department, *model.Department]
	FindByCode(ctx context.Context, code string) (*model.Department, error)
	Search(ctx context.Context, query string) ([]model.Department, error)
	Stats(ctx context.Context) ([]repository.DepartmentStatsRow, error)
	EmployeeCounts(ctx context.Context) (map[int64]int, error)
	CountInDepartment(ctx context.Context, employeeIDs []int64, departmentID int64) (int64, error)
	TransferEmployees(ctx context.Context, fromID, toID int64, employeeIDs []int64) (int64, error)
}

type EmployeeRepositoryInterface interface {
	Repository[model.Employee, *model.Employee]
	ListActive(ctx context.Context) ([]repository.EmployeeWithDepartment, error)
	GetWithDepartment(ctx context.Context, id int64) (*repository.EmployeeWithDepartment, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]repository.EmployeeWithDepartment, error)
	Search(ctx context.Context, query string) ([]repository.EmployeeWithDepartment, error)
	Stats(ctx context.Context) (*repository.EmployeeStatsRow, []repository.DepartmentCountRow, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

type DependentRepositoryInterface interface {
	Repository[model.Dependent, *model.Dependent]
	ListWithEmployee(ctx context.Context) ([]repository.DependentWithEmployee, error)
	GetWithEmployee(ctx context.Context, id int64) (*repository.DependentWithEmployee, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]repository.DependentWithEmployee, error)
	CountActiveByEmployee(ctx context.Context, employeeID int64) (int64, error)
}

type StatsCacheInterface interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}
