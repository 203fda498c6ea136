package ports

import (
	"context"

	"employee-management-api/internal/model/requestresponse"
)

type DepartmentService interface {
	List(ctx context.Context) ([]requestresponse.DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (*requestresponse.DepartmentResponse, error)
	GetByCode(ctx context.Context, code string) (*requestresponse.DepartmentResponse, error)
	Create(ctx context.Context, req *requestresponse.CreateDepartmentRequest) (*requestresponse.DepartmentResponse, error)
	Update(ctx context.Context, id int64, req *requestresponse.UpdateDepartmentRequest) (*requestresponse.DepartmentResponse, error)
	Deactivate(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]requestresponse.DepartmentResponse, error)
	Stats(ctx context.Context) (*requestresponse.DepartmentStatsResponse, error)
	TransferEmployees(ctx context.Context, fromID, toID int64, employeeIDs []int64) (*requestresponse.TransferEmployeesResponse, error)
}

type EmployeeService interface {
	List(ctx context.Context) ([]requestresponse.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*requestresponse.EmployeeResponse, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]requestresponse.EmployeeResponse, error)
	Create(ctx context.Context, req *requestresponse.CreateEmployeeRequest) (*requestresponse.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *requestresponse.UpdateEmployeeRequest) (*requestresponse.EmployeeResponse, error)
	Deactivate(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]requestresponse.EmployeeResponse, error)
	Stats(ctx context.Context) (*requestresponse.EmployeeStatsResponse, error)
}

type DependentService interface {
	List(ctx context.Context) ([]requestresponse.DependentResponse, error)
	GetByID(ctx context.Context, id int64) (*requestresponse.DependentResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]requestresponse.DependentResponse, error)
	Create(ctx context.Context, req *requestresponse.CreateDependentRequest) (*requestresponse.DependentResponse, error)
	Update(ctx context.Context, id int64, req *requestresponse.UpdateDependentRequest) (*requestresponse.DependentResponse, error)
	Deactivate(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
	CountByEmployee(ctx context.Context, employeeID int64) (*requestresponse.DependentCountResponse, error)
}
