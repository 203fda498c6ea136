package requestresponse

import "time"

// CreateEmployeeRequest : приём нового сотрудника
type CreateEmployeeRequest struct {
	FirstName    string    `json:"firstName" example:"Иван"`
	LastName     string    `json:"lastName" example:"Петров"`
	Email        string    `json:"email" example:"ivan.petrov@company.com"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty"`
	HireDate     time.Time `json:"hireDate"`
	Position     *string   `json:"position,omitempty"`
	Salary       float64   `json:"salary"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
}

// UpdateEmployeeRequest : частичное обновление, nil-поля не трогаются
type UpdateEmployeeRequest struct {
	FirstName    *string    `json:"firstName,omitempty"`
	LastName     *string    `json:"lastName,omitempty"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	HireDate     *time.Time `json:"hireDate,omitempty"`
	Position     *string    `json:"position,omitempty"`
	Salary       *float64   `json:"salary,omitempty"`
	DepartmentID *int64     `json:"departmentId,omitempty"`
}

// EmployeeResponse : сотрудник с подразделением и иждивенцами
type EmployeeResponse struct {
	ID              int64               `json:"id"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	FullName        string              `json:"fullName"`
	Email           string              `json:"email"`
	PhoneNumber     *string             `json:"phoneNumber,omitempty"`
	HireDate        time.Time           `json:"hireDate"`
	Position        *string             `json:"position,omitempty"`
	Salary          float64             `json:"salary"`
	DepartmentID    *int64              `json:"departmentId,omitempty"`
	DepartmentName  *string             `json:"departmentName,omitempty"`
	DependentsCount int                 `json:"dependentsCount"`
	Dependents      []DependentResponse `json:"dependents,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       *time.Time          `json:"updatedAt,omitempty"`
	IsActive        bool                `json:"isActive"`
}

// EmployeeStatsResponse : сводная статистика по сотрудникам
type EmployeeStatsResponse struct {
	TotalEmployees        int                  `json:"totalEmployees"`
	TotalDependents       int                  `json:"totalDependents"`
	AverageSalary         float64              `json:"averageSalary"`
	EmployeesByDepartment []DepartmentCountItem `json:"employeesByDepartment"`
}

// DepartmentCountItem : количество сотрудников в подразделении
type DepartmentCountItem struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}
