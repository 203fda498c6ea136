package requestresponse

import "time"

// CreateDepartmentRequest : создание подразделения
type CreateDepartmentRequest struct {
	Name        string  `json:"name" example:"Технологии"`
	Code        string  `json:"code" example:"IT"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// UpdateDepartmentRequest : частичное обновление, nil-поля не трогаются
type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// DepartmentResponse : подразделение с количеством сотрудников
type DepartmentResponse struct {
	ID            int64                      `json:"id"`
	Name          string                     `json:"name"`
	Code          string                     `json:"code"`
	Description   *string                    `json:"description,omitempty"`
	Location      *string                    `json:"location,omitempty"`
	EmployeeCount int                        `json:"employeeCount"`
	Employees     []DepartmentEmployeeItem   `json:"employees,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     *time.Time                 `json:"updatedAt,omitempty"`
	IsActive      bool                       `json:"isActive"`
}

// DepartmentEmployeeItem : сотрудник в составе подразделения
type DepartmentEmployeeItem struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
	Salary   float64 `json:"salary"`
}

// DepartmentStatsResponse : сводная статистика по подразделениям
type DepartmentStatsResponse struct {
	TotalDepartments              int                   `json:"totalDepartments"`
	TotalEmployees                int                   `json:"totalEmployees"`
	AverageEmployeesPerDepartment float64               `json:"averageEmployeesPerDepartment"`
	Departments                   []DepartmentStatsItem `json:"departments"`
}

// DepartmentStatsItem : статистика одного подразделения
type DepartmentStatsItem struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	EmployeeCount int     `json:"employeeCount"`
	AverageSalary float64 `json:"averageSalary"`
}

// TransferEmployeesRequest : перевод сотрудников между подразделениями
type TransferEmployeesRequest struct {
	EmployeeIDs []int64 `json:"employeeIds"`
}

// TransferEmployeesResponse : итог перевода
type TransferEmployeesResponse struct {
	Message     string   `json:"message"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Transferred []string `json:"transferred"`
}
