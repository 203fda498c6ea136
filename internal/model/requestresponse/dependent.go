package requestresponse

import "time"

// CreateDependentRequest : добавление иждивенца сотруднику
type CreateDependentRequest struct {
	FirstName            string    `json:"firstName" example:"Мария"`
	LastName             string    `json:"lastName" example:"Петрова"`
	DateOfBirth          time.Time `json:"dateOfBirth"`
	Relationship         string    `json:"relationship" example:"дочь"`
	Gender               *string   `json:"gender,omitempty"`
	IdentificationNumber *string   `json:"identificationNumber,omitempty"`
	EmployeeID           int64     `json:"employeeId"`
}

// UpdateDependentRequest : частичное обновление, nil-поля не трогаются
type UpdateDependentRequest struct {
	FirstName            *string    `json:"firstName,omitempty"`
	LastName             *string    `json:"lastName,omitempty"`
	DateOfBirth          *time.Time `json:"dateOfBirth,omitempty"`
	Relationship         *string    `json:"relationship,omitempty"`
	Gender               *string    `json:"gender,omitempty"`
	IdentificationNumber *string    `json:"identificationNumber,omitempty"`
}

// DependentResponse : иждивенец с именем сотрудника
type DependentResponse struct {
	ID                   int64      `json:"id"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	FullName             string     `json:"fullName"`
	DateOfBirth          time.Time  `json:"dateOfBirth"`
	Age                  int        `json:"age"`
	Relationship         string     `json:"relationship"`
	Gender               *string    `json:"gender,omitempty"`
	IdentificationNumber *string    `json:"identificationNumber,omitempty"`
	EmployeeID           int64      `json:"employeeId"`
	EmployeeName         string     `json:"employeeName"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
	IsActive             bool       `json:"isActive"`
}

// DependentCountResponse : количество активных иждивенцев сотрудника
type DependentCountResponse struct {
	EmployeeID int64 `json:"employeeId"`
	Count      int   `json:"count"`
}
