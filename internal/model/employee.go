package model

import "time"

// Employee : сотрудник, email уникален.
// DepartmentID nullable: при удалении подразделения внешний ключ сбрасывается в NULL
type Employee struct {
	BaseEntity
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PhoneNumber  *string   `db:"phone_number" json:"phone_number,omitempty"`
	HireDate     time.Time `db:"hire_date" json:"hire_date"`
	Position     *string   `db:"position" json:"position,omitempty"`
	Salary       float64   `db:"salary" json:"salary"`
	DepartmentID *int64    `db:"department_id" json:"department_id,omitempty"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
