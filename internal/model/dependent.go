package model

import "time"

// Dependent : иждивенец сотрудника (ребёнок, супруг и т.д.).
// Удаляется каскадно вместе с сотрудником
type Dependent struct {
	BaseEntity
	FirstName            string    `db:"first_name" json:"first_name"`
	LastName             string    `db:"last_name" json:"last_name"`
	DateOfBirth          time.Time `db:"date_of_birth" json:"date_of_birth"`
	Relationship         string    `db:"relationship" json:"relationship"`
	Gender               *string   `db:"gender" json:"gender,omitempty"`
	IdentificationNumber *string   `db:"identification_number" json:"identification_number,omitempty"`
	EmployeeID           int64     `db:"employee_id" json:"employee_id"`
}

func (d *Dependent) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Age : полных лет на текущую дату
func (d *Dependent) Age() int {
	now := time.Now()
	age := now.Year() - d.DateOfBirth.Year()
	if now.YearDay() < d.DateOfBirth.YearDay() {
		age--
	}
	return age
}
