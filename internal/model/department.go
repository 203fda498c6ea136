package model

// Department : подразделение компании, код уникален
type Department struct {
	BaseEntity
	Name        string  `db:"name" json:"name"`
	Code        string  `db:"code" json:"code"`
	Description *string `db:"description" json:"description,omitempty"`
	Location    *string `db:"location" json:"location,omitempty"`
}
