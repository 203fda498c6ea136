package repository

import (
	"context"
	"database/sql"
	"errors"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/util"
)

var dependentColumns = []string{
	"created_at", "updated_at", "created_by", "updated_by", "is_active",
	"first_name", "last_name", "date_of_birth", "relationship",
	"gender", "identification_number", "employee_id",
}

// DependentWithEmployee : иждивенец с именем сотрудника
type DependentWithEmployee struct {
	model.Dependent
	EmployeeName string `db:"employee_name"`
}

// DependentRepository расширяет базовый контракт выборками
// с жадной подгрузкой сотрудника
type DependentRepository struct {
	*Repository[model.Dependent, *model.Dependent]
}

func NewDependentRepository(database *config.Database) *DependentRepository {
	return &DependentRepository{NewRepository[model.Dependent, *model.Dependent](database, "dependents", dependentColumns)}
}

const dependentWithEmployeeSelect = `
	SELECT dep.id, dep.created_at, dep.updated_at, dep.created_by, dep.updated_by, dep.is_active,
	       dep.first_name, dep.last_name, dep.date_of_birth, dep.relationship,
	       dep.gender, dep.identification_number, dep.employee_id,
	       e.first_name || ' ' || e.last_name AS employee_name
	FROM dependents dep
	JOIN employees e ON e.id = dep.employee_id
`

// ListWithEmployee : все иждивенцы с именами сотрудников
func (r *DependentRepository) ListWithEmployee(ctx context.Context) ([]DependentWithEmployee, error) {
	query := dependentWithEmployeeSelect + ` ORDER BY dep.id`

	var dependents []DependentWithEmployee
	if err := r.db.SelectContext(ctx, &dependents, query); err != nil {
		return nil, util.LogError("[DependentRepo] не удалось получить список иждивенцев", err)
	}

	return dependents, nil
}

// GetWithEmployee : иждивенец по id с именем сотрудника, (nil, nil) если не найден
func (r *DependentRepository) GetWithEmployee(ctx context.Context, id int64) (*DependentWithEmployee, error) {
	query := dependentWithEmployeeSelect + ` WHERE dep.id = $1`

	var dependent DependentWithEmployee
	err := r.db.GetContext(ctx, &dependent, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[DependentRepo] не удалось найти иждивенца", err)
	}

	return &dependent, nil
}

// ListByEmployee : иждивенцы сотрудника
func (r *DependentRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]DependentWithEmployee, error) {
	query := dependentWithEmployeeSelect + ` WHERE dep.employee_id = $1 ORDER BY dep.id`

	var dependents []DependentWithEmployee
	if err := r.db.SelectContext(ctx, &dependents, query, employeeID); err != nil {
		return nil, util.LogError("[DependentRepo] не удалось получить иждивенцев сотрудника", err)
	}

	return dependents, nil
}

// CountActiveByEmployee : число активных иждивенцев сотрудника
func (r *DependentRepository) CountActiveByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	return r.CountWhere(ctx,
		Where("employee_id", OpEq, employeeID),
		Where("is_active", OpEq, true),
	)
}
