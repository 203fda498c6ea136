package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/util"
)

var employeeColumns = []string{
	"created_at", "updated_at", "created_by", "updated_by", "is_active",
	"first_name", "last_name", "email", "phone_number", "hire_date",
	"position", "salary", "department_id",
}

// EmployeeWithDepartment : сотрудник с названием подразделения и числом иждивенцев
type EmployeeWithDepartment struct {
	model.Employee
	DepartmentName  *string `db:"department_name"`
	DependentsCount int     `db:"dependents_count"`
}

// EmployeeStatsRow : итоговые агрегаты по сотрудникам
type EmployeeStatsRow struct {
	TotalEmployees  int     `db:"total_employees"`
	TotalDependents int     `db:"total_dependents"`
	AverageSalary   float64 `db:"average_salary"`
}

// DepartmentCountRow : число сотрудников в подразделении
type DepartmentCountRow struct {
	Department string `db:"department"`
	Count      int    `db:"count"`
}

type EmployeeRepository struct {
	*Repository[model.Employee, *model.Employee]
}

func NewEmployeeRepository(database *config.Database) *EmployeeRepository {
	return &EmployeeRepository{NewRepository[model.Employee, *model.Employee](database, "employees", employeeColumns)}
}

const employeeWithDepartmentSelect = `
	SELECT e.id, e.created_at, e.updated_at, e.created_by, e.updated_by, e.is_active,
	       e.first_name, e.last_name, e.email, e.phone_number, e.hire_date,
	       e.position, e.salary, e.department_id,
	       d.name AS department_name,
	       (SELECT COUNT(*) FROM dependents dep WHERE dep.employee_id = e.id AND dep.is_active) AS dependents_count
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
`

// ListActive : активные сотрудники с подразделением и числом иждивенцев
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]EmployeeWithDepartment, error) {
	query := employeeWithDepartmentSelect + ` WHERE e.is_active ORDER BY e.id`

	var employees []EmployeeWithDepartment
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, util.LogError("[EmployeeRepo] не удалось получить список сотрудников", err)
	}

	return employees, nil
}

// GetWithDepartment : сотрудник по id с подразделением, (nil, nil) если не найден
func (r *EmployeeRepository) GetWithDepartment(ctx context.Context, id int64) (*EmployeeWithDepartment, error) {
	query := employeeWithDepartmentSelect + ` WHERE e.id = $1`

	var employee EmployeeWithDepartment
	err := r.db.GetContext(ctx, &employee, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[EmployeeRepo] не удалось найти сотрудника", err)
	}

	return &employee, nil
}

// ListByDepartment : активные сотрудники подразделения
func (r *EmployeeRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]EmployeeWithDepartment, error) {
	query := employeeWithDepartmentSelect + ` WHERE e.department_id = $1 AND e.is_active ORDER BY e.id`

	var employees []EmployeeWithDepartment
	if err := r.db.SelectContext(ctx, &employees, query, departmentID); err != nil {
		return nil, util.LogError("[EmployeeRepo] не удалось получить сотрудников подразделения", err)
	}

	return employees, nil
}

// Search : поиск активных сотрудников по имени, фамилии или email
func (r *EmployeeRepository) Search(ctx context.Context, query string) ([]EmployeeWithDepartment, error) {
	sqlQuery := employeeWithDepartmentSelect + `
		WHERE e.is_active
		  AND (e.first_name ILIKE $1 OR e.last_name ILIKE $1 OR e.email ILIKE $1)
		ORDER BY e.id
	`

	var employees []EmployeeWithDepartment
	if err := r.db.SelectContext(ctx, &employees, sqlQuery, "%"+query+"%"); err != nil {
		return nil, util.LogError("[EmployeeRepo] ошибка поиска сотрудников", err)
	}

	return employees, nil
}

// Stats : итоговые агрегаты и распределение по подразделениям
func (r *EmployeeRepository) Stats(ctx context.Context) (*EmployeeStatsRow, []DepartmentCountRow, error) {
	totalsQuery := `
		SELECT (SELECT COUNT(*) FROM employees WHERE is_active)  AS total_employees,
		       (SELECT COUNT(*) FROM dependents WHERE is_active) AS total_dependents,
		       COALESCE((SELECT AVG(salary) FROM employees WHERE is_active), 0) AS average_salary
	`

	var totals EmployeeStatsRow
	if err := r.db.GetContext(ctx, &totals, totalsQuery); err != nil {
		return nil, nil, util.LogError("[EmployeeRepo] ошибка получения статистики", err)
	}

	byDepartmentQuery := `
		SELECT d.name AS department, COUNT(*) AS count
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.is_active
		GROUP BY d.name
		ORDER BY count DESC
	`

	var byDepartment []DepartmentCountRow
	if err := r.db.SelectContext(ctx, &byDepartment, byDepartmentQuery); err != nil {
		return nil, nil, util.LogError("[EmployeeRepo] ошибка группировки по подразделениям", err)
	}

	return &totals, byDepartment, nil
}

// EmailTaken : занят ли email другим сотрудником
func (r *EmployeeRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email, excludeID); err != nil {
		return false, util.LogError(fmt.Sprintf("[EmployeeRepo] ошибка проверки email %s", email), err)
	}

	return exists, nil
}
