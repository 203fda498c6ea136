package repository

import (
	"context"
	"fmt"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/util"

	"github.com/lib/pq"
)

var departmentColumns = []string{
	"created_at", "updated_at", "created_by", "updated_by", "is_active",
	"name", "code", "description", "location",
}

// DepartmentStatsRow : агрегаты одного подразделения
type DepartmentStatsRow struct {
	Name          string  `db:"name"`
	Code          string  `db:"code"`
	EmployeeCount int     `db:"employee_count"`
	AverageSalary float64 `db:"average_salary"`
}

type DepartmentRepository struct {
	*Repository[model.Department, *model.Department]
}

func NewDepartmentRepository(database *config.Database) *DepartmentRepository {
	return &DepartmentRepository{NewRepository[model.Department, *model.Department](database, "departments", departmentColumns)}
}

// FindByCode : ищет подразделение по уникальному коду, (nil, nil) если не найдено
func (r *DepartmentRepository) FindByCode(ctx context.Context, code string) (*model.Department, error) {
	return r.FirstOrDefault(ctx, Where("code", OpEq, code))
}

// Search : поиск по подстроке в названии или коде
func (r *DepartmentRepository) Search(ctx context.Context, query string) ([]model.Department, error) {
	sqlQuery := fmt.Sprintf(
		"SELECT %s FROM departments WHERE name ILIKE $1 OR code ILIKE $1 ORDER BY id",
		r.selectColumns(),
	)

	var departments []model.Department
	if err := r.db.SelectContext(ctx, &departments, sqlQuery, "%"+query+"%"); err != nil {
		return nil, util.LogError("[DepartmentRepo] ошибка поиска подразделений", err)
	}

	return departments, nil
}

// Stats : агрегаты по всем подразделениям, отсортированы по числу сотрудников
func (r *DepartmentRepository) Stats(ctx context.Context) ([]DepartmentStatsRow, error) {
	query := `
		SELECT d.name, d.code,
		       COUNT(e.id) AS employee_count,
		       COALESCE(AVG(e.salary), 0) AS average_salary
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id, d.name, d.code
		ORDER BY employee_count DESC
	`

	var rows []DepartmentStatsRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, util.LogError("[DepartmentRepo] ошибка получения статистики", err)
	}

	return rows, nil
}

// CountInDepartment : сколько из переданных сотрудников числится в подразделении
func (r *DepartmentRepository) CountInDepartment(ctx context.Context, employeeIDs []int64, departmentID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM employees WHERE id = ANY($1) AND department_id = $2`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, pq.Array(employeeIDs), departmentID); err != nil {
		return 0, util.LogError("[DepartmentRepo] ошибка проверки сотрудников для перевода", err)
	}

	return count, nil
}

// TransferEmployees переводит сотрудников из одного подразделения в другое
func (r *DepartmentRepository) TransferEmployees(ctx context.Context, fromID, toID int64, employeeIDs []int64) (int64, error) {
	query := `
		UPDATE employees
		SET department_id = $1, updated_at = $2
		WHERE id = ANY($3) AND department_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, toID, time.Now().UTC(), pq.Array(employeeIDs), fromID)
	if err != nil {
		return 0, util.LogError("[DepartmentRepo] не удалось перевести сотрудников", err)
	}

	transferred, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[DepartmentRepo] не удалось проверить результат перевода", err)
	}

	return transferred, nil
}

// EmployeeCounts : число сотрудников по подразделениям
func (r *DepartmentRepository) EmployeeCounts(ctx context.Context) (map[int64]int, error) {
	query := `
		SELECT department_id, COUNT(*) AS employee_count
		FROM employees
		WHERE department_id IS NOT NULL
		GROUP BY department_id
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, util.LogError("[DepartmentRepo] ошибка подсчёта сотрудников", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var departmentID int64
		var count int
		if err := rows.Scan(&departmentID, &count); err != nil {
			return nil, util.LogError("[DepartmentRepo] ошибка чтения результата подсчёта", err)
		}
		counts[departmentID] = count
	}

	return counts, rows.Err()
}
