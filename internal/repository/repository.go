package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Op : оператор условия выборки
type Op string

const (
	OpEq    Op = "="
	OpNe    Op = "<>"
	OpLt    Op = "<"
	OpLe    Op = "<="
	OpGt    Op = ">"
	OpGe    Op = ">="
	OpILike Op = "ILIKE"
)

// Filter : узкая спецификация условия (колонка, оператор, значение).
// Колонки задаются кодом репозиториев и сервисов, не пользовательским вводом
type Filter struct {
	Column string
	Op     Op
	Value  any
}

func Where(column string, op Op, value any) Filter {
	return Filter{Column: column, Op: op, Value: value}
}

// Auditable ограничивает generic-репозиторий сущностями со встроенным BaseEntity
type Auditable[T any] interface {
	*T
	Audit() *model.BaseEntity
}

// Repository : единый CRUD-контракт над любой сущностью.
// Только репозиторий напрямую изменяет сохранённое состояние;
// created_at/updated_at проставляются здесь при каждом сохранении
type Repository[T any, P Auditable[T]] struct {
	db      *config.Database
	table   string
	columns []string // все колонки, кроме id
}

func NewRepository[T any, P Auditable[T]](db *config.Database, table string, columns []string) *Repository[T, P] {
	return &Repository[T, P]{
		db:      db,
		table:   table,
		columns: columns,
	}
}

func (r *Repository[T, P]) selectColumns() string {
	return "id, " + strings.Join(r.columns, ", ")
}

// buildWhere собирает параметризованный WHERE из фильтров
func buildWhere(filters []Filter) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for i, f := range filters {
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", f.Column, f.Op, i+1))
		args = append(args, f.Value)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// GetAll : все записи таблицы
func (r *Repository[T, P]) GetAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", r.selectColumns(), r.table)

	var entities []T
	if err := r.db.SelectContext(ctx, &entities, query); err != nil {
		return nil, util.LogError(fmt.Sprintf("[%s] не удалось получить записи", r.table), err)
	}

	return entities, nil
}

// GetByID : запись по id, (nil, nil) если записи нет
func (r *Repository[T, P]) GetByID(ctx context.Context, id int64) (P, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectColumns(), r.table)

	var entity T
	err := r.db.GetContext(ctx, &entity, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError(fmt.Sprintf("[%s] ошибка поиска по id", r.table), err)
	}

	return &entity, nil
}

// Find : записи по набору условий
func (r *Repository[T, P]) Find(ctx context.Context, filters ...Filter) ([]T, error) {
	where, args := buildWhere(filters)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id", r.selectColumns(), r.table, where)

	var entities []T
	if err := r.db.SelectContext(ctx, &entities, query, args...); err != nil {
		return nil, util.LogError(fmt.Sprintf("[%s] ошибка выборки по условию", r.table), err)
	}

	return entities, nil
}

// FirstOrDefault : первая запись по условию, (nil, nil) если совпадений нет
func (r *Repository[T, P]) FirstOrDefault(ctx context.Context, filters ...Filter) (P, error) {
	where, args := buildWhere(filters)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id LIMIT 1", r.selectColumns(), r.table, where)

	var entity T
	err := r.db.GetContext(ctx, &entity, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError(fmt.Sprintf("[%s] ошибка выборки по условию", r.table), err)
	}

	return &entity, nil
}

func (r *Repository[T, P]) insertQuery() string {
	placeholders := make([]string, 0, len(r.columns))
	for _, column := range r.columns {
		placeholders = append(placeholders, ":"+column)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.table, strings.Join(r.columns, ", "), strings.Join(placeholders, ", "),
	)
}

// Add сохраняет новую запись и проставляет id и created_at
func (r *Repository[T, P]) Add(ctx context.Context, entity P) error {
	return r.add(ctx, r.db, entity)
}

func (r *Repository[T, P]) add(ctx context.Context, exec sqlx.ExtContext, entity P) error {
	entity.Audit().CreatedAt = time.Now().UTC()

	rows, err := sqlx.NamedQueryContext(ctx, exec, r.insertQuery(), entity)
	if err != nil {
		return util.LogError(fmt.Sprintf("[%s] ошибка вставки данных в БД", r.table), err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&entity.Audit().ID); err != nil {
			return util.LogError(fmt.Sprintf("[%s] не удалось прочитать id созданной записи", r.table), err)
		}
	}

	return rows.Err()
}

// AddRange сохраняет набор записей в одной транзакции
func (r *Repository[T, P]) AddRange(ctx context.Context, entities []P) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return util.LogError(fmt.Sprintf("[%s] не удалось открыть транзакцию", r.table), err)
	}

	for _, entity := range entities {
		if err := r.add(ctx, tx, entity); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository[T, P]) updateQuery() string {
	assignments := make([]string, 0, len(r.columns))
	for _, column := range r.columns {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", column, column))
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", r.table, strings.Join(assignments, ", "))
}

// Update сохраняет изменённую запись и обновляет updated_at
func (r *Repository[T, P]) Update(ctx context.Context, entity P) (P, error) {
	if err := r.update(ctx, r.db, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *Repository[T, P]) update(ctx context.Context, exec sqlx.ExtContext, entity P) error {
	now := time.Now().UTC()
	entity.Audit().UpdatedAt = &now

	result, err := sqlx.NamedExecContext(ctx, exec, r.updateQuery(), entity)
	if err != nil {
		return util.LogError(fmt.Sprintf("[%s] не удалось обновить запись", r.table), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError(fmt.Sprintf("[%s] не удалось проверить результат обновления", r.table), err)
	}
	if rowsAffected == 0 {
		return util.LogError(fmt.Sprintf("[%s] запись для обновления не найдена", r.table), sql.ErrNoRows)
	}

	return nil
}

// UpdateRange сохраняет набор изменённых записей в одной транзакции
func (r *Repository[T, P]) UpdateRange(ctx context.Context, entities []P) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return util.LogError(fmt.Sprintf("[%s] не удалось открыть транзакцию", r.table), err)
	}

	for _, entity := range entities {
		if err := r.update(ctx, tx, entity); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// DeleteByID удаляет запись безвозвратно.
// Возвращает false без ошибки, если записи не было
func (r *Repository[T, P]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, util.LogError(fmt.Sprintf("[%s] не удалось удалить запись", r.table), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError(fmt.Sprintf("[%s] не удалось проверить результат удаления", r.table), err)
	}

	return rowsAffected > 0, nil
}

// Delete удаляет переданную сущность по её id
func (r *Repository[T, P]) Delete(ctx context.Context, entity P) (bool, error) {
	return r.DeleteByID(ctx, entity.Audit().ID)
}

// DeleteRange удаляет набор записей одним запросом
func (r *Repository[T, P]) DeleteRange(ctx context.Context, entities []P) error {
	ids := make([]int64, 0, len(entities))
	for _, entity := range entities {
		ids = append(ids, entity.Audit().ID)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", r.table)
	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return util.LogError(fmt.Sprintf("[%s] не удалось удалить записи", r.table), err)
	}

	return nil
}

// Count : количество всех записей
func (r *Repository[T, P]) Count(ctx context.Context) (int64, error) {
	return r.CountWhere(ctx)
}

// CountWhere : количество записей по условию
func (r *Repository[T, P]) CountWhere(ctx context.Context, filters ...Filter) (int64, error) {
	where, args := buildWhere(filters)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, where)

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, util.LogError(fmt.Sprintf("[%s] ошибка подсчёта записей", r.table), err)
	}

	return count, nil
}

// Exists : есть ли хотя бы одна запись по условию
func (r *Repository[T, P]) Exists(ctx context.Context, filters ...Filter) (bool, error) {
	where, args := buildWhere(filters)
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s%s)", r.table, where)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, util.LogError(fmt.Sprintf("[%s] ошибка проверки существования", r.table), err)
	}

	return exists, nil
}

// IsUniqueViolation : нарушение уникального ограничения на стороне БД.
// Страховка для check-then-act проверок уникальности при конкурентных вставках
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
