package model

import "time"

// BaseEntity : общие поля аудита, встраивается во все сущности
type BaseEntity struct {
	ID        int64      `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
	CreatedBy *string    `db:"created_by" json:"created_by,omitempty"`
	UpdatedBy *string    `db:"updated_by" json:"updated_by,omitempty"`
	IsActive  bool       `db:"is_active" json:"is_active"`
}

// Audit возвращает указатель на поля аудита.
// Через него generic-репозиторий проставляет created_at/updated_at при сохранении
func (b *BaseEntity) Audit() *BaseEntity {
	return b
}
