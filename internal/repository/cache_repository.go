package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/util"

	"github.com/redis/go-redis/v9"
)

const (
	EmployeeStatsKey   = "stats:employees"
	DepartmentStatsKey = "stats:departments"
)

// StatsCacheRepository кэширует ответы статистики в Redis.
// Кэш сбрасывается при любой мутации сотрудников или подразделений
type StatsCacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewStatsCacheRepository(rdb *config.RedisClient, ttl time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{rdb, ttl}
}

// Get читает закэшированное значение в dest.
// Возвращает false без ошибки при промахе кэша
func (r *StatsCacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil // нет в кэше
	} else if err != nil {
		return false, util.LogError("ошибка чтения статистики из Redis", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, util.LogError("ошибка десериализации статистики из кэша", err)
	}

	return true, nil
}

func (r *StatsCacheRepository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return util.LogError("ошибка сериализации статистики", err)
	}

	if err := r.client.Client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения статистики в Redis", err)
	}

	return nil
}

// Invalidate удаляет закэшированные значения
func (r *StatsCacheRepository) Invalidate(ctx context.Context, keys ...string) error {
	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		return util.LogError("ошибка сброса кэша статистики", err)
	}
	return nil
}
