package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// memoStore es el subset de redis que usa el memo cache; facilita tests.
type memoStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Memo cachea resultados de computos por usuario con TTL en Redis. Si Redis
// falla, computa directo: el cache nunca bloquea la respuesta.
type Memo struct {
	store  memoStore
	logger *zap.Logger
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewMemo(client *redis.Client, logger *zap.Logger, prefix string, ttl time.Duration) *Memo {
	if ttl <= 0 {
		ttl = time.Hour
	}
	var store memoStore
	if client != nil {
		store = client
	}
	return &Memo{
		store:  store,
		logger: logger,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

// GetOrCompute devuelve el valor cacheado bajo {prefix}:{userID}:{suffix} o lo
// computa y cachea.
func (m *Memo) GetOrCompute(userID, suffix string, compute func() (string, error)) (string, error) {
	if m == nil || m.store == nil {
		return compute()
	}
	key := fmt.Sprintf("%s:%s:%s", m.prefix, userID, suffix)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	cached, err := m.store.Get(ctx, key).Result()
	cancel()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil && m.logger != nil {
		m.logger.Warn("memo cache get failed", zap.Error(err), zap.String("key", key))
	}

	value, err := compute()
	if err != nil {
		return "", err
	}

	ctx, cancel = context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := m.store.Set(ctx, key, value, m.ttl).Err(); err != nil && m.logger != nil {
		m.logger.Warn("memo cache set failed", zap.Error(err), zap.String("key", key))
	}
	return value, nil
}

// MemoDaily cachea bajo la fecha UTC del dia, para resultados diarios como la
// guidance del oraculo.
func (m *Memo) MemoDaily(userID string, compute func() (string, error)) (string, error) {
	suffix := time.Now().UTC().Format("2006-01-02")
	if m != nil && m.now != nil {
		suffix = m.now().UTC().Format("2006-01-02")
	}
	return m.GetOrCompute(userID, suffix, compute)
}

// MemoHourly cachea bajo la hora UTC actual.
func (m *Memo) MemoHourly(userID string, compute func() (string, error)) (string, error) {
	suffix := time.Now().UTC().Format("2006-01-02T15")
	if m != nil && m.now != nil {
		suffix = m.now().UTC().Format("2006-01-02T15")
	}
	return m.GetOrCompute(userID, suffix, compute)
}
