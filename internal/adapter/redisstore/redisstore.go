// Package redisstore implements the coffee gateway on Redis.
//
// Each record is stored as a JSON document under <prefix>coffee:<id>; the
// ids are appended to the list <prefix>coffees so reads come back in
// insertion order.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barista/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// KVStore is the subset of Redis used by Store, so tests can swap in a fake.
type KVStore interface {
	// Append stores value under key and pushes key onto listKey atomically.
	Append(ctx context.Context, listKey, key, value string) error
	// Members returns the values of every key in listKey, in list order.
	// Keys whose value is gone are skipped.
	Members(ctx context.Context, listKey string) ([]string, error)
}

// RedisKV is the go-redis implementation of KVStore.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps a go-redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Append runs SET and RPUSH in one MULTI/EXEC transaction.
func (r *RedisKV) Append(ctx context.Context, listKey, key, value string) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, value, 0)
		p.RPush(ctx, listKey, key)
		return nil
	})
	return err
}

// Members reads the list with LRANGE and the values with one MGET.
func (r *RedisKV) Members(ctx context.Context, listKey string) ([]string, error) {
	keys, err := r.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Store is a Redis-backed coffee repository.
type Store struct {
	kv     KVStore
	prefix string
	now    func() time.Time
}

var _ domain.CoffeeRepository = (*Store)(nil)

// New creates a Store. prefix namespaces every key, e.g. "barista:".
func New(kv KVStore, prefix string) *Store {
	return &Store{kv: kv, prefix: prefix, now: time.Now}
}

// Dial connects to Redis at addr and checks the connection.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (s *Store) listKey() string { return s.prefix + "coffees" }

// SaveCoffee stores c as a JSON document and returns its id.
func (s *Store) SaveCoffee(ctx context.Context, c domain.NewCoffee) (string, error) {
	id := uuid.NewString()
	doc, err := json.Marshal(c.Record(id, s.now().UTC()))
	if err != nil {
		return "", fmt.Errorf("marshal coffee: %w", err)
	}
	if err := s.kv.Append(ctx, s.listKey(), s.prefix+"coffee:"+id, string(doc)); err != nil {
		return "", err
	}
	return id, nil
}

// FetchAllCoffees returns every record in insertion order.
func (s *Store) FetchAllCoffees(ctx context.Context) ([]domain.CoffeeRecord, error) {
	docs, err := s.kv.Members(ctx, s.listKey())
	if err != nil {
		return nil, err
	}
	out := make([]domain.CoffeeRecord, 0, len(docs))
	for _, doc := range docs {
		var r domain.CoffeeRecord
		if err := json.Unmarshal([]byte(doc), &r); err != nil {
			return nil, fmt.Errorf("unmarshal coffee: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}
