package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/agisales/proposals-api/pkg/logger"
)

var _ Store = (*RedisStore)(nil)

// RedisStore implementa el mismo contrato namespaced sobre Redis. Sin TTL: las
// claves viven hasta Remove/Clear, igual que en el backend de archivo.
type RedisStore struct {
	db     *redis.Client
	prefix string
	log    *logger.Logger
}

// NewRedisStore construye el adapter; valida la conexión con un ping.
func NewRedisStore(ctx context.Context, client *redis.Client, prefix string, log *logger.Logger) (*RedisStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{db: client, prefix: prefix, log: log}, nil
}

func (s *RedisStore) key(k string) string { return s.prefix + ":" + k }

// Set serializa value y lo guarda; errores se loguean y se descartan.
func (s *RedisStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: serializar valor")
		return
	}
	if err := s.db.Set(context.Background(), s.key(key), data, 0).Err(); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: escribir clave")
	}
}

// Get lee y deserializa la clave en dest.
func (s *RedisStore) Get(key string, dest any) (bool, error) {
	val, err := s.db.Get(context.Background(), s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: leer clave")
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: deserializar valor")
		return false, nil
	}
	return true, nil
}

// Remove borra la clave.
func (s *RedisStore) Remove(key string) {
	if err := s.db.Del(context.Background(), s.key(key)).Err(); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: borrar clave")
	}
}

// Clear borra todas las claves del namespace con SCAN incremental.
func (s *RedisStore) Clear() {
	ctx := context.Background()
	iter := s.db.Scan(ctx, 0, s.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.db.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Error().Err(err).Str("key", iter.Val()).Msg("kvstore: borrar clave")
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Error().Err(err).Msg("kvstore: escanear namespace")
	}
}
