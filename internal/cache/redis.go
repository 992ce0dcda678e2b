// internal/cache/redis.go
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Conectar abre o cliente Redis. Sem endereço, ou se o ping falhar, devolve nil
// e o cache fica desligado.
func Conectar(ctx context.Context, addr string, log *zap.Logger) *redis.Client {
	if addr == "" {
		log.Warn("REDIS_ADDR não definido, cache de resumo desligado")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("não foi possível conectar ao Redis", zap.String("addr", addr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	log.Info("conectado ao Redis", zap.String("addr", addr))
	return rdb
}
