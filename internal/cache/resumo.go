// internal/cache/resumo.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const TTLPadrao = 10 * time.Minute

// Resumo guarda respostas de /comissoes/resumo por corretor. Cada gravação de
// comissão ou recebimento incrementa a versão do corretor, o que torna as
// entradas antigas inalcançáveis até expirarem.
type Resumo struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NovoResumo aceita rdb nil; nesse caso todas as operações viram no-op.
func NovoResumo(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Resumo {
	if ttl <= 0 {
		ttl = TTLPadrao
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resumo{rdb: rdb, ttl: ttl, log: log}
}

func (r *Resumo) Ativo() bool { return r != nil && r.rdb != nil }

func chaveVersao(usuarioID string) string { return "resumo:versao:" + usuarioID }

func (r *Resumo) chave(ctx context.Context, usuarioID, chave string) (string, error) {
	v, err := r.rdb.Get(ctx, chaveVersao(usuarioID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("resumo:%s:%d:%s", usuarioID, v, chave), nil
}

// Buscar preenche destino e devolve true em caso de acerto.
func (r *Resumo) Buscar(ctx context.Context, usuarioID, chave string, destino any) (bool, error) {
	if !r.Ativo() {
		return false, nil
	}
	k, err := r.chave(ctx, usuarioID, chave)
	if err != nil {
		return false, err
	}
	raw, err := r.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, destino); err != nil {
		r.log.Warn("entrada de cache corrompida", zap.String("chave", k), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (r *Resumo) Salvar(ctx context.Context, usuarioID, chave string, valor any) error {
	if !r.Ativo() {
		return nil
	}
	k, err := r.chave(ctx, usuarioID, chave)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(valor)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, k, raw, r.ttl).Err()
}

// Invalidar descarta todos os resumos do corretor.
func (r *Resumo) Invalidar(ctx context.Context, usuarioID string) error {
	if !r.Ativo() {
		return nil
	}
	return r.rdb.Incr(ctx, chaveVersao(usuarioID)).Err()
}
