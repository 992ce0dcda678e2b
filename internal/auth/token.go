package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tempo de vida padrão do token de acesso
const AccessTTL = 24 * time.Hour

type Claims struct {
	UsuarioID string `json:"usuarioId"`
	jwt.RegisteredClaims
}

// Emissor assina e valida tokens HS256 com o segredo da aplicação.
type Emissor struct {
	segredo []byte
	ttl     time.Duration
}

func NovoEmissor(segredo string, ttl time.Duration) *Emissor {
	if ttl <= 0 {
		ttl = AccessTTL
	}
	return &Emissor{segredo: []byte(segredo), ttl: ttl}
}

// TTL é a validade dos access tokens emitidos.
func (e *Emissor) TTL() time.Duration { return e.ttl }

// GerarToken gera um JWT para o corretor informado.
func (e *Emissor) GerarToken(usuarioID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.segredo)
}

// ValidarToken valida assinatura e expiração e retorna as claims.
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return e.segredo, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UsuarioID == "" {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
