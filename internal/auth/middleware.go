package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const CtxUsuarioID ctxKey = "usuarioID"

// Middleware exige um Bearer token válido e injeta o id do corretor no contexto.
func (e *Emissor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		claims, err := e.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ComUsuario(r.Context(), claims.UsuarioID)))
	})
}

// ComUsuario devolve um contexto carregando o id do corretor autenticado.
func ComUsuario(ctx context.Context, usuarioID string) context.Context {
	return context.WithValue(ctx, CtxUsuarioID, usuarioID)
}

// UsuarioID lê o id do corretor autenticado do contexto.
func UsuarioID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxUsuarioID).(string)
	return id, ok && id != ""
}
