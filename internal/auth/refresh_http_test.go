package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/utils/db"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novasSessoes(t *testing.T) *Sessoes {
	t.Helper()
	database, err := db.AbrirMemoria(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, Migrate(database))
	return NovasSessoes(database, NovoEmissor("segredo", time.Hour), false, nil)
}

func cookieRefresh(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == RefreshCookie {
			return c
		}
	}
	t.Fatal("cookie de refresh ausente")
	return nil
}

func TestSessoes_IniciarERenovar(t *testing.T) {
	ctx := context.Background()
	s := novasSessoes(t)

	rec := httptest.NewRecorder()
	access, err := s.Iniciar(ctx, rec, "corretor-1")
	require.NoError(t, err)
	claims, err := s.Emissor.ValidarToken(access)
	require.NoError(t, err)
	assert.Equal(t, "corretor-1", claims.UsuarioID)

	c := cookieRefresh(t, rec)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/auth", c.Path)

	novoAccess, novo, exp, err := s.Renovar(ctx, c.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, novoAccess)
	assert.NotEqual(t, c.Value, novo)
	assert.True(t, exp.After(time.Now().Add(RefreshTTL-time.Minute)))

	// o refresh antigo foi revogado; reapresentá-lo derruba a família
	_, _, _, err = s.Renovar(ctx, c.Value)
	assert.ErrorIs(t, err, ErrRefreshInvalido)
	_, _, _, err = s.Renovar(ctx, novo)
	assert.ErrorIs(t, err, ErrRefreshInvalido)
}

func TestSessoes_Expirado(t *testing.T) {
	ctx := context.Background()
	s := novasSessoes(t)
	s.Agora = func() time.Time { return time.Now().Add(-RefreshTTL - time.Hour) }

	rec := httptest.NewRecorder()
	_, err := s.Iniciar(ctx, rec, "corretor-1")
	require.NoError(t, err)

	s.Agora = time.Now
	_, _, _, err = s.Renovar(ctx, cookieRefresh(t, rec).Value)
	assert.ErrorIs(t, err, ErrRefreshInvalido)

	_, _, _, err = s.Renovar(ctx, "desconhecido")
	assert.ErrorIs(t, err, ErrRefreshInvalido)
}

func TestSessoes_HTTP(t *testing.T) {
	s := novasSessoes(t)
	r := mux.NewRouter()
	s.Registrar(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login := httptest.NewRecorder()
	_, err := s.Iniciar(context.Background(), login, "corretor-9")
	require.NoError(t, err)
	c := cookieRefresh(t, login)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RespostaRefresh
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	novo := cookieRefresh(t, rec)

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(novo)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, -1, cookieRefresh(t, rec).MaxAge)

	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(novo)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
