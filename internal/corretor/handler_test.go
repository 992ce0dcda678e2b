package corretor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/corretor"
	"github.com/KromaEnergia/crm-comissoes/internal/utils/db"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func novoRouter(t *testing.T) (*mux.Router, *auth.Emissor) {
	t.Helper()
	database, err := db.AbrirMemoria(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, corretor.Migrate(database))

	emissor := auth.NovoEmissor("segredo-de-teste", 0)
	h := corretor.NewHandler(database, emissor, zap.NewNop())
	r := mux.NewRouter()
	h.RegistrarPublicas(r)
	protegidas := r.NewRoute().Subrouter()
	protegidas.Use(emissor.Middleware)
	h.RegistrarProtegidas(protegidas)
	return r, emissor
}

func chamar(r http.Handler, metodo, url, corpo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(metodo, url, strings.NewReader(corpo))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RegistrarLoginMe(t *testing.T) {
	r, emissor := novoRouter(t)

	rec := chamar(r, http.MethodPost, "/auth/registrar",
		`{"nome":"Paula","email":"Paula@Imob.com","senha":"segredo1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "segredo1")

	var cadastro corretor.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cadastro))
	assert.Equal(t, "paula@imob.com", cadastro.Corretor.Email)
	claims, err := emissor.ValidarToken(cadastro.Token)
	require.NoError(t, err)
	assert.Equal(t, cadastro.Corretor.ID, claims.UsuarioID)

	rec = chamar(r, http.MethodPost, "/auth/registrar",
		`{"nome":"Outra","email":"paula@imob.com","senha":"segredo2"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.Equal(t, http.StatusUnauthorized,
		chamar(r, http.MethodPost, "/auth/login", `{"email":"paula@imob.com","senha":"errada"}`, "").Code)

	rec = chamar(r, http.MethodPost, "/auth/login", `{"email":"PAULA@imob.com","senha":"segredo1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login corretor.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = chamar(r, http.MethodGet, "/auth/me", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nome":"Paula"`)

	rec = chamar(r, http.MethodPut, "/auth/me", `{"creci":"12345-F"}`, login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"creci":"12345-F"`)
	assert.Contains(t, rec.Body.String(), `"nome":"Paula"`)

	assert.Equal(t, http.StatusUnauthorized, chamar(r, http.MethodGet, "/auth/me", "", "").Code)
}

func TestRegistrarRequest_Validar(t *testing.T) {
	tests := []struct {
		name string
		req  corretor.RegistrarRequest
		ok   bool
	}{
		{"completo", corretor.RegistrarRequest{Nome: "A", Email: "a@b.com", Senha: "123456"}, true},
		{"sem nome", corretor.RegistrarRequest{Email: "a@b.com", Senha: "123456"}, false},
		{"email ruim", corretor.RegistrarRequest{Nome: "A", Email: "ab.com", Senha: "123456"}, false},
		{"senha curta", corretor.RegistrarRequest{Nome: "A", Email: "a@b.com", Senha: "123"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validar()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, corretor.ErrCadastroInvalido)
			}
		})
	}
}

func TestHandler_LoginComSessaoGravaCookie(t *testing.T) {
	database, err := db.AbrirMemoria(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, corretor.Migrate(database))
	require.NoError(t, auth.Migrate(database))

	emissor := auth.NovoEmissor("segredo-de-teste", 0)
	h := corretor.NewHandler(database, emissor, zap.NewNop())
	h.Sessoes = auth.NovasSessoes(database, emissor, false, zap.NewNop())
	r := mux.NewRouter()
	h.RegistrarPublicas(r)
	h.Sessoes.Registrar(r)

	rec := chamar(r, http.MethodPost, "/auth/registrar", `{"nome":"Rui","email":"rui@imob.com","senha":"segredo1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = chamar(r, http.MethodPost, "/auth/login", `{"email":"rui@imob.com","senha":"segredo1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rt *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.RefreshCookie {
			rt = c
		}
	}
	require.NotNil(t, rt)
	assert.True(t, rt.HttpOnly)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(rt)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
