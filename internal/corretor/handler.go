package corretor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e o emissor de tokens.
// Com Sessoes definido, login e cadastro também gravam o cookie de refresh.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Emissor    *auth.Emissor
	Sessoes    *auth.Sessoes
	Log        *zap.Logger
}

func NewHandler(db *gorm.DB, emissor *auth.Emissor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{DB: db, Repository: NewRepository(), Emissor: emissor, Log: log}
}

func (h *Handler) responderToken(w http.ResponseWriter, r *http.Request, status int, c *Corretor) {
	var (
		token string
		err   error
	)
	if h.Sessoes != nil {
		token, err = h.Sessoes.Iniciar(r.Context(), w, c.ID)
	} else {
		token, err = h.Emissor.GerarToken(c.ID)
	}
	if err != nil {
		h.Log.Error("erro ao gerar token", zap.Error(err))
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}
	utils.JSON(w, status, TokenResponse{Token: token, Corretor: c})
}

// POST /auth/registrar (livre de autenticação)
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req RegistrarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := req.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	c := &Corretor{
		Nome:      strings.TrimSpace(req.Nome),
		Sobrenome: strings.TrimSpace(req.Sobrenome),
		CRECI:     req.CRECI,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Senha:     hash,
	}
	if err := h.Repository.Salvar(h.DB.WithContext(r.Context()), c); err != nil {
		if errors.Is(err, ErrEmailEmUso) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.Log.Error("erro ao salvar corretor", zap.Error(err))
		http.Error(w, "erro ao salvar corretor", http.StatusInternalServerError)
		return
	}
	h.Log.Info("corretor cadastrado", zap.String("id", c.ID))
	h.responderToken(w, r, http.StatusCreated, c)
}

// POST /auth/login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorEmail(h.DB.WithContext(r.Context()), req.Email)
	if err != nil || !utils.VerificarSenha(c.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	h.responderToken(w, r, http.StatusOK, c)
}

// GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB.WithContext(r.Context()), uid)
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// PUT /auth/me
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	var req AtualizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.Atualizar(h.DB.WithContext(r.Context()), uid, &req)
	if errors.Is(err, ErrCorretorNaoEncontrado) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error("erro ao atualizar corretor", zap.Error(err))
		http.Error(w, "erro ao atualizar corretor", http.StatusInternalServerError)
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// RegistrarPublicas pendura cadastro e login, que não exigem token.
func (h *Handler) RegistrarPublicas(r *mux.Router) {
	r.HandleFunc("/auth/registrar", h.Registrar).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
}

func (h *Handler) RegistrarProtegidas(r *mux.Router) {
	r.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	r.HandleFunc("/auth/me", h.Atualizar).Methods(http.MethodPut)
}
