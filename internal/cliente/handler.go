// internal/cliente/handler.go
package cliente

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	DB   *gorm.DB
	Repo Repository
	Log  *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{DB: db, Repo: NewRepository(), Log: log}
}

func (h *Handler) falha(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrClienteInvalido):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrClienteNaoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.Log.Error(msg, zap.Error(err))
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

func usuario(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
	}
	return id, ok
}

// POST /clientes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	var in ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	c := &Cliente{UsuarioID: uid}
	if err := in.Aplicar(c); err != nil {
		h.falha(w, err, "Erro ao criar cliente")
		return
	}
	if err := h.Repo.Save(h.DB.WithContext(r.Context()), c); err != nil {
		h.falha(w, err, "Erro ao criar cliente")
		return
	}
	utils.JSON(w, http.StatusCreated, c)
}

// GET /clientes
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	list, err := h.Repo.ListByUsuario(h.DB.WithContext(r.Context()), uid)
	if err != nil {
		h.falha(w, err, "Erro ao listar clientes")
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

// GET /clientes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	c, err := h.Repo.FindByID(h.DB.WithContext(r.Context()), uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao buscar cliente")
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// PUT /clientes/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	db := h.DB.WithContext(r.Context())
	c, err := h.Repo.FindByID(db, uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao buscar cliente")
		return
	}
	var in ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := in.Aplicar(c); err != nil {
		h.falha(w, err, "Erro ao atualizar cliente")
		return
	}
	if err := h.Repo.Update(db, c); err != nil {
		h.falha(w, err, "Erro ao atualizar cliente")
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// DELETE /clientes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Delete(h.DB.WithContext(r.Context()), uid, mux.Vars(r)["id"]); err != nil {
		h.falha(w, err, "Erro ao excluir cliente")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Registrar(r *mux.Router) {
	r.HandleFunc("/clientes", h.List).Methods(http.MethodGet)
	r.HandleFunc("/clientes", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/clientes/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/clientes/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/clientes/{id}", h.Delete).Methods(http.MethodDelete)
}
