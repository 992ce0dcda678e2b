// internal/venda/handler.go
package venda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/cliente"
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Invalidador descarta o resumo em cache quando uma comissão nasce com a venda.
type Invalidador interface {
	Invalidar(ctx context.Context, usuarioID string) error
}

type Handler struct {
	DB       *gorm.DB
	Repo     Repository
	Clientes cliente.Repository
	Cache    Invalidador
	Log      *zap.Logger
}

func NewHandler(db *gorm.DB, cache Invalidador, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{DB: db, Repo: NewRepository(), Clientes: cliente.NewRepository(), Cache: cache, Log: log}
}

func (h *Handler) falha(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrVendaInvalida), errors.Is(err, comissao.ErrValidacao):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, cliente.ErrClienteNaoEncontrado):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrVendaNaoEncontrada):
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

// completarCliente copia o nome do cliente cadastrado quando a venda só traz o id.
func (h *Handler) completarCliente(tx *gorm.DB, uid string, v *Venda) error {
	if v.ClienteID == nil || *v.ClienteID == "" {
		v.ClienteID = nil
		return nil
	}
	c, err := h.Clientes.FindByID(tx, uid, *v.ClienteID)
	if err != nil {
		return err
	}
	if v.ClienteNome == "" {
		v.ClienteNome = c.Nome
	}
	return nil
}

// POST /vendas
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	var in VendaRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	v := &Venda{UsuarioID: uid}
	if err := in.Aplicar(v); err != nil {
		h.falha(w, err, "Erro ao criar venda")
		return
	}

	out := VendaResponse{Venda: v}
	err := h.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := h.completarCliente(tx, uid, v); err != nil {
			return err
		}
		if err := h.Repo.Criar(tx, v); err != nil {
			return err
		}
		if in.Comissao == nil {
			return nil
		}
		c, err := in.Comissao.ComissaoDTO(v).ParaModelo(uid)
		if err != nil {
			return err
		}
		if err := comissao.NewRepository(tx).Create(r.Context(), c); err != nil {
			return err
		}
		out.Comissao = c
		return nil
	})
	if err != nil {
		h.falha(w, err, "Erro ao criar venda")
		return
	}
	if out.Comissao != nil && h.Cache != nil {
		if err := h.Cache.Invalidar(r.Context(), uid); err != nil {
			h.Log.Warn("falha ao invalidar cache de resumo", zap.Error(err))
		}
	}
	utils.JSON(w, http.StatusCreated, out)
}

// GET /vendas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	vendas, err := h.Repo.ListarPorUsuario(h.DB.WithContext(r.Context()), uid)
	if err != nil {
		h.falha(w, err, "Erro ao listar vendas")
		return
	}
	utils.JSON(w, http.StatusOK, vendas)
}

// GET /vendas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	v, err := h.Repo.BuscarPorID(h.DB.WithContext(r.Context()), uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao buscar venda")
		return
	}
	utils.JSON(w, http.StatusOK, v)
}

// PUT /vendas/{id}. A comissão ligada não é recalculada.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	db := h.DB.WithContext(r.Context())
	v, err := h.Repo.BuscarPorID(db, uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao buscar venda")
		return
	}
	var in VendaRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := in.Aplicar(v); err != nil {
		h.falha(w, err, "Erro ao atualizar venda")
		return
	}
	if err := h.completarCliente(db, uid, v); err != nil {
		h.falha(w, err, "Erro ao atualizar venda")
		return
	}
	if err := h.Repo.Atualizar(db, v); err != nil {
		h.falha(w, err, "Erro ao atualizar venda")
		return
	}
	utils.JSON(w, http.StatusOK, v)
}

// DELETE /vendas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Deletar(h.DB.WithContext(r.Context()), uid, mux.Vars(r)["id"]); err != nil {
		h.falha(w, err, "Erro ao excluir venda")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Registrar(r *mux.Router) {
	r.HandleFunc("/vendas", h.List).Methods(http.MethodGet)
	r.HandleFunc("/vendas", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/vendas/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/vendas/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/vendas/{id}", h.Delete).Methods(http.MethodDelete)
}
