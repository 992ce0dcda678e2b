// internal/meta/handler.go
package meta

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	Repo  *Repository
	Log   *zap.Logger
	Agora func() time.Time
}

func NewHandler(repo *Repository, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Repo: repo, Log: log, Agora: time.Now}
}

// MetaDTO é o corpo de PUT /metas.
type MetaDTO struct {
	Mes          int             `json:"mes"`
	Ano          int             `json:"ano"`
	MetaVendas   decimal.Decimal `json:"metaVendas"`
	MetaComissao decimal.Decimal `json:"metaComissao"`
}

// GET /metas?ano=2024[&mes=3]. Sem mês devolve todas as metas do ano.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	q := r.URL.Query()
	ano := h.Agora().Year()
	if v := q.Get("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Ano inválido", http.StatusBadRequest)
			return
		}
		ano = n
	}

	if v := q.Get("mes"); v != "" {
		mes, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Mês inválido", http.StatusBadRequest)
			return
		}
		m, err := h.Repo.Buscar(r.Context(), uid, mes, ano)
		if errors.Is(err, ErrMetaNaoEncontrada) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			h.Log.Error("erro ao buscar meta", zap.Error(err))
			http.Error(w, "Erro ao buscar meta", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, m)
		return
	}

	list, err := h.Repo.ListarAno(r.Context(), uid, ano)
	if err != nil {
		h.Log.Error("erro ao listar metas", zap.Error(err))
		http.Error(w, "Erro ao listar metas", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Meta{}
	}
	utils.JSON(w, http.StatusOK, list)
}

// PUT /metas cria ou substitui a meta do período.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	var in MetaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.Salvar(r.Context(), &Meta{
		UsuarioID:    uid,
		Mes:          in.Mes,
		Ano:          in.Ano,
		MetaVendas:   in.MetaVendas,
		MetaComissao: in.MetaComissao,
	})
	if errors.Is(err, ErrMetaInvalida) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Log.Error("erro ao salvar meta", zap.Error(err))
		http.Error(w, "Erro ao salvar meta", http.StatusInternalServerError)
		return
	}
	utils.JSON(w, http.StatusOK, m)
}

func (h *Handler) Registrar(r *mux.Router) {
	r.HandleFunc("/metas", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/metas", h.Put).Methods(http.MethodPut)
}
