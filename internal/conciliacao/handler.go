package conciliacao

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Invalidador descarta dados derivados (resumo em cache) do corretor.
type Invalidador interface {
	Invalidar(ctx context.Context, usuarioID string) error
}

type Handler struct {
	Servico *Servico
	Cache   Invalidador
	Log     *zap.Logger
}

func NewHandler(s *Servico, cache Invalidador, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Servico: s, Cache: cache, Log: log}
}

// RecebimentoDTO é o corpo de POST /comissoes/{id}/recebimentos.
type RecebimentoDTO struct {
	Valor      decimal.Decimal `json:"valor"`
	Data       string          `json:"data"`
	Observacao string          `json:"observacao"`
}

type respostaRecebimento struct {
	Recebimento *recebimento.Recebimento `json:"recebimento"`
	Comissao    *comissao.Comissao       `json:"comissao"`
}

func (h *Handler) falha(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrValorInvalido), errors.Is(err, comissao.ErrValidacao):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, comissao.ErrComissaoNaoEncontrada), errors.Is(err, recebimento.ErrRecebimentoNaoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.Log.Error(msg, zap.Error(err))
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

func (h *Handler) invalidar(ctx context.Context, usuarioID string) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Invalidar(ctx, usuarioID); err != nil {
		h.Log.Warn("falha ao invalidar cache de resumo", zap.String("usuario", usuarioID), zap.Error(err))
	}
}

func usuario(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
	}
	return id, ok
}

// GET /comissoes/{id}/recebimentos
func (h *Handler) ListRecebimentos(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	recs, err := h.Servico.ListarRecebimentos(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao buscar recebimentos")
		return
	}
	utils.JSON(w, http.StatusOK, recs)
}

// POST /comissoes/{id}/recebimentos
func (h *Handler) CreateRecebimento(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	var in RecebimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	var data time.Time
	if in.Data != "" {
		var err error
		if data, err = comissao.ParseData(in.Data); err != nil {
			h.falha(w, err, "Data inválida")
			return
		}
	}

	rec, c, err := h.Servico.RegistrarRecebimento(r.Context(), uid, mux.Vars(r)["id"], in.Valor, data, in.Observacao)
	if err != nil {
		h.falha(w, err, "Erro ao registrar recebimento")
		return
	}
	h.invalidar(r.Context(), uid)
	utils.JSON(w, http.StatusCreated, respostaRecebimento{Recebimento: rec, Comissao: c})
}

// DELETE /comissoes/{id}/recebimentos/{rid}
func (h *Handler) DeleteRecebimento(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	if err := h.Servico.ExcluirRecebimento(r.Context(), uid, vars["id"], vars["rid"]); err != nil {
		h.falha(w, err, "Erro ao excluir recebimento")
		return
	}
	h.invalidar(r.Context(), uid)
	w.WriteHeader(http.StatusNoContent)
}

// POST /comissoes/{id}/pagar
func (h *Handler) MarcarComoPago(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	c, err := h.Servico.MarcarComoPago(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao marcar comissão como paga")
		return
	}
	h.invalidar(r.Context(), uid)
	utils.JSON(w, http.StatusOK, c)
}

// GET /parcelas-pendentes
func (h *Handler) ParcelasPendentes(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	parcelas, err := h.Servico.ParcelasPendentes(r.Context(), uid)
	if err != nil {
		h.falha(w, err, "Erro ao buscar parcelas pendentes")
		return
	}
	utils.JSON(w, http.StatusOK, parcelas)
}

func (h *Handler) Registrar(r *mux.Router) {
	r.HandleFunc("/comissoes/{id}/recebimentos", h.ListRecebimentos).Methods(http.MethodGet)
	r.HandleFunc("/comissoes/{id}/recebimentos", h.CreateRecebimento).Methods(http.MethodPost)
	r.HandleFunc("/comissoes/{id}/recebimentos/{rid}", h.DeleteRecebimento).Methods(http.MethodDelete)
	r.HandleFunc("/comissoes/{id}/pagar", h.MarcarComoPago).Methods(http.MethodPost)
	r.HandleFunc("/parcelas-pendentes", h.ParcelasPendentes).Methods(http.MethodGet)
}
