// internal/comissao/handler.go
package comissao

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/meta"
	"github.com/KromaEnergia/crm-comissoes/internal/recebimento"
	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FonteMetas é o que o resumo precisa do repositório de metas.
type FonteMetas interface {
	Buscar(ctx context.Context, usuarioID string, mes, ano int) (*meta.Meta, error)
}

// CacheResumo guarda o resultado de /comissoes/resumo por corretor.
type CacheResumo interface {
	Buscar(ctx context.Context, usuarioID, chave string, destino any) (bool, error)
	Salvar(ctx context.Context, usuarioID, chave string, valor any) error
	Invalidar(ctx context.Context, usuarioID string) error
}

type Handler struct {
	Repo  *Repository
	Metas FonteMetas
	Cache CacheResumo
	Log   *zap.Logger
	Agora func() time.Time
}

func NewHandler(repo *Repository, metas FonteMetas, cache CacheResumo, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Repo: repo, Metas: metas, Cache: cache, Log: log, Agora: time.Now}
}

// Detalhe é a comissão com recebimentos e saldo calculado.
type Detalhe struct {
	*Comissao
	ValorPago     decimal.Decimal `json:"valorPago"`
	ValorPendente decimal.Decimal `json:"valorPendente"`
}

// Resumo é a resposta de GET /comissoes/resumo.
type Resumo struct {
	Filtro             Filtro          `json:"filtro"`
	Totais             Totais          `json:"totais"`
	Mes                int             `json:"mes"`
	Ano                int             `json:"ano"`
	RecebidoMes        decimal.Decimal `json:"recebidoMes"`
	MetaComissao       decimal.Decimal `json:"metaComissao"`
	AtingidoPercentual float64         `json:"atingidoPercentual"`
}

func usuario(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
	}
	return id, ok
}

func (h *Handler) falha(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrValidacao):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrComissaoNaoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.Log.Error(msg, zap.Error(err))
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

// InvalidarResumo descarta o resumo em cache; falhas só são registradas.
func (h *Handler) InvalidarResumo(ctx context.Context, usuarioID string) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Invalidar(ctx, usuarioID); err != nil {
		h.Log.Warn("falha ao invalidar cache de resumo", zap.String("usuario", usuarioID), zap.Error(err))
	}
}

// POST /comissoes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	var in ComissaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	c, err := in.ParaModelo(uid)
	if err != nil {
		h.falha(w, err, "Erro ao criar comissão")
		return
	}
	if err := h.Repo.Create(r.Context(), c); err != nil {
		h.falha(w, err, "Erro ao criar comissão")
		return
	}
	h.InvalidarResumo(r.Context(), uid)
	utils.JSON(w, http.StatusCreated, c)
}

// GET /comissoes?aba=&texto=&periodo=&inicio=&fim=&ordem=az|za
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	f, err := ParseFiltro(r.URL.Query())
	if err != nil {
		h.falha(w, err, "Filtro inválido")
		return
	}
	todas, err := h.Repo.ListByUsuario(r.Context(), uid)
	if err != nil {
		h.falha(w, err, "Erro ao listar comissões")
		return
	}
	lista := FiltrarComissoes(todas, f, h.Agora())
	switch strings.ToLower(r.URL.Query().Get("ordem")) {
	case "az":
		lista = OrdenarPorCliente(lista, true)
	case "za":
		lista = OrdenarPorCliente(lista, false)
	}
	utils.JSON(w, http.StatusOK, lista)
}

// GET /comissoes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	c, err := h.Repo.FindComRecebimentos(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		h.falha(w, err, "Erro ao buscar comissão")
		return
	}
	pago := recebimento.Somar(c.Recebimentos)
	utils.JSON(w, http.StatusOK, Detalhe{
		Comissao:      c,
		ValorPago:     pago,
		ValorPendente: decimal.Max(c.ValorComissaoCorretor.Sub(pago), decimal.Zero),
	})
}

// PUT /comissoes/{id}. Status não é alterado por aqui.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	c, err := h.Repo.FindByID(r.Context(), uid, mux.Vars(r)["id"], false)
	if err != nil {
		h.falha(w, err, "Erro ao buscar comissão")
		return
	}
	var in ComissaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := in.Aplicar(c); err != nil {
		h.falha(w, err, "Erro ao atualizar comissão")
		return
	}
	if err := h.Repo.Update(r.Context(), c); err != nil {
		h.falha(w, err, "Erro ao atualizar comissão")
		return
	}
	h.InvalidarResumo(r.Context(), uid)
	utils.JSON(w, http.StatusOK, c)
}

// DELETE /comissoes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Delete(r.Context(), uid, mux.Vars(r)["id"]); err != nil {
		h.falha(w, err, "Erro ao excluir comissão")
		return
	}
	h.InvalidarResumo(r.Context(), uid)
	w.WriteHeader(http.StatusNoContent)
}

// GET /comissoes/resumo aceita os mesmos filtros da listagem.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	uid, ok := usuario(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	f, err := ParseFiltro(q)
	if err != nil {
		h.falha(w, err, "Filtro inválido")
		return
	}
	agora := h.Agora()
	chave := agora.Format(time.DateOnly) + "?" + q.Encode()

	var out Resumo
	if h.Cache != nil {
		achou, err := h.Cache.Buscar(r.Context(), uid, chave, &out)
		if err != nil {
			h.Log.Warn("falha ao ler cache de resumo", zap.Error(err))
		}
		if achou {
			utils.JSON(w, http.StatusOK, out)
			return
		}
	}

	todas, err := h.Repo.ListByUsuario(r.Context(), uid)
	if err != nil {
		h.falha(w, err, "Erro ao calcular resumo")
		return
	}
	out = Resumo{
		Filtro:       f,
		Totais:       CalcularTotais(FiltrarComissoes(todas, f, agora)),
		Mes:          int(agora.Month()),
		Ano:          agora.Year(),
		MetaComissao: decimal.Zero,
	}
	out.RecebidoMes = CalcularTotais(FiltrarComissoes(todas, Filtro{Aba: AbaTodas, Periodo: PeriodoMes}, agora)).Recebido

	if h.Metas != nil {
		m, err := h.Metas.Buscar(r.Context(), uid, out.Mes, out.Ano)
		switch {
		case err == nil:
			out.MetaComissao = m.MetaComissao
		case !errors.Is(err, meta.ErrMetaNaoEncontrada):
			h.falha(w, err, "Erro ao buscar meta")
			return
		}
	}
	out.AtingidoPercentual = AtingidoPercentual(out.RecebidoMes, out.MetaComissao)

	if h.Cache != nil {
		if err := h.Cache.Salvar(r.Context(), uid, chave, out); err != nil {
			h.Log.Warn("falha ao gravar cache de resumo", zap.Error(err))
		}
	}
	utils.JSON(w, http.StatusOK, out)
}

// Registrar pendura as rotas de comissão no router autenticado.
func (h *Handler) Registrar(r *mux.Router) {
	r.HandleFunc("/comissoes", h.List).Methods(http.MethodGet)
	r.HandleFunc("/comissoes", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/comissoes/resumo", h.Resumo).Methods(http.MethodGet)
	r.HandleFunc("/comissoes/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/comissoes/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/comissoes/{id}", h.Delete).Methods(http.MethodDelete)
}
