package relatorio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// FonteComissoes lista todas as comissões do corretor.
type FonteComissoes interface {
	ListByUsuario(ctx context.Context, usuarioID string) ([]comissao.Comissao, error)
}

// FonteParcelas projeta as parcelas pendentes do corretor.
type FonteParcelas interface {
	ParcelasPendentes(ctx context.Context, usuarioID string) ([]conciliacao.ParcelaPendente, error)
}

type Handler struct {
	Comissoes FonteComissoes
	Parcelas  FonteParcelas
	Log       *zap.Logger
	Agora     func() time.Time
}

func NewHandler(comissoes FonteComissoes, parcelas FonteParcelas, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Comissoes: comissoes, Parcelas: parcelas, Log: log, Agora: time.Now}
}

// FiltroPedido espelha os parâmetros de GET /comissoes.
type FiltroPedido struct {
	Aba     string `json:"aba"`
	Texto   string `json:"texto"`
	Periodo string `json:"periodo"`
	Inicio  string `json:"inicio"`
	Fim     string `json:"fim"`
}

func (f FiltroPedido) valores() url.Values {
	v := url.Values{}
	for k, s := range map[string]string{
		"aba": f.Aba, "texto": f.Texto, "periodo": f.Periodo, "inicio": f.Inicio, "fim": f.Fim,
	} {
		if s != "" {
			v.Set(k, s)
		}
	}
	return v
}

// PedidoExportacao é o corpo de POST /relatorios/exportar.
type PedidoExportacao struct {
	Filtro  FiltroPedido `json:"filtro"`
	Ordem   string       `json:"ordem"`
	Formato Formato      `json:"formato"`
	Campos  *Campos      `json:"campos"`
	Tema    Tema         `json:"tema"`
	Titulo  string       `json:"titulo"`
}

// POST /relatorios/exportar
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UsuarioID(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	var in PedidoExportacao
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	filtro, err := comissao.ParseFiltro(in.Filtro.valores())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	agora := h.Agora()
	op := Opcoes{
		Formato: Formato(strings.ToLower(string(in.Formato))),
		Campos:  TodosCampos(),
		Tema:    in.Tema,
		Titulo:  in.Titulo,
		Periodo: DescreverPeriodo(filtro, agora),
	}
	if in.Campos != nil {
		op.Campos = *in.Campos
	}
	op.Normalizar()
	if err := op.Validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	todas, err := h.Comissoes.ListByUsuario(r.Context(), uid)
	if err != nil {
		h.Log.Error("erro ao listar comissões para exportação", zap.Error(err))
		http.Error(w, "Erro ao buscar comissões", http.StatusInternalServerError)
		return
	}
	lista := comissao.FiltrarComissoes(todas, filtro, agora)
	switch strings.ToLower(in.Ordem) {
	case "az":
		lista = comissao.OrdenarPorCliente(lista, true)
	case "za":
		lista = comissao.OrdenarPorCliente(lista, false)
	}

	var parcelas []conciliacao.ParcelaPendente
	if op.Campos.ParcelasPendentes && len(lista) > 0 {
		if parcelas, err = h.Parcelas.ParcelasPendentes(r.Context(), uid); err != nil {
			h.Log.Error("erro ao projetar parcelas pendentes", zap.Error(err))
			http.Error(w, "Erro ao buscar parcelas pendentes", http.StatusInternalServerError)
			return
		}
	}

	arq, err := Exportar(lista, parcelas, op, agora)
	switch {
	case errors.Is(err, ErrNadaParaExportar):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.Log.Error("erro ao exportar", zap.String("formato", string(op.Formato)), zap.Error(err))
		http.Error(w, "Erro ao gerar arquivo", http.StatusInternalServerError)
		return
	}

	h.Log.Info("relatório exportado",
		zap.String("usuario", uid),
		zap.String("arquivo", arq.Nome),
		zap.Int("comissoes", len(lista)))
	w.Header().Set("Content-Type", arq.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+arq.Nome+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(arq.Conteudo)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(arq.Conteudo)
}

func (h *Handler) Registrar(r *mux.Router) {
	r.HandleFunc("/relatorios/exportar", h.Exportar).Methods(http.MethodPost)
}
