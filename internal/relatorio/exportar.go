package relatorio

import (
	"errors"
	"fmt"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
)

var (
	ErrNadaParaExportar = errors.New("nenhuma comissão para exportar")
	ErrFalhaExportacao  = errors.New("falha ao gerar arquivo de exportação")
)

const (
	tipoCSV  = "text/csv; charset=utf-8"
	tipoXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	tipoPDF  = "application/pdf"
)

// Arquivo é o artefato pronto para download.
type Arquivo struct {
	Nome        string
	ContentType string
	Conteudo    []byte
}

// Exportar gera o arquivo no formato pedido. O conteúdo é montado inteiro em
// memória: em caso de erro nenhum arquivo parcial é devolvido.
func Exportar(lista []comissao.Comissao, parcelas []conciliacao.ParcelaPendente, op Opcoes, agora time.Time) (*Arquivo, error) {
	if len(lista) == 0 {
		return nil, ErrNadaParaExportar
	}
	op.Normalizar()
	if err := op.Validar(); err != nil {
		return nil, err
	}

	base := "comissoes_" + agora.Format("20060102_150405")
	var (
		arq = &Arquivo{}
		err error
	)
	switch op.Formato {
	case FormatoCSV:
		arq.Nome, arq.ContentType = base+".csv", tipoCSV
		arq.Conteudo, err = gerarCSV(lista, op)
	case FormatoExcel:
		arq.Nome, arq.ContentType = base+".csv", tipoCSV
		arq.Conteudo, err = gerarPlanilha(lista, parcelas, op)
	case FormatoXLSX:
		arq.Nome, arq.ContentType = base+".xlsx", tipoXLSX
		arq.Conteudo, err = gerarXLSX(lista, parcelas, op)
	case FormatoPDF:
		arq.Nome, arq.ContentType = base+".pdf", tipoPDF
		arq.Conteudo, err = gerarPDF(lista, parcelas, op, agora)
	}
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrFalhaExportacao, op.Formato, err)
	}
	return arq, nil
}
