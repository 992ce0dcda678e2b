package relatorio

import (
	"bytes"
	"encoding/csv"

	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
)

// gerarCSV escreve cabeçalho e uma linha por comissão, sem totais.
func gerarCSV(lista []comissao.Comissao, op Opcoes) ([]byte, error) {
	cols := colunasAtivas(op.Campos)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(titulos(cols)); err != nil {
		return nil, err
	}
	linha := make([]string, len(cols))
	for _, c := range lista {
		for i, col := range cols {
			linha[i] = col.valor(c)
		}
		if err := w.Write(linha); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
