package relatorio

import (
	"errors"
	"fmt"
)

var ErrOpcoesInvalidas = errors.New("opções de exportação inválidas")

type Formato string

const (
	FormatoCSV   Formato = "csv"
	FormatoExcel Formato = "excel"
	FormatoXLSX  Formato = "xlsx"
	FormatoPDF   Formato = "pdf"
)

type Tema string

const (
	TemaRoxo  Tema = "roxo"
	TemaAzul  Tema = "azul"
	TemaVerde Tema = "verde"
)

const TituloPadrao = "Relatório de Comissões"

type Cor struct{ R, G, B int }

// Hex devolve a cor no formato RRGGBB usado pelo excelize.
func (c Cor) Hex() string { return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B) }

type Paleta struct {
	Primaria Cor
	Sucesso  Cor
	Alerta   Cor
	Perigo   Cor
	Texto    Cor
}

var paletas = map[Tema]Paleta{
	TemaRoxo: {
		Primaria: Cor{107, 33, 168},
		Sucesso:  Cor{22, 163, 74},
		Alerta:   Cor{217, 119, 6},
		Perigo:   Cor{220, 38, 38},
		Texto:    Cor{31, 41, 55},
	},
	TemaAzul: {
		Primaria: Cor{29, 78, 216},
		Sucesso:  Cor{5, 150, 105},
		Alerta:   Cor{202, 138, 4},
		Perigo:   Cor{185, 28, 28},
		Texto:    Cor{30, 41, 59},
	},
	TemaVerde: {
		Primaria: Cor{21, 128, 61},
		Sucesso:  Cor{13, 148, 136},
		Alerta:   Cor{234, 88, 12},
		Perigo:   Cor{190, 18, 60},
		Texto:    Cor{20, 83, 45},
	},
}

func (t Tema) Paleta() Paleta {
	if p, ok := paletas[t]; ok {
		return p
	}
	return paletas[TemaRoxo]
}

// Campos liga e desliga colunas e seções do arquivo.
type Campos struct {
	Cliente       bool `json:"cliente"`
	Imovel        bool `json:"imovel"`
	ValorVenda    bool `json:"valorVenda"`
	ValorComissao bool `json:"valorComissao"`
	DataVenda     bool `json:"dataVenda"`
	DataPagamento bool `json:"dataPagamento"`
	Status        bool `json:"status"`

	ParcelasPendentes bool `json:"parcelasPendentes"`
	ResumoFinanceiro  bool `json:"resumoFinanceiro"`
	Graficos          bool `json:"graficos"`
}

// TodosCampos liga tudo; Normalizar recorta para o formato.
func TodosCampos() Campos {
	return Campos{
		Cliente: true, Imovel: true, ValorVenda: true, ValorComissao: true,
		DataVenda: true, DataPagamento: true, Status: true,
		ParcelasPendentes: true, ResumoFinanceiro: true, Graficos: true,
	}
}

func (c Campos) TemColunaBase() bool {
	return c.Cliente || c.Imovel || c.ValorVenda || c.ValorComissao ||
		c.DataVenda || c.DataPagamento || c.Status
}

func (c Campos) interseccao(o Campos) Campos {
	return Campos{
		Cliente:           c.Cliente && o.Cliente,
		Imovel:            c.Imovel && o.Imovel,
		ValorVenda:        c.ValorVenda && o.ValorVenda,
		ValorComissao:     c.ValorComissao && o.ValorComissao,
		DataVenda:         c.DataVenda && o.DataVenda,
		DataPagamento:     c.DataPagamento && o.DataPagamento,
		Status:            c.Status && o.Status,
		ParcelasPendentes: c.ParcelasPendentes && o.ParcelasPendentes,
		ResumoFinanceiro:  c.ResumoFinanceiro && o.ResumoFinanceiro,
		Graficos:          c.Graficos && o.Graficos,
	}
}

// Suporta é a matriz de capacidades: o que cada formato consegue exibir.
func Suporta(f Formato) Campos {
	base := Campos{
		Cliente: true, Imovel: true, ValorVenda: true, ValorComissao: true,
		DataVenda: true, DataPagamento: true, Status: true,
	}
	switch f {
	case FormatoCSV:
		return base
	case FormatoExcel, FormatoXLSX:
		base.ParcelasPendentes = true
		base.ResumoFinanceiro = true
		return base
	case FormatoPDF:
		return TodosCampos()
	}
	return Campos{}
}

// Opcoes descreve um pedido de exportação.
type Opcoes struct {
	Formato Formato `json:"formato"`
	Campos  Campos  `json:"campos"`
	Tema    Tema    `json:"tema"`
	Titulo  string  `json:"titulo"`
	// Periodo é o texto do período filtrado, exibido no título.
	Periodo string `json:"-"`
}

// Normalizar desliga o que o formato não suporta e preenche tema e título.
func (o *Opcoes) Normalizar() {
	o.Campos = o.Campos.interseccao(Suporta(o.Formato))
	if o.Tema == "" {
		o.Tema = TemaRoxo
	}
	if o.Titulo == "" {
		o.Titulo = TituloPadrao
	}
}

func (o Opcoes) Validar() error {
	switch o.Formato {
	case FormatoCSV, FormatoExcel, FormatoXLSX, FormatoPDF:
	default:
		return fmt.Errorf("%w: formato '%s' desconhecido", ErrOpcoesInvalidas, o.Formato)
	}
	if _, ok := paletas[o.Tema]; !ok && o.Tema != "" {
		return fmt.Errorf("%w: tema '%s' desconhecido", ErrOpcoesInvalidas, o.Tema)
	}
	if !o.Campos.TemColunaBase() {
		return fmt.Errorf("%w: selecione ao menos uma coluna", ErrOpcoesInvalidas)
	}
	return nil
}
