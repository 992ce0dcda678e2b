// internal/cliente/dto.go
package cliente

import (
	"errors"
	"fmt"
	"strings"
)

var ErrClienteInvalido = errors.New("cliente inválido")

type ClienteRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
}

func (r ClienteRequest) Aplicar(c *Cliente) error {
	nome := strings.TrimSpace(r.Nome)
	if nome == "" {
		return fmt.Errorf("%w: nome é obrigatório", ErrClienteInvalido)
	}
	c.Nome = nome
	c.Documento = strings.TrimSpace(r.Documento)
	c.Email = strings.ToLower(strings.TrimSpace(r.Email))
	c.Telefone = strings.TrimSpace(r.Telefone)
	return nil
}
