package corretor

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrCadastroInvalido = errors.New("cadastro inválido")

// TamanhoMinimoSenha é o comprimento mínimo aceito no cadastro.
const TamanhoMinimoSenha = 6

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type RegistrarRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	CRECI     string `json:"creci"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Senha     string `json:"senha"`
}

// AtualizarRequest usa ponteiros: campo ausente não é alterado.
type AtualizarRequest struct {
	Nome      *string `json:"nome"`
	Sobrenome *string `json:"sobrenome"`
	CRECI     *string `json:"creci"`
	Telefone  *string `json:"telefone"`
}

type TokenResponse struct {
	Token    string    `json:"token"`
	Corretor *Corretor `json:"corretor"`
}

func normalizarEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (r RegistrarRequest) Validar() error {
	if strings.TrimSpace(r.Nome) == "" {
		return fmt.Errorf("%w: nome é obrigatório", ErrCadastroInvalido)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: e-mail inválido", ErrCadastroInvalido)
	}
	if len(r.Senha) < TamanhoMinimoSenha {
		return fmt.Errorf("%w: senha deve ter ao menos 6 caracteres", ErrCadastroInvalido)
	}
	return nil
}
