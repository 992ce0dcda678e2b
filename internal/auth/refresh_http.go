package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	RefreshTTL    = 30 * 24 * time.Hour
	RefreshCookie = "rt"
)

var ErrRefreshInvalido = errors.New("refresh token inválido ou expirado")

func gerarBruto() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashBruto(bruto string) string {
	h := sha256.Sum256([]byte(bruto))
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// Sessoes emite o par access token + refresh token e faz a rotação do refresh.
type Sessoes struct {
	DB      *gorm.DB
	Emissor *Emissor
	// CookieSeguro deve ser false em http://localhost e true atrás de HTTPS.
	CookieSeguro bool
	Log          *zap.Logger
	Agora        func() time.Time
}

func NovasSessoes(db *gorm.DB, emissor *Emissor, cookieSeguro bool, log *zap.Logger) *Sessoes {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sessoes{DB: db, Emissor: emissor, CookieSeguro: cookieSeguro, Log: log, Agora: time.Now}
}

func (s *Sessoes) gravarCookie(w http.ResponseWriter, bruto string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    bruto,
		Path:     "/auth", // cobre /auth/refresh e /auth/logout
		HttpOnly: true,
		Secure:   s.CookieSeguro,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

func (s *Sessoes) limparCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/auth",
		HttpOnly: true,
		Secure:   s.CookieSeguro,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (s *Sessoes) criarRefresh(tx *gorm.DB, usuarioID, familia string) (string, *RefreshToken, error) {
	bruto, err := gerarBruto()
	if err != nil {
		return "", nil, err
	}
	rt := &RefreshToken{
		UsuarioID: usuarioID,
		Familia:   familia,
		Hash:      hashBruto(bruto),
		ExpiraEm:  s.Agora().Add(RefreshTTL),
	}
	if err := tx.Create(rt).Error; err != nil {
		return "", nil, err
	}
	return bruto, rt, nil
}

// Iniciar é chamado no login: devolve o access token e grava o cookie de refresh.
func (s *Sessoes) Iniciar(ctx context.Context, w http.ResponseWriter, usuarioID string) (string, error) {
	access, err := s.Emissor.GerarToken(usuarioID)
	if err != nil {
		return "", err
	}
	bruto, rt, err := s.criarRefresh(s.DB.WithContext(ctx), usuarioID, uuid.NewString())
	if err != nil {
		return "", err
	}
	s.gravarCookie(w, bruto, rt.ExpiraEm)
	return access, nil
}

// Renovar revoga o refresh apresentado e emite um novo da mesma família.
// Reapresentar um refresh já revogado derruba a família inteira.
func (s *Sessoes) Renovar(ctx context.Context, bruto string) (access, novoBruto string, exp time.Time, err error) {
	agora := s.Agora()
	var reutilizado *RefreshToken
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var atual RefreshToken
		if err := tx.Where("hash = ?", hashBruto(bruto)).First(&atual).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRefreshInvalido
			}
			return err
		}
		if !atual.valido(agora) {
			if atual.RevogadoEm != nil {
				reutilizado = &atual
			}
			return ErrRefreshInvalido
		}

		if err := tx.Model(&RefreshToken{}).Where("id = ?", atual.ID).Update("revogado_em", agora).Error; err != nil {
			return err
		}
		var rt *RefreshToken
		if novoBruto, rt, err = s.criarRefresh(tx, atual.UsuarioID, atual.Familia); err != nil {
			return err
		}
		exp = rt.ExpiraEm
		access, err = s.Emissor.GerarToken(atual.UsuarioID)
		return err
	})
	if reutilizado != nil {
		s.Log.Warn("refresh token reutilizado, revogando família",
			zap.String("usuario", reutilizado.UsuarioID), zap.String("familia", reutilizado.Familia))
		if errFam := revogarFamilia(s.DB.WithContext(ctx), reutilizado.Familia, agora); errFam != nil {
			return "", "", time.Time{}, errFam
		}
	}
	if err != nil {
		return "", "", time.Time{}, err
	}
	return access, novoBruto, exp, nil
}

func revogarFamilia(tx *gorm.DB, familia string, agora time.Time) error {
	return tx.Model(&RefreshToken{}).
		Where("familia = ? AND revogado_em IS NULL", familia).
		Update("revogado_em", agora).Error
}

// Encerrar revoga o refresh apresentado; valores desconhecidos são ignorados.
func (s *Sessoes) Encerrar(ctx context.Context, bruto string) error {
	return s.DB.WithContext(ctx).Model(&RefreshToken{}).
		Where("hash = ? AND revogado_em IS NULL", hashBruto(bruto)).
		Update("revogado_em", s.Agora()).Error
}

type RespostaRefresh struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// POST /auth/refresh
func (s *Sessoes) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(RefreshCookie)
	if err != nil || c.Value == "" {
		http.Error(w, "refresh ausente", http.StatusUnauthorized)
		return
	}
	access, novo, exp, err := s.Renovar(r.Context(), c.Value)
	if errors.Is(err, ErrRefreshInvalido) {
		s.limparCookie(w)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		s.Log.Error("erro ao renovar sessão", zap.Error(err))
		s.limparCookie(w)
		http.Error(w, "erro ao renovar sessão", http.StatusInternalServerError)
		return
	}
	s.gravarCookie(w, novo, exp)
	utils.JSON(w, http.StatusOK, RespostaRefresh{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.Emissor.TTL().Seconds()),
	})
}

// POST /auth/logout
func (s *Sessoes) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(RefreshCookie); err == nil && c.Value != "" {
		if err := s.Encerrar(r.Context(), c.Value); err != nil {
			s.Log.Error("erro ao revogar refresh token", zap.Error(err))
		}
	}
	s.limparCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Sessoes) Registrar(r *mux.Router) {
	r.HandleFunc("/auth/refresh", s.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", s.Logout).Methods(http.MethodPost)
}
