package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/crm-comissoes/internal/auth"
	"github.com/KromaEnergia/crm-comissoes/internal/cache"
	"github.com/KromaEnergia/crm-comissoes/internal/cliente"
	"github.com/KromaEnergia/crm-comissoes/internal/comissao"
	"github.com/KromaEnergia/crm-comissoes/internal/conciliacao"
	"github.com/KromaEnergia/crm-comissoes/internal/config"
	"github.com/KromaEnergia/crm-comissoes/internal/corretor"
	"github.com/KromaEnergia/crm-comissoes/internal/meta"
	"github.com/KromaEnergia/crm-comissoes/internal/relatorio"
	"github.com/KromaEnergia/crm-comissoes/internal/utils/db"
	"github.com/KromaEnergia/crm-comissoes/internal/venda"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

func novoLogger(nivel string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(nivel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL inválido: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// migrar cria ou atualiza todas as tabelas da aplicação
func migrar(database *gorm.DB) error {
	for _, m := range []func(*gorm.DB) error{
		auth.Migrate,
		corretor.Migrate,
		cliente.Migrate,
		comissao.Migrate,
		venda.Migrate,
		meta.Migrate,
	} {
		if err := m(database); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		log.Fatal("Erro ao carregar configuração: ", err)
	}
	logger, err := novoLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.GetDB(cfg)
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}
	if err := migrar(database); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	ctx := context.Background()
	resumo := cache.NovoResumo(cache.Conectar(ctx, cfg.RedisAddr, logger), cache.TTLPadrao, logger)
	emissor := auth.NovoEmissor(cfg.JWTSecret, 0)
	sessoes := auth.NovasSessoes(database, emissor, cfg.CookieSeguro, logger)

	// Repositórios e serviços
	comissaoRepo := comissao.NewRepository(database)
	metaRepo := meta.NewRepository(database)
	servico := conciliacao.NovoServico(conciliacao.NovoRepositorioGorm(database), conciliacao.ComLogger(logger))

	// Handlers
	corretorHandler := corretor.NewHandler(database, emissor, logger)
	corretorHandler.Sessoes = sessoes
	comissaoHandler := comissao.NewHandler(comissaoRepo, metaRepo, resumo, logger)
	conciliacaoHandler := conciliacao.NewHandler(servico, resumo, logger)
	metaHandler := meta.NewHandler(metaRepo, logger)
	clienteHandler := cliente.NewHandler(database, logger)
	vendaHandler := venda.NewHandler(database, resumo, logger)
	relatorioHandler := relatorio.NewHandler(comissaoRepo, servico, logger)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Rotas públicas de autenticação
	corretorHandler.RegistrarPublicas(r)
	sessoes.Registrar(r)

	// Demais rotas exigem token
	api := r.NewRoute().Subrouter()
	api.Use(emissor.Middleware)
	corretorHandler.RegistrarProtegidas(api)
	comissaoHandler.Registrar(api)
	conciliacaoHandler.Registrar(api)
	metaHandler.Registrar(api)
	clienteHandler.Registrar(api)
	vendaHandler.Registrar(api)
	relatorioHandler.Registrar(api)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Porta),
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("servidor rodando", zap.Int("porta", cfg.Porta), zap.Bool("sqlite", cfg.UsaSQLite()), zap.Bool("cache", resumo.Ativo()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro no servidor", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}
	logger.Info("servidor encerrado")
}
