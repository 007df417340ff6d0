// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/altx-finance/ledger-engine/internal/accountdelivery"
	"github.com/altx-finance/ledger-engine/internal/accountrepo"
	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/cardcontrol"
	"github.com/altx-finance/ledger-engine/internal/carddelivery"
	"github.com/altx-finance/ledger-engine/internal/entryrepo"
	"github.com/altx-finance/ledger-engine/internal/events"
	"github.com/altx-finance/ledger-engine/internal/fraudservice"
	"github.com/altx-finance/ledger-engine/internal/idempotencyrepo"
	"github.com/altx-finance/ledger-engine/internal/idempotencyservice"
	"github.com/altx-finance/ledger-engine/internal/interbank"
	"github.com/altx-finance/ledger-engine/internal/kyc"
	"github.com/altx-finance/ledger-engine/internal/ledgerdelivery"
	"github.com/altx-finance/ledger-engine/internal/ledgerrepo"
	"github.com/altx-finance/ledger-engine/internal/ledgerservice"
	"github.com/altx-finance/ledger-engine/internal/limitdelivery"
	"github.com/altx-finance/ledger-engine/internal/limitrepo"
	"github.com/altx-finance/ledger-engine/internal/limitservice"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/internal/paymentdelivery"
	"github.com/altx-finance/ledger-engine/internal/paymentservice"
	"github.com/altx-finance/ledger-engine/internal/scheduler"
	"github.com/altx-finance/ledger-engine/internal/schedulerepo"
	"github.com/altx-finance/ledger-engine/internal/webhook"
	"github.com/altx-finance/ledger-engine/pkg/configpkg"
	"github.com/altx-finance/ledger-engine/pkg/currencypkg"
)

// Server holds db connection, handlers router, background worker and
// configuration.
type Server struct {
	DB        *sql.DB
	Engine    *gin.Engine
	Config    configpkg.Config
	Scheduler *scheduler.Worker
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	entryRepo := entryrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)
	idempotencyRepo := idempotencyrepo.NewRepoPGS(conn)
	limitRepo := limitrepo.NewRepoPGS(conn)
	scheduleRepo := schedulerepo.NewRepoPGS(conn)
	cardRepo := cardcontrol.NewRepoPGS(conn)

	auditor := audit.NewRepoPGS(conn)
	bus := events.NewLogBus(config.EventSigningSecret)
	notifier := webhook.NewHTTPNotifier(config.WebhookEnabled, config.WebhookURL, config.WebhookSecret)
	kycProvider := kyc.NewStubProvider()
	gateway := interbank.NewStubGateway(
		config.InterbankMode,
		config.InterbankProvider,
		config.InterbankStubFailureRate,
		config.InterbankRetryAttempts,
		config.InterbankRetryBackoff,
	)

	ledgerService := ledgerservice.NewService(ledgerRepo, entryRepo, accountRepo, auditor, bus, config.ClearingAccountOwner)
	limitService := limitservice.NewService(limitRepo, entryRepo, auditor)
	fraudService := fraudservice.NewService(entryRepo, auditor, bus)
	cardService := cardcontrol.NewService(cardRepo, entryRepo, auditor)
	guard := idempotencyservice.NewService(idempotencyRepo)

	paymentService := paymentservice.NewService(
		ledgerService,
		fraudService,
		limitService,
		cardService,
		accountRepo,
		scheduleRepo,
		gateway,
		kycProvider,
		auditor,
		notifier,
		config.KYCProviderMode,
		config.ClearingAccountOwner,
		config.SchedulerMaxAttempts,
	)

	accountHandler := accountdelivery.NewHandler(accountRepo)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	paymentHandler := paymentdelivery.NewHandler(paymentService, guard)
	limitHandler := limitdelivery.NewHandler(limitService)
	cardHandler := carddelivery.NewHandler(cardService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes := engine.Group("/").Use(middleware.Identity())

	routes.POST("/accounts", accountHandler.Create)
	routes.GET("/accounts/:id", accountHandler.Get)
	routes.GET("/accounts", accountHandler.List)
	routes.PATCH("/accounts/:id/status", accountHandler.SetStatus)

	routes.POST("/ledger/transfers", ledgerHandler.RecordTransfer)
	routes.GET("/ledger/accounts/:id/history", ledgerHandler.GetHistory)
	routes.GET("/ledger/accounts/:id/verify", ledgerHandler.VerifyBalance)
	routes.POST("/ledger/accounts/:id/reconcile", ledgerHandler.ReconcileBalance)

	routes.POST("/payments", paymentHandler.Create)
	routes.GET("/payments/schedules", paymentHandler.ListSchedules)
	routes.GET("/payments/schedules/:id", paymentHandler.GetSchedule)
	routes.POST("/payments/schedules/:id/cancel", paymentHandler.CancelSchedule)

	routes.POST("/limits", limitHandler.Create)
	routes.GET("/limits", limitHandler.List)

	routes.POST("/cards", cardHandler.Register)
	routes.PATCH("/cards/:token/status", cardHandler.SetStatus)
	routes.PUT("/cards/:token/controls", cardHandler.UpdateLimits)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", currencypkg.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	var worker *scheduler.Worker
	if config.SchedulerEnabled {
		worker = scheduler.NewWorker(
			scheduleRepo,
			paymentService,
			auditor,
			config.SchedulerPollInterval,
			config.SchedulerBatchSize,
			config.SchedulerRetryBackoff,
		)
	}

	server := &Server{
		DB:        conn,
		Engine:    engine,
		Config:    config,
		Scheduler: worker,
	}

	return server, nil
}
