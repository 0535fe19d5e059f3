package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	_ "coatingshop/docs"
	"coatingshop/internal/adapter/http/handlers"
	"coatingshop/internal/adapter/http/middleware"
	"coatingshop/internal/adapter/persistence/repository"
	"coatingshop/internal/config"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
	"coatingshop/internal/infrastructure/cache"
	"coatingshop/internal/infrastructure/connectivity"
	"coatingshop/internal/infrastructure/database"
	"coatingshop/internal/infrastructure/events"
	"coatingshop/internal/infrastructure/identity"
	"coatingshop/internal/infrastructure/mail"
	"coatingshop/internal/infrastructure/payments"
	"coatingshop/internal/infrastructure/ratelimit"
	"coatingshop/internal/usecase"
	"coatingshop/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Quotes   *handlers.QuoteHandler
	Drafts   *handlers.DraftHandler
	Catalog  *handlers.CatalogHandler
	Contact  *handlers.ContactHandler
	Payments *handlers.QuotePaymentHandler
}

// RouterDeps is everything NewRouter needs besides the handlers.
type RouterDeps struct {
	Verifier  middleware.TokenVerifier
	Online    middleware.OnlineChecker
	Limiter   ratelimit.Store
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
	Log       *zap.Logger
}

// NewRouter builds the gin engine. Every route is rate limited per client IP.
func NewRouter(h Handlers, deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Log),
		middleware.AccessLog(deps.Log),
		cors.New(corsConfig(deps.CORS)),
		middleware.RateLimit(deps.Limiter, deps.RateLimit.Requests, deps.RateLimit.Window, deps.Log),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	addContactRoutes(api, h.Contact)

	auth := middleware.Authenticate(deps.Verifier)
	online := middleware.RequireOnline(deps.Online)

	v1 := router.Group("/v1")
	addCatalogRoutes(v1, h.Catalog)
	addDraftRoutes(v1, h.Drafts, auth, online)
	addQuoteRoutes(v1, h.Quotes, h.Payments, auth, online)

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}

// newServer builds the HTTP server. Shutdown closes the hub first so event
// streams end instead of holding the drain open until the timeout.
func newServer(addr string, handler http.Handler, hub *events.Hub) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(hub.Shutdown)
	return srv
}

// Run wires the stores, use cases and handlers and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	paymentRepo := repository.NewQuotePaymentDynamoRepository(ddb, cfg.Tables.Payments)

	var (
		draftRepo interfaces.IDraftRepository
		limiter   ratelimit.Store
	)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
		draftRepo = repository.NewRedisDraftRepository(rdb, cfg.Redis.DraftTTL)
		limiter = ratelimit.NewRedisStore(rdb)
	} else {
		log.Warn("REDIS_ADDR not set, drafts and rate limits are kept in memory")
		draftRepo = repository.NewMemoryDraftRepository(cfg.Redis.DraftTTL)
		limiter = ratelimit.NewMemoryStore()
	}

	hub := events.NewHub()
	bus := events.Fanout{hub}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := events.NewKafkaQuotePublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		bus = append(bus, publisher)
		log.Info("publishing quote events to kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	smtp, err := mail.NewSMTPMailer(cfg.Mail, log)
	if err != nil {
		return err
	}
	mailer := mail.NewRetryingMailer(smtp, log)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	monitor := connectivity.NewMonitor(connectivity.DynamoProbe(ddb, cfg.Tables.Quotes), cfg.Connectivity.ProbeInterval, log)
	go monitor.Run(ctx)

	strategy := pricing.StrategyFor(cfg.Pricing.ServiceMode)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, bus, hub,
		usecase.WithServiceStrategy(strategy),
		usecase.WithEditablePolicy(entities.EditablePolicy(cfg.Quotes.EditPolicy)),
		usecase.WithQuoteLogger(log),
	)
	draftUseCase := usecase.NewDraftUseCase(draftRepo, quoteUseCase, strategy.Name(), log)
	contactUseCase := usecase.NewContactUseCase(mailer, cfg.Mail.NotifyTo, log)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway, usecase.PaymentSettings{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, log)

	router := NewRouter(Handlers{
		Quotes:   handlers.NewQuoteHandler(quoteUseCase),
		Drafts:   handlers.NewDraftHandler(draftUseCase),
		Catalog:  handlers.NewCatalogHandler(),
		Contact:  handlers.NewContactHandler(contactUseCase, !cfg.IsProduction(), log),
		Payments: handlers.NewQuotePaymentHandler(paymentUseCase, log),
	}, RouterDeps{
		Verifier:  identity.NewHSProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience),
		Online:    monitor,
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Log:       log,
	})

	srv := newServer(":"+cfg.Port, router, hub)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
