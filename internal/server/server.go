// Package server wires the billing engine and exposes it over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/client/escrow"
	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/config"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/handlers"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/processor"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/services"
)

// Engine bundles everything a binary needs after wiring.
type Engine struct {
	Pool        *pgxpool.Pool
	Queries     *db.Queries
	Clock       clock.Clock
	PeriodicJob *processor.PeriodicJob
	Router      *gin.Engine
}

// ConnectPool opens the database pool, retrying with exponential backoff so a
// restarting database does not kill the binary at boot.
func ConnectPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	operation := func() error {
		var err error
		pool, err = pgxpool.New(ctx, databaseURL)
		if err != nil {
			return err
		}
		if err = pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(expBackoff, ctx)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

// Build wires the full engine from configuration.
func Build(ctx context.Context, cfg *config.Config) (*Engine, error) {
	pool, err := ConnectPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	queries := db.New(pool)

	var clk clock.Clock
	if helpers.IsMockClockStage(cfg.Stage) {
		clk = clock.NewMockClock(queries)
	} else {
		clk = clock.NewWallClock()
	}

	escrowClient := escrow.NewEscrowClient(cfg.EscrowBaseURL, cfg.EscrowAPIKey)
	factory := providers.NewFactory(escrowClient, cfg.StripeAPIKey)

	log := logger.Log
	notifications := services.NewNotificationService(log, cfg.ResendAPIKey, cfg.AdminAlertEmail)
	validation := services.NewValidationService(log, notifications)
	invoices := services.NewInvoiceService(log)
	credits := services.NewCreditService(log)
	payments := services.NewPaymentService(log, credits, invoices, notifications)
	billing := services.NewSubscriptionBillingService(log, invoices, credits, payments, validation, factory)
	tiers := services.NewTierService(pool, queries, log, billing, payments, invoices, factory, clk)
	grace := services.NewGraceService(log, notifications)
	usage := services.NewUsageService(log, invoices)
	reconciliation := services.NewReconciliationService(pool, queries, log, invoices, clk)
	cleanup := services.NewCleanupService(pool, queries, log, notifications, clk)

	customers := processor.NewCustomerProcessor(pool, log, clk, factory, invoices, payments, billing, tiers, grace, usage, validation)
	job := processor.NewPeriodicJob(queries, log, clk, customers, reconciliation, cleanup)

	router := buildRouter(cfg, pool, queries, log, clk, tiers, credits, job, escrowClient, factory)

	return &Engine{
		Pool:        pool,
		Queries:     queries,
		Clock:       clk,
		PeriodicJob: job,
		Router:      router,
	}, nil
}

func buildRouter(
	cfg *config.Config,
	pool *pgxpool.Pool,
	queries *db.Queries,
	log *zap.Logger,
	clk clock.Clock,
	tiers *services.TierService,
	credits *services.CreditService,
	job *processor.PeriodicJob,
	escrowClient escrow.Client,
	factory *providers.Factory,
) *gin.Engine {
	if cfg.Stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://app.sealpoint.io"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	billingHandler := handlers.NewBillingHandler(pool, queries, log, clk, tiers, credits, escrowClient, factory)
	adminHandler := handlers.NewAdminHandler(pool, queries, log, clk, job, credits)

	router.GET("/healthz", adminHandler.Health)

	v1 := router.Group("/v1")
	{
		customer := v1.Group("/customers/:customerID")
		{
			customer.POST("/subscriptions", billingHandler.Subscribe)
			customer.POST("/subscriptions/upgrade", billingHandler.Upgrade)
			customer.POST("/subscriptions/downgrade", billingHandler.Downgrade)
			customer.POST("/subscriptions/cancel", billingHandler.Cancel)
			customer.POST("/subscriptions/undo-cancel", billingHandler.UndoCancel)
			customer.GET("/subscriptions/can-provision", billingHandler.CanProvision)
			customer.GET("/billing-history", billingHandler.BillingHistory)
			customer.GET("/credits", billingHandler.Credits)
			customer.POST("/balance/refresh", billingHandler.RefreshBalance)
			customer.GET("/payment-methods", billingHandler.PaymentMethods)
			customer.PUT("/payment-methods/order", billingHandler.ReorderPaymentMethods)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/periodic-job/run", adminHandler.RunPeriodicJob)
			admin.POST("/periodic-job/run/:customerID", adminHandler.RunPeriodicJobForCustomer)
			admin.POST("/customers/:customerID/credits", adminHandler.IssueCredit)
			admin.GET("/notifications", adminHandler.ListNotifications)
			admin.POST("/notifications/:notificationID/ack", adminHandler.AcknowledgeNotification)
			if helpers.IsMockClockStage(cfg.Stage) {
				admin.PUT("/test-clock", adminHandler.SetTestClock)
			}
		}
	}

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, engine *Engine, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
