package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"aurora-store/internal/config"
	"aurora-store/internal/db"
	"aurora-store/internal/httpserver"
	"aurora-store/internal/notify"
	"aurora-store/internal/payment"
	commentrepo "aurora-store/internal/repository/comment"
	orderrepo "aurora-store/internal/repository/order"
	productrepo "aurora-store/internal/repository/product"
	cartsvc "aurora-store/internal/service/cart"
	catalogsvc "aurora-store/internal/service/catalog"
	"aurora-store/internal/service/checkout"
	commentsvc "aurora-store/internal/service/comment"
	"aurora-store/internal/service/reconcile"
	"aurora-store/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	commentRepo := commentrepo.NewPostgres(dbpool, logger)

	sessionManager := session.NewManager()
	sessionStore := session.NewStore()

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(sessionStore, productRepo)
	commentService := commentsvc.New(commentRepo)

	var notifier notify.Notifier
	if cfg.MailConfigured() {
		notifier = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailSenderName)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	// Gateway selection happens exactly once, here. Provider credentials
	// always win over the simulated flow.
	var initiator checkout.Initiator
	if cfg.PaymentConfigured() {
		gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
		successURL := cfg.PublicBaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
		cancelURL := cfg.PublicBaseURL + "/checkout/cancel"
		initiator = checkout.NewHosted(cartService, orderRepo, gateway, cfg.Currency, successURL, cancelURL, logger)
		logger.Printf("payment gateway configured")
	} else {
		initiator = checkout.NewDirect(cartService, notifier, logger)
		logger.Printf("payment gateway not configured, using simulated checkout")
	}

	var reconciler *reconcile.Service
	if cfg.WebhookConfigured() {
		reconciler = reconcile.New(payment.NewStripeVerifier(cfg.StripeWebhookSecret), orderRepo, logger)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:   catalogService,
		CartSvc:      cartService,
		CommentSvc:   commentService,
		Checkout:     initiator,
		Reconciler:   reconciler,
		Sessions:     sessionManager,
		Currency:     cfg.Currency,
		CookieSecure: cfg.CookieSecure,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
