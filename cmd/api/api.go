package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/docs"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/ratelimiter"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/service"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/store/memory"
)

type application struct {
	config          config
	logger          *zap.SugaredLogger
	rateLimiter     ratelimiter.Limiter
	storage         *memory.Storage
	catalogService  *service.CatalogService
	orderService    *service.OrderService
	settingsService *service.SettingsService
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	notifyDelay time.Duration
	googleCreds string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.getMenuHandler)
			r.Post("/import/csv", app.importMenuCSVHandler)
			r.Get("/export/csv", app.exportMenuCSVHandler)
			r.Post("/import/sheet", app.importMenuSheetHandler)
			r.Post("/recognize", app.recognizeMenuHandler)
		})

		r.Route("/cart/{session_id}", func(r chi.Router) {
			r.Get("/", app.getCartHandler)
			r.Post("/items", app.addCartItemHandler)
			r.Delete("/items/{item_id}", app.removeCartItemHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", app.placeOrderHandler)
			r.Get("/pending", app.pendingOrdersHandler)
			r.Get("/active", app.activeOrdersHandler)
			r.Get("/{order_id}", app.getOrderHandler)
			r.Post("/{order_id}/payment", app.confirmPaymentHandler)
			r.Post("/{order_id}/advance", app.advanceOrderHandler)
			r.Get("/{order_id}/audit", app.getOrderAuditHandler)
		})

		r.Get("/settings", app.getSettingsHandler)
		r.Put("/settings", app.updateSettingsHandler)
		r.Post("/login", app.loginHandler)
		r.Post("/reset", app.resetHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "NoodleGenius"
	docs.SwaggerInfo.Description = "Restaurant ordering backend"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
