package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/env"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/notify"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/parser"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/ratelimiter"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/service"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/store/memory"
)

const version = "2.5.0"

//	@title			NoodleGenius
//	@description	Restaurant ordering backend: customer ordering, cashier, kitchen display and menu digitization.

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		notifyDelay: time.Millisecond * time.Duration(env.GetInt("NOTIFY_SYNC_DELAY_MS", 1500)),
		googleCreds: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage: the whole session state lives in memory for the process
	// lifetime
	storage := memory.New()

	var sheetsImporter *parser.GoogleSheetsImporter
	if cfg.googleCreds != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		sheetsImporter, err = parser.NewGoogleSheetsImporter(parser.SheetsConfig{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets importer", "error", err)
		}
		logger.Info("Google Sheets importer initialized")
	} else {
		logger.Warn("Google credentials not provided, spreadsheet import will be unavailable")
	}

	// menu image recognition is an external capability; without a
	// configured recognizer the upload endpoint reports it unavailable
	var recognizer parser.MenuRecognizer
	logger.Warn("menu image recognition not configured")

	dispatcher := notify.NewSimulator(cfg.notifyDelay, logger)

	catalogService := service.NewCatalogService(storage.Menu, sheetsImporter, recognizer, logger)

	orderService := service.NewOrderService(
		storage.Menu,
		storage.Carts,
		storage.Orders,
		storage.Audit,
		storage.Settings,
		dispatcher,
		logger,
	)

	settingsService := service.NewSettingsService(storage.Settings, logger)

	app := &application{
		config:          cfg,
		logger:          logger,
		rateLimiter:     rateLimiter,
		storage:         storage,
		catalogService:  catalogService,
		orderService:    orderService,
		settingsService: settingsService,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
