package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/kardia/internal/api"
	"github.com/terraincognita07/kardia/internal/cli"
	"github.com/terraincognita07/kardia/internal/db"
	"github.com/terraincognita07/kardia/internal/i18n"
	"github.com/terraincognita07/kardia/internal/security"
	"github.com/terraincognita07/kardia/internal/services"
	"github.com/terraincognita07/kardia/internal/store"
)

func main() {
	defaultDBPath := filepath.Join("data", "kardia.db")

	if len(os.Args) > 1 && os.Args[1] == "flush-cache" {
		runFlushCache(os.Args[2:], defaultDBPath)
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := mustSecretKey()
	dbPath := getEnv("DB_PATH", defaultDBPath)
	port := getEnv("PORT", "8080")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "ko")
	remoteURL := getEnv("REMOTE_STORE_URL", "")
	remoteKey := getEnv("REMOTE_STORE_KEY", "")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	if remoteURL == "" {
		log.Fatalf("REMOTE_STORE_URL is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repositories := db.NewRepositories(database)

	remote := store.NewRestTableClient(remoteURL, remoteKey, &http.Client{Timeout: 30 * time.Second})
	gateway := services.NewGateway(remote, repositories.Cache)

	i18nManager, err := i18n.NewManager(defaultLanguage)
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	handler, err := api.NewHandler(gateway, secretKey, location, i18nManager, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Kardia",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "kardia_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}))

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	go gateway.TestConnection(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Kardia listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runFlushCache(args []string, defaultDBPath string) {
	flags := flag.NewFlagSet("flush-cache", flag.ExitOnError)
	dbPath := flags.String("db", getEnv("DB_PATH", defaultDBPath), "path to the local cache database")
	userName := flags.String("user", "", "user name whose cached records are removed")
	if err := flags.Parse(args); err != nil {
		os.Exit(2)
	}

	if err := cli.RunFlushCacheCommand(*dbPath, *userName); err != nil {
		log.Fatalf("flush-cache failed: %v", err)
	}
}

func mustSecretKey() string {
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		return secret
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	generated, err := security.RandomString(48, alphabet)
	if err != nil {
		log.Fatalf("generate secret key failed: %v", err)
	}
	log.Printf("SECRET_KEY is not set, using a generated key; sessions will not survive a restart")
	return generated
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
