package web

import (
	"context"
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Nintron27/pillow"
	"github.com/andybalholm/brotli"
	"github.com/caarlos0/env/v11"
	"github.com/dchest/uniuri"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/premiumiptv/landing/internal/assets"
	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/handlers"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/metrics"
	"github.com/premiumiptv/landing/internal/redirect"
	"github.com/premiumiptv/landing/internal/routes"
	"github.com/premiumiptv/landing/web/locales"
	"github.com/premiumiptv/landing/web/messages"
	"github.com/premiumiptv/landing/web/templates"
)

//go:embed static
var staticFS embed.FS

type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	Env          string        `env:"ENV" envDefault:"dev"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"0s"` // streams stay open for the page lifetime
	SessionKey   string        `env:"SESSION_KEY"`
	NATSStoreDir string        `env:"NATS_STORE_DIR" envDefault:"tmp/js"`
	// StaticDir serves assets from disk instead of the embedded copy.
	StaticDir string `env:"STATIC_DIR"`

	WhatsAppPhone  string `env:"WHATSAPP_PHONE" envDefault:"212723279328"`
	TelegramHandle string `env:"TELEGRAM_HANDLE" envDefault:"premiumiptvsupport"`
	SupportEmail   string `env:"SUPPORT_EMAIL" envDefault:"sam91bel@gmail.com"`

	CarouselStep     float64       `env:"CAROUSEL_STEP" envDefault:"1"`
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"33ms"`
	HeroInterval     time.Duration `env:"HERO_INTERVAL" envDefault:"5s"`
	LazyThreshold    float64       `env:"LAZY_THRESHOLD" envDefault:"0.1"`
	ViewTTL          time.Duration `env:"VIEW_TTL" envDefault:"2m"`
}

func (c Config) Prod() bool { return c.Env == "prod" }

// LoadConfig reads the configuration from environ, a list of KEY=value
// pairs as returned by os.Environ.
func LoadConfig(environ []string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.Prod() && cfg.SessionKey == "" {
		return cfg, errors.New("config: missing SESSION_KEY environment variable")
	}
	if cfg.CarouselInterval <= 0 || cfg.HeroInterval <= 0 {
		return cfg, errors.New("config: carousel and hero intervals must be positive")
	}
	return cfg, nil
}

func (c Config) sessionKey() ([]byte, error) {
	if c.SessionKey == "" {
		// dev only, preferences are lost on restart
		return []byte(uniuri.NewLen(32)), nil
	}
	return base64.URLEncoding.DecodeString(c.SessionKey)
}

func (c Config) static() (fs.FS, error) {
	if c.StaticDir != "" {
		return os.DirFS(c.StaticDir), nil
	}
	return fs.Sub(staticFS, "static")
}

// Run sets up all needed dependencies for the server, early returning with
// an error if one occurs.
func Run(ctx context.Context, environ []string, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := LoadConfig(environ)
	if err != nil {
		return err
	}

	// Create logger
	level := slog.LevelInfo
	if !cfg.Prod() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level}))

	bundle, err := i18n.Load(locales.FS, ".", "en", catalog.LanguageCodes())
	if err != nil {
		return err
	}
	tmpls, err := templates.LoadTemplates(messages.FS, "", ".txt.tmpl", bundle.Fallback())
	if err != nil {
		return err
	}

	key, err := cfg.sessionKey()
	if err != nil {
		return err
	}
	store := sessions.NewCookieStore(key)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.MaxAge = int((365 * 24 * time.Hour).Seconds())
	store.Options.Secure = cfg.Prod()
	store.Options.SameSite = http.SameSiteLaxMode

	static, err := cfg.static()
	if err != nil {
		return err
	}

	// Start embedded NATS server
	ns, err := pillow.Run(
		pillow.WithNATSServerOptions(&server.Options{
			JetStream: true,
			StoreDir:  cfg.NATSStoreDir,
		}),
		pillow.WithPlatformAdapter(ctx, cfg.Prod(), &pillow.FlyioHubAndSpoke{
			ClusterName:       "landing_swarm",
			DisableClustering: true,
		}),
	)
	if err != nil {
		return err
	}

	nc, err := ns.NATSClient()
	if err != nil {
		return err
	}

	// Create bucket for live page views
	js, err := jetstream.New(nc)
	if err != nil {
		return err
	}
	viewsKV, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  "views",
		TTL:     cfg.ViewTTL,
		Storage: jetstream.MemoryStorage,
	})
	if err != nil {
		return err
	}

	// Create and run server
	srv := NewServer(routes.Deps{
		Logger:   logger,
		Bundle:   bundle,
		Messages: tmpls,
		Static:   assets.New(static),
		Store:    store,
		NC:       nc,
		ViewsKV:  viewsKV,
		Dispatcher: redirect.NewDispatcher(redirect.Config{
			WhatsAppPhone:  cfg.WhatsAppPhone,
			TelegramHandle: cfg.TelegramHandle,
			SupportEmail:   cfg.SupportEmail,
		}, tmpls),
		Metrics: metrics.New(),
		Views: handlers.ViewConfig{
			CarouselStep:     cfg.CarouselStep,
			CarouselInterval: cfg.CarouselInterval,
			HeroInterval:     cfg.HeroInterval,
			LazyThreshold:    cfg.LazyThreshold,
			TTL:              cfg.ViewTTL,
		},
		Dev: !cfg.Prod(),
	})
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
	go func() {
		logger.LogAttrs(
			ctx,
			slog.LevelInfo,
			"server started",
			slog.String("PORT", httpServer.Addr),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(stderr, "error listening and serving: %s\n", err)
			cancel()
		}
	}()

	// Handle graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(stderr, "error shutting down http server: %s\n", err)
		}
		nc.Close()
		if err := ns.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(stderr, "error shutting down nats server: %s\n", err)
		}
	}()
	wg.Wait()
	return nil
}

func NewServer(d routes.Deps) http.Handler {
	mux := chi.NewMux()

	mux.Use(middleware.Logger)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		MaxAge:         300,
	}))
	mux.Use(middleware.Heartbeat("/heartbeat"))
	mux.Use(Compressor(2))

	routes.AddRoutes(mux, d)

	return mux
}

// Compressor is chi's compressor middleware with a Brotli encoder added.
// Responses without a Content-Type header are not compressed, and neither
// are event streams, so live views flush as they are written.
//
// Passing a compression level of 2-5 is sensible value.
func Compressor(level int) func(next http.Handler) http.Handler {
	compressor := middleware.NewCompressor(level,
		"text/html", "text/css", "text/plain", "text/javascript",
		"application/javascript", "application/json", "image/svg+xml")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterV2(w, level)
	})

	return compressor.Handler
}
