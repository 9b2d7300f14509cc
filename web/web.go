package web

import (
	"context"
	"embed"
	"encoding/json"
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
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/wigconnect/wigconnect/internal/assets"
	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/metrics"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/routes"
	"github.com/wigconnect/wigconnect/internal/settings"
	"github.com/wigconnect/wigconnect/web/templates"
)

//go:embed templates/*/*.html.tmpl
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

type Config struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	SettingsSource   string // "file" or "kv"
	SettingsPath     string
	SettingsKVBucket string
	SettingsKVKey    string
	SettingsWatch    bool
	NATSStoreDir     string

	// FormIdleTimeout is how long an untouched form session is kept.
	FormIdleTimeout time.Duration
}

func (c Config) Prod() bool { return c.Env == "prod" }

// ConfigFromEnv reads the config, filling in defaults for unset keys.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:             getenv("PORT"),
		Env:              getenv("ENV"),
		ReadTimeout:      time.Second * 5,
		WriteTimeout:     0, // SSE streams stay open
		SettingsSource:   getenv("SETTINGS_SOURCE"),
		SettingsPath:     getenv("SETTINGS_PATH"),
		SettingsKVBucket: getenv("SETTINGS_KV_BUCKET"),
		SettingsKVKey:    getenv("SETTINGS_KV_KEY"),
		SettingsWatch:    getenv("SETTINGS_WATCH") != "false",
		NATSStoreDir:     getenv("NATS_STORE_DIR"),
		FormIdleTimeout:  time.Hour,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SettingsSource == "" {
		cfg.SettingsSource = "file"
	}
	if cfg.SettingsPath == "" {
		cfg.SettingsPath = "settings.json"
	}
	if cfg.SettingsKVBucket == "" {
		cfg.SettingsKVBucket = "settings"
	}
	if cfg.SettingsKVKey == "" {
		cfg.SettingsKVKey = "document"
	}
	if cfg.NATSStoreDir == "" {
		cfg.NATSStoreDir = "tmp/js"
	}
	if cfg.SettingsSource != "file" && cfg.SettingsSource != "kv" {
		return cfg, fmt.Errorf("unknown SETTINGS_SOURCE %q, want file or kv", cfg.SettingsSource)
	}
	return cfg, nil
}

// Run sets up all needed dependencies for the server, early returning with
// an error if one occurs.
func Run(ctx context.Context, getenv func(string) string, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger
	logger := slog.New(slog.NewJSONHandler(stdout, nil))

	// Create config
	cfg, err := ConfigFromEnv(getenv)
	if err != nil {
		return err
	}

	// Parse templates
	tmpls, err := templates.LoadTemplates(templatesFS, "templates/", ".html.tmpl")
	if err != nil {
		return err
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "templates loaded", slog.Any("names", tmpls.Names()))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Resolve the settings source
	file := &settings.FileSource{Path: cfg.SettingsPath, Logger: logger}
	var src settings.Source = file
	var stopNATS func(context.Context) error
	if cfg.SettingsSource == "kv" {
		var kvSrc *settings.KVSource
		stopNATS, kvSrc, err = startKV(ctx, cfg, logger, file)
		if err != nil {
			return err
		}
		src = kvSrc
	}

	store := settings.NewStore(src, logger, m.SettingsLoaded)
	auditSettings(ctx, logger, store.Load(ctx))
	if cfg.SettingsWatch {
		if err := store.Watch(ctx); err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "settings watch unavailable",
				slog.String("source", src.String()),
				slog.String("error", err.Error()),
			)
		}
		go func() {
			snaps, cancel := store.Subscribe()
			defer cancel()
			for {
				select {
				case snap := <-snaps:
					auditSettings(ctx, logger, snap)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	forms := formstate.NewRegistry()
	go evictForms(ctx, logger, forms, m, cfg.FormIdleTimeout)

	// Create and run server
	srv := NewServer(routes.Deps{
		Logger:   logger,
		Tmpls:    tmpls,
		Assets:   assets.New(static),
		Store:    store,
		Forms:    forms,
		Metrics:  m,
		Gatherer: reg,
		Secure:   cfg.Prod(),
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
			slog.String("settings", src.String()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(stderr, "error listening and serving: %s\n", err)
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
		if stopNATS != nil {
			if err := stopNATS(shutdownCtx); err != nil {
				fmt.Fprintf(stderr, "error shutting down nats server: %s\n", err)
			}
		}
	}()
	wg.Wait()
	return nil
}

// startKV starts the embedded NATS server and returns a settings source
// backed by its key-value store, seeded from the settings file when the key
// does not exist yet. The returned func shuts the server down.
func startKV(ctx context.Context, cfg Config, logger *slog.Logger, seed *settings.FileSource) (stop func(context.Context) error, src *settings.KVSource, err error) {
	ns, err := pillow.Run(
		pillow.WithNATSServerOptions(&server.Options{
			JetStream: true,
			StoreDir:  cfg.NATSStoreDir,
		}),
		pillow.WithPlatformAdapter(ctx, cfg.Prod(), &pillow.FlyioHubAndSpoke{
			ClusterName:       "wigconnect",
			DisableClustering: true,
		}),
	)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			ns.Shutdown(shutdownCtx)
		}
	}()

	nc, err := ns.NATSClient()
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, nil, err
	}
	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  cfg.SettingsKVBucket,
		History: 5,
	})
	if err != nil {
		return nil, nil, err
	}
	src = &settings.KVSource{KV: kv, Key: cfg.SettingsKVKey}

	raw, fetchErr := seed.Fetch(ctx)
	if fetchErr != nil {
		logger.LogAttrs(ctx, slog.LevelInfo, "no settings file to seed kv from",
			slog.String("path", seed.Path),
		)
		return ns.Shutdown, src, nil
	}
	// The bucket holds JSON whatever the file format.
	doc, err := settings.Decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("seed settings kv: %w", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}
	created, err := src.Seed(ctx, data)
	if err != nil {
		return nil, nil, err
	}
	if created {
		logger.LogAttrs(ctx, slog.LevelInfo, "seeded settings kv",
			slog.String("source", src.String()),
			slog.String("from", seed.String()),
		)
	}
	return ns.Shutdown, src, nil
}

// auditSettings logs document entries the page has no slot for.
func auditSettings(ctx context.Context, logger *slog.Logger, snap *settings.Snapshot) {
	if snap.Fallback {
		return
	}
	err := presentation.Binder{Strict: true}.Apply(snap.Document, presentation.Skeleton())
	if errors.Is(err, presentation.ErrSlotMissing) {
		logger.LogAttrs(ctx, slog.LevelInfo, "settings entries without a slot",
			slog.String("source", snap.Source),
			slog.String("slots", err.Error()),
		)
	}
}

func evictForms(ctx context.Context, logger *slog.Logger, forms *formstate.Registry, m *metrics.Metrics, idle time.Duration) {
	t := time.NewTicker(idle / 4)
	defer t.Stop()
	for {
		select {
		case now := <-t.C:
			if n := forms.Evict(now.Add(-idle)); n > 0 {
				logger.LogAttrs(ctx, slog.LevelDebug, "evicted idle forms", slog.Int("count", n))
			}
			m.FormSessions.Set(float64(forms.Len()))
		case <-ctx.Done():
			return
		}
	}
}

func NewServer(d routes.Deps) http.Handler {
	mux := chi.NewMux()

	mux.Use(middleware.Logger)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	mux.Use(middleware.Heartbeat("/heartbeat"))
	mux.Use(Compressor(2))

	routes.AddRoutes(mux, d)

	return mux
}

// Compress is an adapter middleware from Chi that compresses
// the response body of a given content types to a data format based
// on Accept-Encoding request header. Adapted to include Brotli encoding.
//
// NOTE: make sure to set the Content-Type header on your response
// otherwise this middleware will not compress the response body.
//
// Passing a compression level of 2-5 is sensible value.
func Compressor(level int) func(next http.Handler) http.Handler {
	compressor := middleware.NewCompressor(level)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterV2(w, level)
	})

	return compressor.Handler
}
