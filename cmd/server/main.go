package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/blob"
	"github.com/notrecocon/cocon/internal/config"
	"github.com/notrecocon/cocon/internal/journal"
	"github.com/notrecocon/cocon/internal/middleware"
	"github.com/notrecocon/cocon/internal/service"
	"github.com/notrecocon/cocon/internal/storage/sqldb"
	"github.com/notrecocon/cocon/pkg/api/apiconnect"
	"github.com/notrecocon/cocon/pkg/logging"
)

// maxRequestBytes leaves room for a base64-encoded photo.
const maxRequestBytes = 8 << 20

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	v := config.New()
	flags := pflag.NewFlagSet("cocon-server", pflag.ExitOnError)
	flags.String("addr", ":8080", "listen address")
	flags.String("static-path", "./frontend/static", "directory of the web frontend")
	flags.String("db-driver", "sqlite", "database driver: sqlite or postgres")
	flags.String("db-path", "./data/cocon.db", "SQLite database file")
	flags.String("blob-driver", "local", "photo storage: local or s3")
	flags.String("blob-dir", "./data/blobs", "directory for local photo storage")
	flags.String("log-level", "info", "debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])
	if err := config.BindFlags(v, flags, "addr", "static_path", "db.driver", "db.path", "blob.driver", "blob.dir", "log.level"); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logging.Configure(cfg.Log.Level, cfg.Log.Format)
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	codes := auth.NewCodeAuthenticator(store)
	if cfg.Bootstrap.EditorCode != "" {
		if err := codes.SetCodes(ctx, cfg.Bootstrap.EditorCode, cfg.Bootstrap.PartnerCode); err != nil {
			return fmt.Errorf("failed to set access codes: %w", err)
		}
		slog.Info("Access codes set from configuration")
	}
	if ok, err := codes.CodesConfigured(ctx); err == nil && !ok {
		slog.Warn("Access codes are not configured; nobody can log in until they are set")
	}

	blobs, err := openBlobs(ctx, cfg)
	if err != nil {
		return err
	}

	j := journal.New(store, blobs)
	if err := j.EnsureEvergreen(ctx); err != nil {
		return err
	}

	replies := assistant.ReplySuggester(assistant.Unavailable{})
	if cfg.AI.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiSuggester(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			return err
		}
		replies = gemini
	} else {
		slog.Info("Reply suggestions disabled; set ai.gemini_api_key to enable them")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	svc := service.NewJournalService(j, codes, jwtManager, service.Options{
		Replies: replies,
		Songs:   assistant.NewOEmbedClient(cfg.AI.OEmbedURL, nil),
		Logger:  slog.Default(),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	mux := http.NewServeMux()

	path, handler := apiconnect.NewJournalServiceHandler(svc,
		connect.WithInterceptors(
			metrics.Interceptor(),
			middleware.RequireAuth(jwtManager, apiconnect.PublicProcedures...),
			middleware.LoggingInterceptor(),
		),
		connect.WithReadMaxBytes(maxRequestBytes),
	)
	mux.Handle(path, handler)
	mux.Handle("GET "+blob.URLPrefix, photoHandler(blobs, jwtManager))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	srv := &http.Server{
		Addr: cfg.Addr,
		// h2c serves HTTP/2 without TLS for Connect clients.
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (*sqldb.Store, error) {
	target := cfg.DB.Path
	if cfg.DB.Driver == "postgres" {
		target = cfg.DB.DSN
	}
	store, err := sqldb.Open(ctx, cfg.DB.Driver, target)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	slog.Info("Storage initialized", "driver", store.Dialect().String())
	return store, nil
}

func openBlobs(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	if cfg.Blob.Driver == "s3" {
		s3, err := blob.NewS3(ctx, blob.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
		}
		slog.Info("Photo storage initialized", "driver", "s3", "bucket", cfg.S3.Bucket)
		return s3, nil
	}
	local, err := blob.NewLocal(cfg.Blob.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}
	slog.Info("Photo storage initialized", "driver", "local", "dir", cfg.Blob.Dir)
	return local, nil
}

// staticHandler serves the frontend, falling back to index.html for unknown paths.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/"+apiconnect.JournalServiceName+"/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
