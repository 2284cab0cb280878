package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robertbarcik/mcp-helpdesk/configs"
	"github.com/robertbarcik/mcp-helpdesk/internal/adapter/inbound/repl"
	"github.com/robertbarcik/mcp-helpdesk/internal/adapter/outbound/mcppool"
	"github.com/robertbarcik/mcp-helpdesk/internal/adapter/outbound/openaichat"
	"github.com/robertbarcik/mcp-helpdesk/internal/usecase"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	// === Command Line Flags ===
	var query string
	flag.StringVar(&query, "q", "", "Run a single query and exit instead of starting the interactive session")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Configuration ===
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.OpenAIAPIKey == "" {
		fmt.Fprintln(os.Stderr, "HELPDESK_OPENAI_API_KEY is not set")
		os.Exit(1)
	}

	// === Logging ===
	logLevel := cfg.ParsedLogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", logLevel.String()))

	// === OpenTelemetry Initialization ===
	shutdownOtel, err := initOtelProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry.", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry TracerProvider.", slog.Any("error", err))
		}
	}()

	// A user interrupt surfaces as context.Canceled after run's deferred
	// pool shutdown has already completed; that is a clean exit.
	if err := run(ctx, cfg, query, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Helpdesk exited with error.", slog.Any("error", err))
		os.Exit(1)
	}
}

// run wires the dependency graph and drives either a single query or the
// interactive session. Split from main so the deferred pool shutdown runs
// before os.Exit.
func run(ctx context.Context, cfg *configs.Config, query string, logger *slog.Logger) error {
	// === Tool Server Fleet ===
	pool := mcppool.New(cfg.Servers, cfg.ToolCallTimeout, logger)
	logger.Info("Starting tool servers...", slog.Int("count", len(cfg.Servers)))
	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("starting tool servers: %w", err)
	}
	defer pool.Stop()

	tools, err := pool.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discovering tools: %w", err)
	}
	logger.Info("Tool discovery completed.", slog.Int("tools", len(tools)))

	// === Model Client & Use Case ===
	chat := openaichat.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	queries := usecase.NewQueryUseCase(chat, pool, cfg.MaxIterations, logger)

	// === Entry Point Selection ===
	if query != "" {
		answer, err := queries.Execute(ctx, query)
		if err != nil {
			return fmt.Errorf("running query: %w", err)
		}
		fmt.Println(answer)
		return nil
	}

	session := repl.New(queries, os.Stdin, os.Stdout, logger)
	return session.Run(ctx)
}

// initOtelProvider initializes the OpenTelemetry SDK and sets up the OTLP trace
// exporter. It returns a shutdown function to be called on application exit.
func initOtelProvider(cfg *configs.Config) (func(context.Context) error, error) {
	ctx := context.Background()

	if cfg.OtelExporterOtlpEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, OpenTelemetry tracing disabled.")
		return func(context.Context) error { return nil }, nil
	}

	slog.Info("Initializing OTLP exporter.", slog.String("endpoint", cfg.OtelExporterOtlpEndpoint))

	grpcOpts := []grpc.DialOption{}
	if cfg.OtelExporterOtlpInsecure {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		slog.Warn("Using insecure connection for OTLP exporter.")
	} else {
		slog.Info("Using secure connection for OTLP exporter (assuming system CAs).")
	}

	conn, err := grpc.NewClient(cfg.OtelExporterOtlpEndpoint, grpcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTLP endpoint: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("helpdesk"),
		),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	slog.Info("OpenTelemetry TracerProvider configured.")

	return func(ctx context.Context) error {
		providerErr := tp.Shutdown(ctx)
		connErr := conn.Close()
		return errors.Join(providerErr, connErr)
	}, nil
}
