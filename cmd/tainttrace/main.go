// Package main runs the taint propagation engine: seed materialization,
// the chronological scanner and the HTTP query surface in one process.
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

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/tainttrace-backend/internal/bitcoin"
	"github.com/goodnatureofminers/tainttrace-backend/internal/metrics"
	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/query"
	"github.com/goodnatureofminers/tainttrace-backend/internal/scanner"
	"github.com/goodnatureofminers/tainttrace-backend/internal/seed"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
	"github.com/goodnatureofminers/tainttrace-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	exitOK = iota
	exitConfig
	exitNodeUnreachable
	exitNodeSyncing
	exitStoreCorrupted
)

type config struct {
	NodeHost    string        `long:"node-host" env:"TAINTTRACE_NODE_HOST" description:"bitcoin node host" default:"127.0.0.1"`
	NodePort    uint16        `long:"node-port" env:"TAINTTRACE_NODE_PORT" description:"bitcoin node rpc port" default:"8332"`
	NodeUser    string        `long:"node-user" env:"TAINTTRACE_NODE_USER" description:"bitcoin node rpc username"`
	NodePass    string        `long:"node-pass" env:"TAINTTRACE_NODE_PASS" description:"bitcoin node rpc password"`
	NodeTimeout time.Duration `long:"node-timeout" env:"TAINTTRACE_NODE_TIMEOUT" description:"per-rpc timeout" default:"5m"`

	Network model.Network `long:"network" env:"TAINTTRACE_NETWORK" description:"network name" default:"mainnet"`

	StorePath string `long:"store-path" env:"TAINTTRACE_STORE_PATH" description:"taint store base directory" default:"./taintdb"`

	ScannerDisabled bool          `long:"scanner-disabled" env:"TAINTTRACE_SCANNER_DISABLED" description:"serve queries without scanning"`
	IdleInterval    time.Duration `long:"idle-interval" env:"TAINTTRACE_IDLE_INTERVAL" description:"tail poll interval at tip" default:"10m"`
	ChunkSize       uint64        `long:"chunk-size" env:"TAINTTRACE_CHUNK_SIZE" description:"blocks per catch-up window" default:"100"`
	BatchSize       int           `long:"batch-size" env:"TAINTTRACE_BATCH_SIZE" description:"store ops per batch flush" default:"1000"`
	BatchFlush      time.Duration `long:"batch-flush" env:"TAINTTRACE_BATCH_FLUSH" description:"time-based batch flush trigger" default:"5s"`
	ParentCacheMax  int           `long:"parent-cache-max" env:"TAINTTRACE_PARENT_CACHE_MAX" description:"parent taint cache entries" default:"10000"`
	TrailBlocks     uint64        `long:"trail-blocks" env:"TAINTTRACE_TRAIL_BLOCKS" description:"confirmation lag behind the tip" default:"0"`

	MaxParallel int           `long:"max-parallel" env:"TAINTTRACE_MAX_PARALLEL" description:"max in-flight rpc requests" default:"16"`
	MaxRetries  int           `long:"max-retries" env:"TAINTTRACE_MAX_RETRIES" description:"rpc retry attempts" default:"5"`
	RetryBase   time.Duration `long:"retry-base" env:"TAINTTRACE_RETRY_BASE" description:"rpc retry backoff base" default:"500ms"`
	RetryCap    time.Duration `long:"retry-cap" env:"TAINTTRACE_RETRY_CAP" description:"rpc retry backoff cap" default:"2m"`

	QueryTimeout time.Duration `long:"query-timeout" env:"TAINTTRACE_QUERY_TIMEOUT" description:"per-lookup wall-clock bound" default:"15s"`

	ListenAddr  string `long:"listen-addr" env:"TAINTTRACE_LISTEN_ADDR" description:"address for the query api" default:":8080"`
	MetricsAddr string `long:"metrics-addr" env:"TAINTTRACE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Error("failed to parse flags", zap.Error(err))
		os.Exit(exitConfig)
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("tainttrace failed", zap.Error(err))
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, bitcoin.ErrNodeSyncing):
		return exitNodeSyncing
	case errors.Is(err, bitcoin.ErrNodeUnreachable),
		errors.Is(err, bitcoin.ErrWrongChain),
		errors.Is(err, bitcoin.ErrNoTxIndex):
		return exitNodeUnreachable
	case errors.Is(err, store.ErrCorrupted):
		return exitStoreCorrupted
	default:
		return exitConfig
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	taintStore, err := store.Open(cfg.StorePath, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("open taint store: %w", err)
	}
	defer func() {
		if err := taintStore.Close(); err != nil {
			logger.Error("failed to close taint store", zap.Error(err))
		}
	}()

	rawClient, err := newRPCClient(cfg)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	rpc := bitcoin.NewRPCClient(
		rawClient,
		metrics.NewRPCClient(cfg.Network),
		bitcoin.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			Base:        cfg.RetryBase,
			Cap:         cfg.RetryCap,
			MaxJitter:   time.Second,
		},
		cfg.MaxParallel,
		logger.Named("rpc"),
	)
	defer rpc.Shutdown()

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	source := bitcoin.NewChainSource(rpc, decoder, cfg.Network)

	policyCtx, cancelPolicy := context.WithTimeout(ctx, cfg.NodeTimeout)
	err = source.VerifyNodePolicy(policyCtx)
	cancelPolicy()
	if err != nil {
		return fmt.Errorf("node policy check: %w", err)
	}

	builder, err := seed.NewBuilder(taintStore, source, metrics.NewSeedBuilder(cfg.Network), logger)
	if err != nil {
		return err
	}
	if err := builder.Run(ctx); err != nil {
		return fmt.Errorf("seed builder: %w", err)
	}

	seeds, err := seed.LoadSet(taintStore)
	if err != nil {
		return fmt.Errorf("load seed set: %w", err)
	}
	logger.Info("seed set loaded", zap.Int("addresses", seeds.Len()))

	scanSvc, err := scanner.NewService(taintStore, source, seeds, metrics.NewScanner(cfg.Network), scanner.Config{
		ChunkSize:       cfg.ChunkSize,
		BatchSize:       cfg.BatchSize,
		BatchFlush:      cfg.BatchFlush,
		IdleInterval:    cfg.IdleInterval,
		ParentCacheMax:  cfg.ParentCacheMax,
		PrefetchWorkers: cfg.MaxParallel,
		TrailBlocks:     cfg.TrailBlocks,
	}, logger)
	if err != nil {
		return err
	}

	scannerDone := make(chan error, 1)
	if cfg.ScannerDisabled {
		logger.Info("scanner disabled, serving queries only")
	} else {
		go func() {
			scannerDone <- scanSvc.Run(ctx)
		}()
	}

	querySvc := query.NewService(taintStore, source, cfg.QueryTimeout, logger)
	handler := transport.NewHandler(querySvc, scanSvc, logger)
	srv := transport.NewServer(cfg.ListenAddr, handler.Router())

	serverDone := make(chan error, 1)
	go func() {
		logger.Info("starting query api", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
			return
		}
		serverDone <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-scannerDone:
		runErr = err
	case err := <-serverDone:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown query api", zap.Error(err))
	}
	return runErr
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(cfg config) (*rpcclient.Client, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:         fmt.Sprintf("%s:%d", cfg.NodeHost, cfg.NodePort),
		User:         cfg.NodeUser,
		Pass:         cfg.NodePass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(connCfg, nil)
}
