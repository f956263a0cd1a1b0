package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/text/message"

	"github.com/osse101/ArkTools_Go/internal/config"
	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/logger"
	"github.com/osse101/ArkTools_Go/internal/metrics"
	"github.com/osse101/ArkTools_Go/internal/modfile"
	"github.com/osse101/ArkTools_Go/internal/transfer"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

const version = "1.0.0"

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

type options struct {
	parallel    bool
	pretty      bool
	quiet       bool
	verbose     bool
	stopwatch   bool
	lang        string
	seed        int64
	metricsFile string
	showHelp    bool
	showVersion bool
}

// runEnv is shared by every command of one invocation
type runEnv struct {
	cfg     *config.Config
	opts    options
	service transfer.Service
	loader  modfile.Loader
	printer *message.Printer
	stats   stats
}

// stats counts items across files, possibly from several workers
type stats struct {
	files     atomic.Int64
	converted atomic.Int64
	failed    atomic.Int64
}

func (s *stats) add(converted, failed int) {
	s.files.Add(1)
	s.converted.Add(int64(converted))
	s.failed.Add(int64(failed))
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitUsage
	}

	registry := newRegistry()
	fs, opts := parseOptions(cfg, stderr)
	fs.Usage = func() { registry.PrintHelp(stderr, fs.PrintDefaults) }
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintf(stderr, "arktools %s\n", version)
		return exitOK
	}
	if opts.showHelp || fs.NArg() == 0 {
		fs.Usage()
		if opts.showHelp {
			return exitOK
		}
		return exitUsage
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, version, cfg.Environment, false)
	logger.InitLoggerWithWriter(logCfg.WithVerbosity(opts.quiet, opts.verbose), stderr)
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	cmd, ok := registry.Get(fs.Arg(0))
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return exitUsage
	}

	loader, err := modfile.NewLoader()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	env := &runEnv{
		cfg:     cfg,
		opts:    *opts,
		service: transfer.NewService(item.NewEncoder(utils.NewRandomSource(opts.seed)), transfer.CacheConfig{Size: cfg.PoolCacheSize, TTL: transfer.DefaultCacheTTL}),
		loader:  loader,
		printer: utils.NewPrinter(opts.lang),
	}

	ctx = logger.WithBatchID(ctx, logger.NewBatchID())
	start := time.Now()
	log := logger.FromContext(ctx)
	log.Debug(logger.LogMsgBatchStarted, logger.AttrKeyCommand, cmd.Name())
	done := metrics.TrackBatch(cmd.Name())
	err = cmd.Run(ctx, env, fs.Args()[1:])
	done()
	log.Info(logger.LogMsgBatchFinished,
		logger.AttrKeyCommand, cmd.Name(),
		logger.AttrKeyElapsed, time.Since(start),
		"converted", env.stats.converted.Load(),
		"failed", env.stats.failed.Load())

	code := exitOK
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
		code = exitError
		if errors.Is(err, errUsage) || errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintf(stderr, "Usage: arktools [OPTIONS] %s %s\n", cmd.Name(), cmd.Usage())
			code = exitUsage
		}
	}

	if !opts.quiet {
		env.printer.Fprintf(stderr, "%d items converted, %d failed, %d files\n",
			env.stats.converted.Load(), env.stats.failed.Load(), env.stats.files.Load())
	}
	if opts.stopwatch {
		env.printer.Fprintf(stderr, "Elapsed: %v\n", time.Since(start).Round(time.Millisecond))
	}
	if opts.metricsFile != "" {
		if err := metrics.WriteTextfile(ctx, opts.metricsFile); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			code = exitError
		}
	}
	return code
}

func parseOptions(cfg *config.Config, stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("arktools", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&opts.parallel, "parallel", false, "Convert matched input files on a worker pool")
	fs.BoolVar(&opts.parallel, "p", false, "Convert in parallel (shorthand)")
	fs.BoolVar(&opts.pretty, "pretty-printing", cfg.Pretty, "Indent output JSON")
	fs.BoolVar(&opts.quiet, "quiet", false, "Only log errors and skip the summary")
	fs.BoolVar(&opts.quiet, "q", false, "Quiet (shorthand)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log debug output")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose (shorthand)")
	fs.BoolVar(&opts.stopwatch, "stopwatch", false, "Print elapsed time")
	fs.BoolVar(&opts.stopwatch, "s", false, "Stopwatch (shorthand)")
	fs.StringVar(&opts.lang, "lang", cfg.Lang, "Locale of the summary line, e.g. en or de-DE")
	fs.Int64Var(&opts.seed, "seed", cfg.Seed, "Seed for item ids; 0 draws from the system source")
	fs.StringVar(&opts.metricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file on exit")
	fs.BoolVar(&opts.showHelp, "help", false, "Show usage")
	fs.BoolVar(&opts.showHelp, "h", false, "Show usage (shorthand)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	return fs, opts
}
