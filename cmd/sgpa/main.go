// Package main provides the interactive SGPA calculator entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/garyellow/sgpa-go/internal/buildinfo"
	"github.com/garyellow/sgpa-go/internal/catalog"
	"github.com/garyellow/sgpa-go/internal/config"
	"github.com/garyellow/sgpa-go/internal/console"
	"github.com/garyellow/sgpa-go/internal/logger"
	"github.com/garyellow/sgpa-go/internal/metrics"
	"github.com/garyellow/sgpa-go/internal/sentry"
	"github.com/garyellow/sgpa-go/internal/session"
	"github.com/garyellow/sgpa-go/internal/sgpa"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// CLI flags
var (
	deptFlag    = flag.String("dept", "", "Department to select at startup (overrides "+config.EnvDefaultDepartment+")")
	semFlag     = flag.Int("sem", 0, "Semester to select at startup (overrides "+config.EnvDefaultSemester+")")
	policyFlag  = flag.String("policy", "", "Gate policy for calc: all or credited (overrides "+config.EnvGatePolicy+")")
	catalogFlag = flag.String("catalog", "", "Path to a catalog YAML file (default: embedded catalog)")
	noColorFlag = flag.Bool("no-color", false, "Disable ANSI colours")
	versionFlag = flag.Bool("version", false, "Print version and exit")
)

// options are the startup choices after flags override the environment.
type options struct {
	department string
	semester   int
	policy     sgpa.GatePolicy
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(buildinfo.String())
		return
	}

	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Logs go to stderr; stdout is the console.
	log := logger.NewWithOptions(cfg.LogLevel, os.Stderr, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Release()).Debug("Starting SGPA calculator")

	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.Environment,
		Release:     buildinfo.Release(),
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error reporting disabled")
	}
	defer sentry.Flush(config.SentryFlush)

	opts, err := resolveOptions(cfg, *deptFlag, *semFlag, *policyFlag)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		return 2
	}

	cat, err := catalog.Load(*catalogFlag)
	if err != nil {
		log.WithError(err).Error("Failed to load catalog")
		return 1
	}
	log.WithField("departments", len(cat.Departments())).Debug("Catalog loaded")

	var m *metrics.Metrics
	if cfg.MetricsEnabled() {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewBuildInfoCollector())
		m = metrics.New(registry)
		log.WithField("path", cfg.MetricsTextfile).Debug("Metrics textfile enabled")
	}

	sess := session.New(cat, opts.policy)
	log.WithSessionID(sess.ID()).
		WithField("policy", opts.policy.String()).
		Debug("Session created")
	con := console.New(console.Config{
		Session: sess,
		In:      os.Stdin,
		Out:     os.Stdout,
		Logger:  log,
		Metrics: m,
		Color:   !*noColorFlag && isTerminal(os.Stdout),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, line := range opts.startupCommands() {
		if _, err := con.Execute(ctx, line); err != nil {
			log.WithError(err).Error("Failed to write output")
			return 1
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	flushCtx, stopFlush := context.WithCancel(gctx)
	defer stopFlush()

	g.Go(func() (err error) {
		defer sentry.Recover(gctx, &err)
		defer stopFlush()
		return con.Run(gctx)
	})
	if m != nil {
		g.Go(func() error {
			flushLoop(flushCtx, m, cfg.MetricsTextfile, cfg.MetricsFlushInterval, log)
			return nil
		})
	}

	err = g.Wait()

	if m != nil {
		if werr := m.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.WithError(werr).Warn("Failed to write metrics on exit")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Console stopped with error")
		return 1
	}
	return 0
}

// resolveOptions merges flags over configuration. Zero flag values defer to
// the configuration.
func resolveOptions(cfg *config.Config, dept string, sem int, policy string) (options, error) {
	opts := options{
		department: strings.ToLower(strings.TrimSpace(dept)),
		semester:   sem,
	}
	if opts.department == "" {
		opts.department = cfg.DefaultDepartment
	}
	if opts.semester == 0 {
		opts.semester = cfg.DefaultSemester
	}
	if opts.semester < 0 {
		return options{}, fmt.Errorf("semester cannot be negative, got %d", opts.semester)
	}
	if opts.semester > 0 && opts.department == "" {
		return options{}, errors.New("a semester needs a department")
	}

	if policy == "" {
		policy = cfg.GatePolicy
	}
	p, err := sgpa.ParseGatePolicy(policy)
	if err != nil {
		return options{}, err
	}
	opts.policy = p
	return opts, nil
}

// startupCommands replays the startup selection through the console.
func (o options) startupCommands() []string {
	var lines []string
	if o.department != "" {
		lines = append(lines, "dept "+o.department)
	}
	if o.semester > 0 {
		lines = append(lines, fmt.Sprintf("sem %d", o.semester))
	}
	return lines
}

// flushLoop writes the metrics textfile every interval until ctx is done.
func flushLoop(ctx context.Context, m *metrics.Metrics, path string, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.WriteTextfile(path); err != nil {
				log.WithError(err).Warn("Failed to flush metrics")
			}
		}
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
