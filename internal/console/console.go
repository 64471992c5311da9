package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/garyellow/sgpa-go/internal/ctxutil"
	"github.com/garyellow/sgpa-go/internal/logger"
	"github.com/garyellow/sgpa-go/internal/metrics"
	"github.com/garyellow/sgpa-go/internal/session"
)

const moduleName = "console"

// Config holds the dependencies of a Console.
type Config struct {
	Session *session.Session
	In      io.Reader
	Out     io.Writer
	Logger  *logger.Logger
	Metrics *metrics.Metrics // nil disables metrics

	// Color enables ANSI colours in the result card and error lines.
	Color bool
}

// Console reads commands line by line and writes their output.
type Console struct {
	session  *session.Session
	registry *Registry
	render   renderer
	in       io.Reader
	out      io.Writer
	logger   *logger.Logger
	metrics  *metrics.Metrics
	seq      int
}

// New creates a console with every command registered.
func New(cfg Config) *Console {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewWithWriter("error", io.Discard)
	}
	c := &Console{
		session:  cfg.Session,
		registry: NewRegistry(),
		render:   renderer{color: cfg.Color},
		in:       cfg.In,
		out:      cfg.Out,
		logger:   cfg.Logger.WithModule(moduleName),
		metrics:  cfg.Metrics,
	}

	c.registry.Use(
		RecoveryMiddleware(c.logger),
		LoggingMiddleware(c.logger),
		MetricsMiddleware(c.metrics),
	)
	c.registry.Register(c.commands()...)
	return c
}

// Registry exposes the command registry.
func (c *Console) Registry() *Registry { return c.registry }

func (c *Console) withSession(ctx context.Context) context.Context {
	if ctxutil.GetSessionID(ctx) == "" {
		ctx = ctxutil.WithSessionID(ctx, c.session.ID())
	}
	return ctx
}

// Execute runs one input line and writes its output. quit is true once the
// user asked to leave.
func (c *Console) Execute(ctx context.Context, line string) (quit bool, err error) {
	c.seq++
	ctx = ctxutil.WithCommandID(c.withSession(ctx), c.seq)

	_, lines, err := c.registry.Dispatch(ctx, line)
	switch {
	case errors.Is(err, ErrQuit):
		return true, c.write(lines)
	case err != nil:
		if reason := rejectReason(err); reason != "" {
			c.metrics.RecordRejectedInput(reason)
		}
		lines = append(lines, c.render.errorLines(err)...)
	}
	return false, c.write(lines)
}

// Run reads commands until quit, end of input or context cancellation.
// End of input and quit return nil; cancellation returns ctx.Err().
func (c *Console) Run(ctx context.Context) error {
	ctx = c.withSession(ctx)
	c.logger.InfoContext(ctx, "Session started")
	defer c.logger.InfoContext(ctx, "Session ended")

	if err := c.write([]string{"SGPA Calculator. Type help for commands."}); err != nil {
		return err
	}

	// The reader may stay blocked on input after Run returns; it exits on
	// the next line or at process exit.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	for {
		if err := c.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			_ = c.write([]string{""})
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				_ = c.write([]string{""})
				if scanErr != nil {
					return fmt.Errorf("read input: %w", scanErr)
				}
				return nil
			}
			quit, err := c.Execute(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (c *Console) prompt() error {
	p := "sgpa"
	if d, ok := c.session.Department(); ok {
		p += "[" + d.ID
		if n := c.session.Semester(); n > 0 {
			p += fmt.Sprintf("/%d", n)
		}
		p += "]"
	}
	_, err := io.WriteString(c.out, p+"> ")
	return err
}

func (c *Console) write(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	if _, err := io.WriteString(c.out, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
