package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/garyellow/sgpa-go/internal/stringutil"
)

// ErrUnknownCommand is returned by Dispatch when no handler accepts the verb.
var ErrUnknownCommand = errors.New("unknown command")

// Registry manages console handlers and dispatches input lines.
type Registry struct {
	handlers    []Handler
	middlewares []Middleware
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make([]Handler, 0),
	}
}

// Register adds handlers to the registry. Earlier handlers win on verb clashes.
func (r *Registry) Register(h ...Handler) {
	r.handlers = append(r.handlers, h...)
}

// Use appends middlewares. The first middleware added is the outermost.
func (r *Registry) Use(mw ...Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

// Handlers returns the registered handlers in registration order.
func (r *Registry) Handlers() []Handler {
	out := make([]Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// GetHandler returns a handler by name or alias.
func (r *Registry) GetHandler(verb string) Handler {
	for _, h := range r.handlers {
		if h.CanHandle(verb) {
			return h
		}
	}
	return nil
}

// Dispatch runs the handler selected by the first word of line through the
// middleware chain. Blank lines return a nil handler and no output.
func (r *Registry) Dispatch(ctx context.Context, line string) (Handler, []string, error) {
	verb, args := stringutil.SplitCommand(line)
	if verb == "" {
		return nil, nil, nil
	}

	h := r.GetHandler(verb)
	if h == nil {
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownCommand, verb)
	}

	lines, err := r.chain(0)(ctx, h, args)
	return h, lines, err
}

func (r *Registry) chain(i int) Next {
	if i == len(r.middlewares) {
		return func(ctx context.Context, h Handler, args []string) ([]string, error) {
			return h.Handle(ctx, args)
		}
	}
	mw, next := r.middlewares[i], r.chain(i+1)
	return func(ctx context.Context, h Handler, args []string) ([]string, error) {
		return mw(ctx, h, args, next)
	}
}
