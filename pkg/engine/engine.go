package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rwjstewart/gfsbuddy/pkg/input"
	"github.com/rwjstewart/gfsbuddy/pkg/log"
	"github.com/rwjstewart/gfsbuddy/pkg/rule"
)

// Result is the outcome of classifying a single date.
type Result struct {
	// Rule is the name of the first enabled rule that matched.
	Rule string
	// Message is the rendered output for the matched date.
	Message string
}

// Engine walks a rule registry in order, once per input date, and emits the
// first enabled match. It carries no state across dates.
type Engine struct {
	registry *rule.Registry
	tracer   trace.Tracer
	w        io.Writer
}

// Opt configures an [Engine].
type Opt func(*Engine)

// WithWriter sets the output sink. Defaults to stdout.
func WithWriter(w io.Writer) Opt {
	return func(e *Engine) {
		e.w = w
	}
}

// New creates an [Engine] evaluating the given registry. The registry must
// not be mutated while the engine is running.
func New(registry *rule.Registry, opts ...Opt) *Engine {
	e := &Engine{
		registry: registry,
		tracer:   otel.Tracer("classifier"),
		w:        os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Registry returns the registry the engine evaluates.
func (e *Engine) Registry() *rule.Registry {
	return e.registry
}

// Classify evaluates t against the registry in order. Disabled rules are
// skipped without evaluating their predicate; the first enabled rule whose
// predicate passes determines the result. A date no enabled rule matches
// yields ok=false, which is not an error.
func (e *Engine) Classify(ctx context.Context, t time.Time) (Result, bool) {
	ctx, span := e.tracer.Start(ctx, "classify",
		trace.WithAttributes(attribute.String("date", t.Format(time.DateOnly))))
	defer span.End()

	logger := log.WithContext(ctx)

	for _, r := range e.registry.All() {
		if !r.Enabled {
			continue
		}
		if !r.Matches(t) {
			continue
		}

		span.SetAttributes(attribute.String("rule", r.Name))
		logger.DebugContext(ctx, "rule matched",
			slog.String("rule", r.Name),
			slog.String("date", t.Format(time.DateOnly)),
		)

		return Result{
			Rule:    r.Name,
			Message: r.Render(t),
		}, true
	}

	logger.DebugContext(ctx, "no rule matched",
		slog.String("date", t.Format(time.DateOnly)),
	)

	return Result{}, false
}

// Run consumes dates from src until it is exhausted, writing one line per
// matched date to the engine's writer. A source error (including a parse
// failure on a piped line) aborts the run.
func (e *Engine) Run(ctx context.Context, src input.Source) error {
	for {
		t, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		result, ok := e.Classify(ctx, t)
		if !ok {
			continue
		}

		_, err = fmt.Fprintln(e.w, result.Message)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
}
