package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

func (m *Menu) accessLog(name string) middleware {
	return func(next handlerFunc) handlerFunc {
		return func(ctx context.Context) error {
			start := time.Now().UTC()
			actionID := uuid.NewString()

			err := next(ctx)

			var traceID string

			if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
				traceID = sc.TraceID().String()
			}

			m.l.Info().
				Str("type", "access").
				Str("action", name).
				Str("actionID", actionID).
				Str("traceID", traceID).
				Dur("latency", time.Since(start)).
				Msg("menu action handled")

			return err
		}
	}
}

// recoverPanics keeps the menu loop alive when an action panics.
func (m *Menu) recoverPanics() middleware {
	return func(next handlerFunc) handlerFunc {
		return func(ctx context.Context) (err error) {
			defer func() {
				if re := recover(); re != nil {
					rerr, ok := re.(error)
					if !ok {
						rerr = fmt.Errorf("%v: %w", re, ErrPanic)
					}

					m.l.Error().Err(rerr).Msg("type: panic in menu action")
					fmt.Fprintln(m.out, "Something went wrong. Please try again.")
				}
			}()

			return next(ctx)
		}
	}
}

func (m *Menu) applyMiddlewares(h handlerFunc, middlewares ...middleware) handlerFunc {
	for _, mw := range middlewares {
		h = mw(h)
	}

	return h
}
