// Package attr provides slog attribute helpers so log keys stay consistent
// across modules.
package attr

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const correlationIDKey ctxKey = "correlation_id"

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

// UUID logs an identifier in its canonical string form.
func UUID(key string, id uuid.UUID) slog.Attr { return slog.String(key, id.String()) }

// GameID is the attribute used by every game-scoped operation.
func GameID(id uuid.UUID) slog.Attr { return UUID("game_id", id) }

// MatchID is the conventional match id attribute.
func MatchID(id uuid.UUID) slog.Attr { return UUID("match_id", id) }

// LeagueID is the conventional league id attribute.
func LeagueID(id uuid.UUID) slog.Attr { return UUID("league_id", id) }

// Error logs an error under the "error" key; a nil error logs an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// WithCorrelationID stores a request correlation id on the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation id stored on ctx, if any.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// ExtractCorrelationID returns the correlation id of ctx as a log attribute.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", CorrelationID(ctx))
}
