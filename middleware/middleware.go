// Package middleware adapts a fieldschema Validator to net/http: it decodes
// the JSON request body, rejects invalid input with 400 and an issue payload,
// and hands the validated value to the next handler through the context.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	fs "github.com/reoring/fieldschema"
)

// ctxKeyValue is a typed context key for storing validated values.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a validated value to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves the validated value stored by ValidateJSON.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

type options struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
	route   string
}

// Option customizes ValidateJSON.
type Option func(*options)

// WithConfig replaces DefaultConfig().
func WithConfig(cfg Config) Option { return func(o *options) { o.cfg = cfg } }

// WithLogger sets the logger used for rejections (slog.Default() otherwise).
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithMetrics records every outcome in m.
func WithMetrics(m *Metrics) Option { return func(o *options) { o.metrics = m } }

// WithRoute sets the route label used in logs and metrics.
func WithRoute(name string) Option { return func(o *options) { o.route = name } }

// ValidateJSON returns middleware validating request bodies with v.
func ValidateJSON[T any](v *fs.Validator[T], opts ...Option) func(http.Handler) http.Handler {
	o := options{cfg: DefaultConfig(), route: "default"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	decode := fs.DecodeOpt{MaxBytes: o.cfg.MaxBodyBytes, RejectDuplicateKeys: o.cfg.RejectDuplicateKeys}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := v.ValidateReader(r.Body, decode)
			it, failed := res.Issue()
			if failed {
				o.metrics.observe(o.route, it.Code)
				if it.Code == fs.CodeProjection {
					o.logger.LogAttrs(r.Context(), slog.LevelError, "validated body does not fit handler type",
						slog.String("route", o.route),
						slog.String("field", it.Path),
						slog.Any("error", it.Cause),
					)
				} else if o.cfg.LogRejections {
					o.logger.LogAttrs(r.Context(), slog.LevelInfo, "request rejected",
						slog.String("route", o.route),
						slog.String("field", it.Path),
						slog.String("code", it.Code),
						slog.String("message", it.Message),
					)
				}
				WriteIssue(w, it)
				return
			}
			o.metrics.observe(o.route, outcomeValid)
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), res.Value())))
		})
	}
}

// IssuePayload is the JSON shape of a rejected request.
type IssuePayload struct {
	Error  string      `json:"error"`
	Issues []IssueJSON `json:"issues"`
}

// IssueJSON is the wire form of a fieldschema.Issue.
type IssueJSON struct {
	Path    string         `json:"path"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// ErrorPayload shapes an Issue for JSON responses.
func ErrorPayload(it fs.Issue) IssuePayload {
	return IssuePayload{
		Error:  "validation_failed",
		Issues: []IssueJSON{{Path: it.Path, Code: it.Code, Message: it.Message, Params: it.Params}},
	}
}

// WriteIssue writes the issue payload with 400, or 413 when the body was
// over the configured limit. A projection issue is a server-side schema
// mistake: it gets 500 and no details.
func WriteIssue(w http.ResponseWriter, it fs.Issue) {
	w.Header().Set("Content-Type", "application/json")
	if errors.Is(it.Cause, fs.ErrProjection) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	status := http.StatusBadRequest
	if errors.Is(it.Cause, fs.ErrInputTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorPayload(it))
}
