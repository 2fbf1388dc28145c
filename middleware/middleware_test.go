package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fs "github.com/reoring/fieldschema"
	"github.com/reoring/fieldschema/dsl"
	"github.com/reoring/fieldschema/middleware"
)

type signup struct {
	Username string `json:"username"`
	Address  struct {
		Num int `json:"num"`
	} `json:"address"`
}

var signupSchema = dsl.New[signup]().
	Requires("username").ToBeString().WithMinLength(5).
	Requires("address.num").ToBeInteger().WithMinValue(0).WithMaxValue(500).
	MustBuild()

func newRouter(t *testing.T, logs io.Writer, m *middleware.Metrics, cfg middleware.Config) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.With(middleware.ValidateJSON(signupSchema,
		middleware.WithConfig(cfg),
		middleware.WithLogger(slog.New(slog.NewJSONHandler(logs, nil))),
		middleware.WithMetrics(m),
		middleware.WithRoute("signup"),
	)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		v, ok := middleware.ValueFromContext[signup](r.Context())
		if !ok {
			http.Error(w, "missing value", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, v.Username)
	})
	return r
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestValidateJSON_Accepts(t *testing.T) {
	m := middleware.NewMetrics(prometheus.NewRegistry())
	h := newRouter(t, io.Discard, m, middleware.DefaultConfig())

	rec := post(h, `{"username":"George","address":{"num":120}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "George", rec.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations().WithLabelValues("signup", "valid")))
}

func TestValidateJSON_Rejects(t *testing.T) {
	var logs bytes.Buffer
	m := middleware.NewMetrics(prometheus.NewRegistry())
	h := newRouter(t, &logs, m, middleware.DefaultConfig())

	rec := post(h, `{"username":"Johnny","address":{"num":750}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload middleware.IssuePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "validation_failed", payload.Error)
	require.Len(t, payload.Issues, 1)
	assert.Equal(t, "address.num", payload.Issues[0].Path)
	assert.Equal(t, fs.CodeTooBig, payload.Issues[0].Code)

	assert.Contains(t, logs.String(), `"msg":"request rejected"`)
	assert.Contains(t, logs.String(), `"field":"address.num"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations().WithLabelValues("signup", fs.CodeTooBig)))
}

func TestValidateJSON_MalformedAndEmptyBodies(t *testing.T) {
	h := newRouter(t, io.Discard, nil, middleware.DefaultConfig())

	rec := post(h, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), fs.CodeParseError)

	rec = post(h, ``)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), fs.CodeRequired)
}

func TestValidateJSON_BodyLimit(t *testing.T) {
	var logs bytes.Buffer
	cfg := middleware.Config{MaxBodyBytes: 16, LogRejections: false}
	h := newRouter(t, &logs, nil, cfg)

	rec := post(h, `{"username":"George","address":{"num":120}}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, logs.String())
}

func TestContextRoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.ValueFromContext[signup](req.Context())
	assert.False(t, ok)

	ctx := middleware.ContextWithValue(req.Context(), signup{Username: "x"})
	v, ok := middleware.ValueFromContext[signup](ctx)
	require.True(t, ok)
	assert.Equal(t, "x", v.Username)
	// keys are distinct per type
	_, ok = middleware.ValueFromContext[map[string]any](ctx)
	assert.False(t, ok)
}

func TestErrorPayload(t *testing.T) {
	p := middleware.ErrorPayload(fs.NewIssue("a.b", fs.CodeTooShort, "short", "min", 2))
	assert.Equal(t, []middleware.IssueJSON{{Path: "a.b", Code: fs.CodeTooShort, Message: "short", Params: map[string]any{"min": 2}}}, p.Issues)
}

func TestValidateJSON_DuplicateKeys(t *testing.T) {
	body := `{"username":"George","username":"Jo","address":{"num":120}}`

	rec := post(newRouter(t, io.Discard, nil, middleware.DefaultConfig()), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var payload middleware.IssuePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Issues, 1)
	assert.Equal(t, fs.CodeDuplicateKey, payload.Issues[0].Code)
	assert.Equal(t, "username", payload.Issues[0].Path)

	// the last value wins when duplicates are allowed, and "Jo" is too short
	lenient := middleware.DefaultConfig()
	lenient.RejectDuplicateKeys = false
	rec = post(newRouter(t, io.Discard, nil, lenient), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), fs.CodeTooShort)
}

func TestValidateJSON_IntegralFloatReachesHandler(t *testing.T) {
	h := newRouter(t, io.Discard, nil, middleware.DefaultConfig())
	rec := post(h, `{"username":"George","address":{"num":120.0}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestValidateJSON_TypeMismatchIsServerError(t *testing.T) {
	type wrong struct {
		Username int `json:"username"`
	}
	v := dsl.New[wrong]().Requires("username").ToBeString().MustBuild()
	var logs bytes.Buffer
	h := middleware.ValidateJSON(v, middleware.WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	rec := post(h, `{"username":"George"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
}
