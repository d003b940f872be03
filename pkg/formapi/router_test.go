package formapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/formapi"
	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/requestid"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func newRouter(t *testing.T, opts ...formapi.Option) http.Handler {
	t.Helper()

	sets, err := ruleset.Parse([]byte(`
signup:
  email: {required: ~, valid_mail: ~}
  age:   {required: ~, numeric: ~, greater_than: 17}
  name:  [alpha]
birth:
  birthday: {date: ~, date_past: ~}
`))
	require.NoError(t, err)
	registry, err := ruleset.NewRegistry(sets...)
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC) }
	engine := validator.New(validator.WithClock(now), validator.WithLocation(time.UTC))
	return formapi.NewRouter(engine, registry, opts...)
}

type envelope struct {
	Data  json.RawMessage      `json:"data"`
	Error *formapi.ErrorDetail `json:"error"`
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeResult(t *testing.T, raw json.RawMessage) formapi.Result {
	t.Helper()
	var res formapi.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	return res
}

func TestValidateRuleSet(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, formRequest("/rulesets/signup/validate", url.Values{
			"email": {"mario@example.com"}, "age": {"30"}, "name": {"Mario"},
		}))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, formapi.Result{Valid: true}, decodeResult(t, env.Data))
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("failures in declaration order", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, formRequest("/rulesets/signup/validate", url.Values{
			"email": {""}, "age": {"16"}, "name": {"Mario64"},
		}))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, formapi.Result{Valid: false, Failures: []formapi.FailureDetail{
			{Field: "email", Rule: "required", Key: "validation.required"},
			{Field: "age", Rule: "greater_than", Key: "validation.greater_than"},
			{Field: "name", Rule: "alpha", Key: "validation.alpha"},
		}}, decodeResult(t, env.Data))
	})

	t.Run("query string without body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/rulesets/birth/validate?birthday=11/03/2024", nil)
		rec, env := do(t, h, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		res := decodeResult(t, env.Data)
		require.Len(t, res.Failures, 1)
		assert.Equal(t, "date_past", res.Failures[0].Rule)
	})

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/rulesets/signup/validate",
			strings.NewReader(`{"email":"luigi@example.com","age":18}`))
		req.Header.Set("Content-Type", "application/json")
		rec, _ := do(t, h, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown rule set", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, formRequest("/rulesets/nope/validate", url.Values{}))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, formapi.CodeNotFound, env.Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/rulesets/signup/validate", strings.NewReader("<x/>"))
		req.Header.Set("Content-Type", "application/xml")
		rec, env := do(t, h, req)
		require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, formapi.CodeUnsupportedMediaType, env.Error.Code)
	})

	t.Run("broken json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/rulesets/signup/validate", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		rec, env := do(t, h, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, formapi.CodeBadRequest, env.Error.Code)
	})
}

func TestValidateInline(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	post := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("end to end example", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, post(`{
			"data":  {"age": "15", "name": ""},
			"rules": {"age": {"greater_than": 18}, "name": {"required": null, "alpha": null}}
		}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []formapi.FailureDetail{
			{Field: "age", Rule: "greater_than", Key: "validation.greater_than"},
			{Field: "name", Rule: "required", Key: "validation.required"},
		}, decodeResult(t, env.Data).Failures)
	})

	t.Run("numbers keep their text", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, post(`{"data": {"code": 7}, "rules": {"code": {"equal_to": "007"}}}`))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, post(`{"data": {"vat": "12345678903"}, "rules": {"vat": ["vat_number"]}}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeResult(t, env.Data).Valid)
	})

	t.Run("duplicate rule key", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, post(`{"data": {}, "rules": {"a": {"alpha": null, "alpha": null}}}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, formapi.CodeInvalidRules, env.Error.Code)
	})

	t.Run("escaped slashes in comparison dates", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, post(`{"data":{"start":"31/12/2020"},"rules":{"start":{"date_lower_than":"01\/01\/2021"}}}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeResult(t, env.Data).Valid)

		rec, env = do(t, h, post(`{"data":{"start":"02\/01\/2021"},"rules":{"start":{"date_lower_than":"01\/01\/2021"}}}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "date_lower_than", decodeResult(t, env.Data).Failures[0].Rule)
	})

	t.Run("rules are required", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{`{"data": {"name": "x"}}`, `{"data": {"name": "x"}, "rules": null}`} {
			rec, env := do(t, h, post(body))
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, formapi.CodeInvalidRules, env.Error.Code, body)
		}
	})

	t.Run("empty rules are valid", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, post(`{"data": {"name": "x"}, "rules": {}}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeResult(t, env.Data).Valid)
	})

	t.Run("unknown top-level field", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, post(`{"data": {}, "rules": {}, "extra": 1}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, formapi.CodeBadRequest, env.Error.Code)
	})

	t.Run("nested data", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, post(`{"data": {"a": {"b": 1}}, "rules": {}}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListing(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/rulesets", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"signup", "birth"}, names)

	rec, env = do(t, h, httptest.NewRequest(http.MethodGet, "/rules", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var rules []formapi.RuleInfo
	require.NoError(t, json.Unmarshal(env.Data, &rules))
	assert.Contains(t, rules, formapi.RuleInfo{Name: "required", NeedsValue: false})
	assert.Contains(t, rules, formapi.RuleInfo{Name: "greater_than", NeedsValue: true})
	assert.Len(t, rules, len(validator.DefaultCatalog().Names()))
}

func TestHealthAndFallbacks(t *testing.T) {
	t.Parallel()

	down := errors.New("db down")
	h := newRouter(t, formapi.WithReadinessChecks(func(context.Context) error { return down }))

	rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, formapi.CodeNotFound, env.Error.Code)

	rec, env = do(t, h, httptest.NewRequest(http.MethodGet, "/validate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, formapi.CodeMethodNotAllowed, env.Error.Code)

	ready := newRouter(t, formapi.WithReadinessChecks(httpserver.Check(func(context.Context) error { return nil })))
	rec, _ = do(t, ready, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	h := newRouter(t, formapi.WithLogger(log))

	req := httptest.NewRequest(http.MethodGet, "/rulesets", nil)
	req.Header.Set(requestid.Header, "trace-1")
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec, _ := do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-1", rec.Header().Get(requestid.Header))

	out := buf.String()
	assert.Contains(t, out, `"msg":"http request"`)
	assert.Contains(t, out, `"path":"/rulesets"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"remote_addr":"203.0.113.7"`)
}
