package routing

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookstore/internal/books"
	"github.com/MKhiriev/go-bookstore/internal/config"
	"github.com/MKhiriev/go-bookstore/internal/health"
	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/internal/media"
)

func nodeFromYAML(t *testing.T, content string) config.Node {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg.Node()
}

func emptyNode(t *testing.T) config.Node {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg.Node()
}

// TestCompose_BindingOrder verifies the fixed registration order of the
// operational endpoints and the business service.
func TestCompose_BindingOrder(t *testing.T) {
	table, err := Compose(emptyNode(t), media.JSONP, books.NewService(logger.Nop()))
	require.NoError(t, err)

	bindings := table.Bindings()
	require.Len(t, bindings, 3)
	assert.Equal(t, HealthPath, bindings[0].Prefix)
	assert.Equal(t, MetricsPath, bindings[1].Prefix)
	assert.Equal(t, DefaultServicePath, bindings[2].Prefix)
}

// TestCompose_MediaBeforeBindings verifies the ordering requirement: the
// serialization middleware is part of the global chain, registered before
// any path binding that depends on it.
func TestCompose_MediaBeforeBindings(t *testing.T) {
	table, err := Compose(emptyNode(t), media.Jackson, books.NewService(logger.Nop()))
	require.NoError(t, err)

	names := table.MiddlewareNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "media:jackson")
	assert.Equal(t, "media:jackson", names[len(names)-1], "media middleware is the innermost global layer")
}

// TestCompose_Idempotent verifies that composing twice with identical inputs
// yields routing tables with the same bindings in the same order.
func TestCompose_Idempotent(t *testing.T) {
	node := emptyNode(t)
	svc := books.NewService(logger.Nop())

	first, err := Compose(node, media.JSONB, svc)
	require.NoError(t, err)
	second, err := Compose(node, media.JSONB, svc)
	require.NoError(t, err)

	firstBindings := first.Bindings()
	secondBindings := second.Bindings()
	require.Equal(t, len(firstBindings), len(secondBindings))
	for i := range firstBindings {
		assert.Equal(t, firstBindings[i].Prefix, secondBindings[i].Prefix)
	}
	assert.Equal(t, first.MiddlewareNames(), second.MiddlewareNames())
}

// TestCompose_NilService verifies that a missing business service fails at
// compose time, not at first request.
func TestCompose_NilService(t *testing.T) {
	_, err := Compose(emptyNode(t), media.JSONP, nil)
	require.ErrorIs(t, err, ErrComposition)
}

// TestCompose_InvalidStrategy verifies that a strategy outside the closed
// set fails at compose time.
func TestCompose_InvalidStrategy(t *testing.T) {
	_, err := Compose(emptyNode(t), media.Strategy(42), books.NewService(logger.Nop()))
	require.ErrorIs(t, err, ErrComposition)
}

// TestCompose_ConfiguredServicePath verifies that app.service-path moves the
// business service mount.
func TestCompose_ConfiguredServicePath(t *testing.T) {
	node := nodeFromYAML(t, "app:\n  service-path: /library\n")

	table, err := Compose(node, media.JSONP, books.NewService(logger.Nop()))
	require.NoError(t, err)

	bindings := table.Bindings()
	assert.Equal(t, "/library", bindings[2].Prefix)

	router := table.Router()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/library", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

// TestTable_Router_ServesAllConcerns drives one request through each binding
// of a materialized table: books round-trip, health pass, metrics non-empty
// after the books request.
func TestTable_Router_ServesAllConcerns(t *testing.T) {
	table, err := Compose(emptyNode(t), media.JSONP, books.NewService(logger.Nop()))
	require.NoError(t, err)
	router := table.Router()

	// books: create then list through the serialization middleware
	rr := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"isbn":"1","title":"composed"}`)
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/books", body))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books/1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "composed")

	// health: aggregate passes on a healthy process
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"pass"`)

	// metrics: the books requests are already visible in the counter set
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bookstore_requests_total")
}

// TestCompose_StrategySwapKeepsShape verifies that swapping the strategy
// changes only the serialization middleware, not the route shape.
func TestCompose_StrategySwapKeepsShape(t *testing.T) {
	node := emptyNode(t)

	jsonp, err := Compose(node, media.JSONP, books.NewService(logger.Nop()))
	require.NoError(t, err)
	jackson, err := Compose(node, media.Jackson, books.NewService(logger.Nop()))
	require.NoError(t, err)

	jb := jsonp.Bindings()
	kb := jackson.Bindings()
	require.Equal(t, len(jb), len(kb))
	for i := range jb {
		assert.Equal(t, jb[i].Prefix, kb[i].Prefix)
	}

	assert.Equal(t, media.JSONP, jsonp.Strategy())
	assert.Equal(t, media.Jackson, jackson.Strategy())
}

// TestCompose_WithChecks verifies that extra health check units are additive.
func TestCompose_WithChecks(t *testing.T) {
	failing := health.CheckFunc{
		CheckName: "downstream",
		Fn:        func() health.Result { return health.Result{Status: health.Fail} },
	}

	table, err := Compose(emptyNode(t), media.JSONP, books.NewService(logger.Nop()), WithChecks(failing))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	table.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "downstream")
}
