package cmd

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"tasklist/api/middleware"
	"tasklist/config"
	"tasklist/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.ShutdownTimeout = 2 * time.Second
	return cfg
}

func buildApp(t *testing.T, b *AppBuilder) http.Handler {
	t.Helper()
	app, err := b.WithoutLoggerInit().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return app.Handler()
}

func request(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	h := buildApp(t, NewBuilder(testConfig()))

	w := request(h, http.MethodGet, "/", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("GET / status=%d content-type=%q", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "<title>tasklist</title>") {
		t.Errorf("index page not rendered: %s", w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}

	if w := request(h, http.MethodGet, "/static/app.js", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ReactDOM") {
		t.Errorf("GET /static/app.js status=%d", w.Code)
	}
	if w := request(h, http.MethodGet, "/api/health/live", ""); w.Code != http.StatusOK {
		t.Errorf("GET /api/health/live status=%d", w.Code)
	}

	w = request(h, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope status=%d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "NOT_FOUND" {
		t.Errorf("404 envelope = %v", resp)
	}
}

func TestTaskFlowThroughFullStack(t *testing.T) {
	h := buildApp(t, NewBuilder(testConfig()))

	if w := request(h, http.MethodPost, "/api/tasks", `{"id":"1","text":"buy milk"}`); w.Code != http.StatusOK {
		t.Fatalf("add status=%d body=%s", w.Code, w.Body.String())
	}
	if w := request(h, http.MethodPost, "/api/tasks", `{"id":"2"}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid add status=%d", w.Code)
	}

	w := request(h, http.MethodGet, "/api/tasks", "")
	if got := strings.TrimSpace(w.Body.String()); got != `[{"id":"1","text":"buy milk"}]` {
		t.Errorf("list = %s", got)
	}

	if w := request(h, http.MethodDelete, "/api/tasks/1", ""); w.Code != http.StatusOK {
		t.Fatalf("delete status=%d", w.Code)
	}
	w = request(h, http.MethodGet, "/api/tasks", "")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("list after delete = %s", got)
	}

	w = request(h, http.MethodGet, "/api/health", "")
	var health map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &health)
	if health["status"] != "healthy" {
		t.Errorf("health = %v", health)
	}
}

func TestDeleteEscapedID(t *testing.T) {
	h := buildApp(t, NewBuilder(testConfig()))

	request(h, http.MethodPost, "/api/tasks", `{"id":"a/b","text":"slash"}`)
	request(h, http.MethodPost, "/api/tasks", `{"id":"a b","text":"space"}`)

	if w := request(h, http.MethodDelete, "/api/tasks/a%2Fb", ""); w.Code != http.StatusOK {
		t.Fatalf("delete status=%d", w.Code)
	}
	w := request(h, http.MethodGet, "/api/tasks", "")
	if got := strings.TrimSpace(w.Body.String()); got != `[{"id":"a b","text":"space"}]` {
		t.Errorf("list = %s", got)
	}
}

func TestDefaultConfigNeverThrottles(t *testing.T) {
	h := buildApp(t, NewBuilder(config.Default()))

	statuses := map[int]int{}
	for i := 0; i < 250; i++ {
		statuses[request(h, http.MethodGet, "/api/tasks", "").Code]++
	}
	if statuses[http.StatusOK] != 250 {
		t.Errorf("statuses = %v, want all 250 to be 200", statuses)
	}
}

func TestPanicIsAccessLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logger.Replace(zap.New(core))()

	h := buildApp(t, NewBuilder(testConfig()).
		WithRoute(http.MethodGet, "/panic", func(c *gin.Context) { panic("kaboom") }))

	if w := request(h, http.MethodGet, "/panic", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	entries := logs.FilterMessage("HTTP Request").All()
	if len(entries) != 1 || entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("access log = %+v, want one error entry", entries)
	}
}

func TestBuildersAreIsolated(t *testing.T) {
	first := buildApp(t, NewBuilder(testConfig()))
	second := buildApp(t, NewBuilder(testConfig()))

	request(first, http.MethodPost, "/api/tasks", `{"id":"1","text":"only here"}`)

	w := request(second, http.MethodGet, "/api/tasks", "")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("second app sees first app's tasks: %s", got)
	}
}

func TestBuilderExtensions(t *testing.T) {
	var sawMiddleware bool
	h := buildApp(t, NewBuilder(testConfig()).
		WithMiddleware(func(c *gin.Context) {
			sawMiddleware = true
			c.Next()
		}).
		WithRoute(http.MethodGet, "/version", func(c *gin.Context) {
			c.String(http.StatusOK, "1.0.0")
		}))

	w := request(h, http.MethodGet, "/version", "")
	if w.Code != http.StatusOK || w.Body.String() != "1.0.0" {
		t.Errorf("custom route status=%d body=%q", w.Code, w.Body.String())
	}
	if !sawMiddleware {
		t.Error("custom middleware did not run")
	}
}

func TestBuildFailsOnBadStaticDir(t *testing.T) {
	cfg := testConfig()
	cfg.Web.StaticDir = "/definitely/not/here"
	if _, err := NewBuilder(cfg).WithoutLoggerInit().Build(); err == nil {
		t.Fatal("Build() should fail when the static dir is missing")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	app, err := NewBuilder(testConfig()).WithoutLoggerInit().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/tasks")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
