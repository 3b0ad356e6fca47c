package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"agroconnect/internal/config"
	"agroconnect/internal/events"
	"agroconnect/internal/http/handlers"
	"agroconnect/internal/repos"
)

const testSecret = "test-jwt-secret"

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

func testConfig() config.Config {
	return config.Config{
		StoreDriver: "memory",
		JWTSecret:   testSecret,
		BcryptCost:  4,
		RateLimit:   1000,
		BodyLimit:   1 << 20,
	}
}

func newApp(t *testing.T, cfg config.Config, pub events.Publisher) (*fiber.App, repos.Store) {
	t.Helper()
	return newAppWith(t, cfg, repos.NewMemoryStore(), pub)
}

func newAppWith(t *testing.T, cfg config.Config, store repos.Store, pub events.Publisher) (*fiber.App, repos.Store) {
	t.Helper()
	if pub == nil {
		pub = events.Noop{}
	}
	deps, err := handlers.NewDeps(cfg, store, pub)
	require.NoError(t, err)
	return handlers.NewApp(cfg, deps), store
}

// client is a browser profile: it keeps the sid and csrf_ cookies and sends
// the CSRF header on unsafe requests.
type client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
	bearer  string
}

func newClient(t *testing.T, app *fiber.App) *client {
	c := &client{t: t, app: app, cookies: map[string]string{}}
	resp := c.do("GET", "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, c.cookies["csrf_"], "csrf cookie missing")
	require.NotEmpty(t, c.cookies["sid"], "sid cookie missing")
	return c
}

func (c *client) do(method, path string, body any) *http.Response {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = strings.NewReader(b)
		case []byte:
			r = bytes.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(c.t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, v := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: v})
	}
	if method != "GET" && method != "HEAD" && method != "OPTIONS" {
		req.Header.Set("X-Csrf-Token", c.cookies["csrf_"])
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Value == "" || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now())) {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck.Value
	}
	return resp
}

// json performs a request and decodes the JSON answer into a map.
func (c *client) json(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	resp := c.do(method, path, body)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(c.t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func (c *client) login(email, password string) map[string]any {
	c.t.Helper()
	status, body := c.json("POST", "/api/v1/auth/login", map[string]string{"email": email, "password": password})
	require.Equal(c.t, http.StatusOK, status, "login body: %v", body)
	return body
}

func validAddress() map[string]string {
	return map[string]string{
		"fullName": "Asha Verma",
		"phone":    "9876543210",
		"email":    "asha@example.in",
		"address":  "12 MG Road, Near Clock Tower",
		"city":     "Pune",
		"state":    "Maharashtra",
		"pincode":  "411001",
	}
}

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

// captureLogs swaps the standard logger output while fn runs and returns the
// JSON lines written. Access log lines from fiber's logger go to stdout and
// are not captured.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findLog(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}

// failingStore fails writes of one key and every read of another.
type failingStore struct {
	repos.Store
	failPut string
	failGet string
}

func (f *failingStore) Get(ctx context.Context, profile, key string) ([]byte, bool, error) {
	if key == f.failGet {
		return nil, false, errors.New("db timeout: secret trace")
	}
	return f.Store.Get(ctx, profile, key)
}

func (f *failingStore) Put(ctx context.Context, profile, key string, value []byte) error {
	if key == f.failPut {
		return errors.New("disk full: secret trace")
	}
	return f.Store.Put(ctx, profile, key, value)
}
