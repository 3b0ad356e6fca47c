package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconnect/internal/repos"
)

func TestCSRF_UnsafeAPIRequiresToken(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)
	c := newClient(t, app)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "sid", Value: c.cookies["sid"]})
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: c.cookies["csrf_"]})

	var resp *http.Response
	entries := captureLogs(t, func() {
		var err error
		resp, err = app.Test(req, -1)
		require.NoError(t, err)
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_, ok := findLog(entries, "csrf.fail")
	assert.True(t, ok)

	_, cart := c.json("GET", "/api/v1/cart", nil)
	assert.Empty(t, cartItems(t, cart))
}

func TestCORS_FunctionsPreflight(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)

	req := httptest.NewRequest("OPTIONS", "/functions/v1/chatbot", nil)
	req.Header.Set("Origin", "https://storefront.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "x-client-info")
}

func TestFunctions_SkipCSRF(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)

	req := httptest.NewRequest("POST", "/functions/v1/analyze-image", strings.NewReader(`{"image":"data:image/png;base64,AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimit_Global(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 3
	app, _ := newApp(t, cfg, nil)

	for i := 0; i < 4; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/categories", nil), -1)
		require.NoError(t, err)
		if i < 3 {
			assert.NotEqual(t, http.StatusTooManyRequests, resp.StatusCode, "limited too early at %d", i)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimit_Search(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)

	for i := 0; i < 21; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?q=rice", nil), -1)
		require.NoError(t, err)
		if i < 20 {
			require.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		}
	}
}

func TestBodySizeLimit(t *testing.T) {
	cfg := testConfig()
	cfg.BodyLimit = 1024
	app, _ := newApp(t, cfg, nil)
	c := newClient(t, app)

	oversize := bytes.Repeat([]byte("A"), 4096)
	req := httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Csrf-Token", c.cookies["csrf_"])
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: c.cookies["csrf_"]})
	resp, err := app.Test(req, -1)
	// fasthttp may refuse the body before a response is produced
	if err != nil {
		if strings.Contains(err.Error(), "body size exceeds") || strings.Contains(err.Error(), "too large") {
			return
		}
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestErrors_NoInternalsLeak(t *testing.T) {
	store := &failingStore{Store: repos.NewMemoryStore(), failGet: repos.KeyCart}
	app, _ := newAppWith(t, testConfig(), store, nil)
	c := newClient(t, app)

	var resp *http.Response
	entries := captureLogs(t, func() { resp = c.do("GET", "/api/v1/cart", nil) })
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Could not load your cart")
	assert.NotContains(t, string(body), "secret")
	e, ok := findLog(entries, "cart.view.fail")
	require.True(t, ok)
	assert.Equal(t, "error", e.Level)
}

func TestNotFound(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)
	c := newClient(t, app)

	status, body := c.json("GET", "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", body["error"])

	resp := c.do("GET", "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), "Page not found")
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)
	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	sid := ""
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			sid = ck.Value
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.NotEmpty(t, sid)
}
