package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	app, _ := newApp(t, testConfig(), nil)
	c := newClient(t, app)

	status, body := c.json("POST", "/api/v1/favorites", map[string]int{"productId": 13})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])

	_, body = c.json("POST", "/api/v1/favorites", map[string]int{"productId": 13})
	assert.EqualValues(t, 1, body["count"], "saving twice keeps one entry")

	_, body = c.json("POST", "/api/v1/favorites", map[string]int{"productId": 15})
	assert.EqualValues(t, 2, body["count"])

	status, _ = c.json("POST", "/api/v1/favorites", map[string]int{"productId": 404})
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = c.json("POST", "/api/v1/favorites", map[string]int{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = c.json("DELETE", "/api/v1/favorites/13", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Desi Ghee", items[0].(map[string]any)["name"])

	status, _ = c.json("DELETE", "/api/v1/favorites/zero", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
