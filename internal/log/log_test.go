package log

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconnect/internal/domain"
)

func capture(t *testing.T, fn func()) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	oldW, oldFlags := stdlog.Writer(), stdlog.Flags()
	stdlog.SetOutput(&buf)
	stdlog.SetFlags(0)
	defer func() {
		stdlog.SetOutput(oldW)
		stdlog.SetFlags(oldFlags)
	}()
	fn()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func TestWriteOutsideRequest(t *testing.T) {
	lines := capture(t, func() {
		Fail("order.append.fail", errors.New("disk full"), map[string]any{"order_id": "o1"})
	})
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "order.append.fail", lines[0]["action"])
	assert.Equal(t, "disk full", lines[0]["err"])
}

func TestWriteCarriesRequestScope(t *testing.T) {
	app := fiber.New()
	var lines []map[string]any
	app.Get("/x", func(c *fiber.Ctx) error {
		c.Locals(LocalProfile, "sid-1")
		c.Locals(LocalIdentity, &domain.Identity{ID: "dummy_farmer_1"})
		lines = capture(t, func() { Audit(c, "cart.add", map[string]any{"product": 3}) })
		return c.SendStatus(fiber.StatusNoContent)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "audit", lines[0]["level"])
	assert.Equal(t, "sid-1", lines[0]["profile"])
	assert.Equal(t, "dummy_farmer_1", lines[0]["user_id"])
	assert.Equal(t, "/x", lines[0]["path"])
}
