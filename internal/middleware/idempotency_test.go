package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/sketchvault/sketchvault/internal/logging"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	calls := 0
	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))
	app.Post("/resource", func(c *fiber.Ctx) error {
		calls++
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"calls": calls})
	})

	return app
}

func TestIdempotencyPassesThroughWithoutHeader(t *testing.T) {
	app := setupTestApp(t)

	for want := 1; want <= 2; want++ {
		req := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 got %d", resp.StatusCode)
		}
		if !strings.Contains(string(body), `"calls":`) {
			t.Fatalf("unexpected body %s", body)
		}
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	app := setupTestApp(t)

	first := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
	first.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	first.Header.Set(idempotencyKeyHeader, "abc123")

	resp, err := app.Test(first)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	payload, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	second := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
	second.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	second.Header.Set(idempotencyKeyHeader, "abc123")

	resp2, err := app.Test(second)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	replayed, _ := io.ReadAll(resp2.Body)
	resp2.Body.Close()

	if string(replayed) != string(payload) {
		t.Fatalf("expected replayed payload %s got %s", payload, replayed)
	}
}
