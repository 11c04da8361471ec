package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		defLimit   int
		wantLimit  int
		wantOffset int
	}{
		{"Defaults", "", 20, 20, 0},
		{"Explicit", "?limit=10&offset=30", 20, 10, 30},
		{"Capped At Max", "?limit=5000", 20, 100, 0},
		{"Zero Limit Uses Default", "?limit=0", 20, 20, 0},
		{"Negative Offset Clamped", "?offset=-5", 20, 20, 0},
		{"Garbage Values Use Defaults", "?limit=abc&offset=xyz", 20, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/", func(c *fiber.Ctx) error {
				got = parsePagination(c, tt.defLimit)
				return c.SendStatus(http.StatusOK)
			})

			_, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestParseID(t *testing.T) {
	s := &Server{}

	newApp := func() *fiber.App {
		app := fiber.New()
		app.Get("/items/:id", func(c *fiber.Ctx) error {
			id, err := s.parseID(c, "id")
			if err != nil {
				return nil
			}
			return c.JSON(fiber.Map{"id": id})
		})
		return app
	}

	t.Run("Valid", func(t *testing.T) {
		resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/items/42", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Not A Number", func(t *testing.T) {
		resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/items/abc", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Zero", func(t *testing.T) {
		resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/items/0", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Negative", func(t *testing.T) {
		resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/items/-3", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "post ID", humanizeParam("postId"))
	assert.Equal(t, "slug", humanizeParam("slug"))
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Not Found", models.NewNotFoundError("Post", 1), http.StatusNotFound},
		{"Validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"Unauthorized", models.NewUnauthorizedError("nope"), http.StatusUnauthorized},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondServiceError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
