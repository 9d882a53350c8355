package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"mimarlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionStatusCode(t *testing.T) {
	tests := []struct {
		status models.DeletionStatus
		want   int
	}{
		{models.DeletionAllowed, fiber.StatusOK},
		{models.DeletionDeleted, fiber.StatusOK},
		{models.DeletionNotFound, fiber.StatusNotFound},
		{models.DeletionBlocked, fiber.StatusConflict},
		{models.DeletionFailed, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, DeletionStatusCode(&models.DeletionResult{Status: tt.status}))
		})
	}
}

func TestDeletionResponseEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		result := models.NewDeletionResult().Block("Cannot delete the last language")
		return DeletionResponse(c, result)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var got struct {
		Status  string                `json:"status"`
		Message string                `json:"message"`
		Data    models.DeletionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "error", got.Status)
	assert.Equal(t, "Cannot delete the last language", got.Message)
	assert.Equal(t, models.DeletionBlocked, got.Data.Status)
	assert.Equal(t, []string{}, got.Data.Dependencies)
}
