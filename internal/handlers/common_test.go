package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/testutil"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"not found", services.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrLanguageNotFound), http.StatusNotFound, "Lookup: language not found"},
		{"conflict", services.ErrLanguageCodeExists, http.StatusConflict, "Language code already exists"},
		{"validation", services.ErrInvalidField, http.StatusBadRequest, "Field is not translatable for this entity"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Failed to do the thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, testutil.TestLogger(), tt.err, "Failed to do the thing")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body utils.StandardResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := parseStatus("")
	require.NoError(t, err)
	assert.Nil(t, status)

	status, err = parseStatus("2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusHidden, *status)

	_, err = parseStatus("7")
	assert.Error(t, err)
	_, err = parseStatus("published")
	assert.Error(t, err)
}

func TestParseOptionalID(t *testing.T) {
	id, err := parseOptionalID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = parseOptionalID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), *id)

	_, err = parseOptionalID("-1")
	assert.Error(t, err)
}

func TestTranslationRequestValidate(t *testing.T) {
	valid := UpsertTranslationRequest{EntityName: "Project", EntityID: 1, FieldName: "Title", LanguageID: 1}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.EntityName = "Movie"
	assert.ErrorContains(t, bad.Validate(), "must be one of Category, Project, Photo")

	bulk := BulkTranslationRequest{EntityName: "Photo", EntityID: 3, LanguageID: 1}
	assert.Error(t, bulk.Validate())
	bulk.Values = map[string]string{"Caption": "Evening"}
	assert.NoError(t, bulk.Validate())
}
