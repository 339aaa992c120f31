package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := newHarness()
		rec, body := do(t, h.router(), http.MethodPost, "/api/categories", `{"name":"  Garden ","description":"Outdoor"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Category created successfully", body["message"])

		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Garden", data["name"])
		assert.Equal(t, true, data["isActive"])

		require.NotNil(t, h.categories.created)
		assert.Equal(t, "Garden", h.categories.created.Name)
	})

	t.Run("validation", func(t *testing.T) {
		h := newHarness()
		rec, body := do(t, h.router(), http.MethodPost, "/api/categories", `{"name":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", body["message"])
		assert.Equal(t, map[string]interface{}{
			"name": []interface{}{"Category name must be between 2 and 50 characters"},
		}, body["errors"])
		assert.Nil(t, h.categories.created)
	})

	t.Run("missing name", func(t *testing.T) {
		rec, body := do(t, newHarness().router(), http.MethodPost, "/api/categories", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errs := body["errors"].(map[string]interface{})
		assert.Len(t, errs["name"], 2)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, body := do(t, newHarness().router(), http.MethodPost, "/api/categories", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", body["message"])
	})
}

func TestCategoryHandler_List(t *testing.T) {
	rec, body := do(t, newHarness().router(), http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
	assert.NotContains(t, body, "total")
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Electronics", data[0].(map[string]interface{})["name"])
}

func TestCategoryHandler_ListFailure(t *testing.T) {
	h := newHarness()
	h.categories.err = errors.New("spanner down")

	rec, body := do(t, h.router(), http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestCategoryHandler_Get(t *testing.T) {
	router := newHarness().router()

	rec, body := do(t, router, http.MethodGet, "/api/categories/"+categoryID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, categoryID, body["data"].(map[string]interface{})["id"])

	rec, body = do(t, router, http.MethodGet, "/api/categories/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found", body["message"])
}
