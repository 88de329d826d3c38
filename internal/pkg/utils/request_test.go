package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("Defaults When Missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assessments", nil)

		pagination := BuildPaginationRequest(req)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
		assert.Equal(t, int64(0), pagination.Skip())
	})

	t.Run("Page Size Is Capped", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assessments?page=3&page_size=1000", nil)

		pagination := BuildPaginationRequest(req)

		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 100, pagination.PageSize)
		assert.Equal(t, int64(200), pagination.Skip())
	})
}

func TestGetClientIP(t *testing.T) {
	t.Run("Forwarded Header Wins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

		assert.Equal(t, "10.0.0.1", GetClientIP(req))
	})

	t.Run("Falls Back To Remote Address", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.5:5555"

		assert.Equal(t, "192.168.1.5", GetClientIP(req))
	})
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc.def", ExtractBearerToken("Bearer abc.def"))
	assert.Equal(t, "", ExtractBearerToken("Basic abc"))
	assert.Equal(t, "", ExtractBearerToken(""))
}
