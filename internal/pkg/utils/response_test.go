package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Custom Error Status Is Used", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, exceptions.ErrTokenMissing(nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "you can't access this feature", body.ClientMessage)
	})

	t.Run("Dev Message Hidden In Production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, exceptions.ErrRedisGet(errors.New("dial tcp")))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "dial tcp")
	})

	t.Run("Plain Error Is Internal", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("Middle Page Has Both Links", func(t *testing.T) {
		pagination := BuildPaginationResponse(35, 2, 10, "/api/v1/assessments")

		assert.Equal(t, "/api/v1/assessments?page=3&page_size=10", pagination.NextURL)
		assert.Equal(t, "/api/v1/assessments?page=1&page_size=10", pagination.PrevURL)
	})

	t.Run("Last Page Has No Next Link", func(t *testing.T) {
		pagination := BuildPaginationResponse(20, 2, 10, "/api/v1/assessments")

		assert.Empty(t, pagination.NextURL)
	})

	t.Run("Success Envelope", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildSuccessResponse(rr, http.StatusCreated, "created", map[string]string{"id": "1"})

		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, body.Success)
		assert.Equal(t, "created", body.Message)
	})
}
