package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "frontdesk/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		mess   string
	}{
		{"validation", apperrors.Validation("amount must be greater than 0", "amount"), http.StatusBadRequest, "amount must be greater than 0"},
		{"conflict", apperrors.ErrRoomNotAvailable, http.StatusConflict, apperrors.ErrRoomNotAvailable.Message},
		{"not found", apperrors.NotFound("room"), http.StatusNotFound, "room not found"},
		{"db error", apperrors.Internal("database error on room", errors.New("disk full")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, 0, body.Code)
			assert.Equal(t, tt.mess, body.Mess)
			assert.NotContains(t, w.Body.String(), "disk full")
		})
	}
}

func TestSuccessWithPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SuccessWithPagination(c, []int{1, 2}, 2, 2, 5)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Code)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, Pagination{Page: 2, Limit: 2, Total: 5}, *body.Pagination)
}
