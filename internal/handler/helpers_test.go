package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bobcathub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func failWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fail(c, err)
	return w
}

func TestFailMapsNotFound(t *testing.T) {
	w := failWith(service.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestFailShowsValidationNotices(t *testing.T) {
	for _, err := range []error{service.ErrNotEvent, service.ErrNoClub, service.ErrMissingEventFields} {
		w := failWith(err)
		assert.Equal(t, http.StatusBadRequest, w.Code, err.Error())
		assert.Contains(t, w.Body.String(), err.Error())
	}
}

func TestFailHidesUnexpectedErrors(t *testing.T) {
	w := failWith(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
	assert.Contains(t, w.Body.String(), "internal error")
}
