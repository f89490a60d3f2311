package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "jd_text", Message: "is required"}
	assert.Equal(t, "validation error: jd_text - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrPayloadTooLarge(t *testing.T) {
	err := &ErrPayloadTooLarge{Limit: 1024}
	assert.Equal(t, "request body exceeds 1024 bytes", err.Error())
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("decode: %w", &ErrValidation{Field: "body", Message: "bad"})
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_Cancelled(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(fmt.Errorf("rank: %w", context.Canceled)))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(context.DeadlineExceeded))
}

func TestHTTPStatus_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
