package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCarriesCodeAndMessage(t *testing.T) {
	err := NewError(http.StatusNotFound, "Blog not found")

	var respErr *Error
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.Code)
	assert.Equal(t, "Blog not found", err.Error())
}

func TestErrorIs(t *testing.T) {
	a := NewError(http.StatusConflict, "username already exists")
	b := NewError(http.StatusConflict, "username already exists")
	c := NewError(http.StatusConflict, "email already exists")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
