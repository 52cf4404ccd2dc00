package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "taskflow/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))

	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, "conflict", httpErr.Error())

	_, ok = pkgErrors.AsHTTPError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
