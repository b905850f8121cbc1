package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(CodeDependency, cause, "fetching shopify catalog")

	require.Error(t, err)
	assert.Equal(t, CodeDependency, err.Code())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DEPENDENCY_ERROR: fetching shopify catalog", err.Error())
}

func TestAsFindsWrappedTypedError(t *testing.T) {
	inner := New(CodeUnauthorized, "webhook signature mismatch")
	wrapped := fmt.Errorf("handling delivery: %w", inner)

	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, CodeUnauthorized, typed.Code())
}

func TestMetadataFor(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, MetadataFor(CodeUnauthorized).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(CodeDependency).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(Code("UNKNOWN")).HTTPStatus)
}

func TestDumpWalksChain(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(CodeInternal, cause, "routing order")

	dump := Dump(err)
	assert.Equal(t, CodeInternal, dump.Code)
	require.Len(t, dump.Chain, 2)
	assert.Contains(t, dump.Chain[1], "boom")
}
