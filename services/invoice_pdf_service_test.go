package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderInvoicePDF(t *testing.T) {
	buf, err := GenerateOrderInvoicePDF(previewOrder())
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.Greater(t, buf.Len(), 500)
	// PDF magic header
	assert.Equal(t, "%PDF", string(buf.Bytes()[:4]))
}
