package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "999 ₫", FormatVND(999))
	assert.Equal(t, "1.000 ₫", FormatVND(1000))
	assert.Equal(t, "500.000 ₫", FormatVND(500000))
	assert.Equal(t, "10.000.000 ₫", FormatVND(10000000))
	assert.Equal(t, "29.988.000 ₫", FormatVND(29988000))
	assert.Equal(t, "-1.500 ₫", FormatVND(-1500))
	// Fractions are dropped
	assert.Equal(t, "1.234 ₫", FormatVND(1234.56))
}
