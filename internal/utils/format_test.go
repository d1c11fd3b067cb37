package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3100", FormatNumber(3100))
	assert.Equal(t, "1943.75", FormatNumber(1943.75))
	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "-300", FormatNumber(-300))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Москва", CapitalizeFirst("москва"))
	assert.Equal(t, "Бег", CapitalizeFirst("бег"))
	assert.Equal(t, "Running", CapitalizeFirst("running"))
	assert.Equal(t, "Уже с заглавной", CapitalizeFirst("Уже с заглавной"))
	assert.Equal(t, "", CapitalizeFirst(""))
	assert.Equal(t, "Я", CapitalizeFirst("я"))
}
