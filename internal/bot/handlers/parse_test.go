package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "250", want: 250},
		{name: "dot decimal", input: "0.5", want: 0.5},
		{name: "comma decimal", input: "0,5", want: 0.5},
		{name: "padded", input: "  300 ", want: 300},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-100", wantErr: true},
		{name: "not a number", input: "много", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "valid", input: "30", want: 30},
		{name: "padded", input: " 45 ", want: 45},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "fractional", input: "1.5", wantErr: true},
		{name: "text", input: "час", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePositiveInt(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWorkoutArgs(t *testing.T) {
	workoutType, minutes, err := parseWorkoutArgs("бег 30")
	require.NoError(t, err)
	assert.Equal(t, "бег", workoutType)
	assert.Equal(t, 30, minutes)

	_, _, err = parseWorkoutArgs("бег")
	assert.Error(t, err)

	_, _, err = parseWorkoutArgs("бег ноль")
	assert.Error(t, err)

	_, _, err = parseWorkoutArgs("бег -10")
	assert.Error(t, err)

	workoutType, minutes, err = parseWorkoutArgs("  плавание   45  ")
	require.NoError(t, err)
	assert.Equal(t, "плавание", workoutType)
	assert.Equal(t, 45, minutes)
}
