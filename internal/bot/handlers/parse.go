package handlers

import (
	"strconv"
	"strings"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
)

// parseAmount parses a positive amount from free text. A comma decimal
// separator is accepted, users type "0,5" as often as "0.5".
func parseAmount(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, apperrors.InvalidInput("not a number: " + text)
	}
	if value <= 0 {
		return 0, apperrors.InvalidInput("amount must be positive")
	}
	return value, nil
}

// parsePositiveInt parses a positive integer from free text.
func parsePositiveInt(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, apperrors.InvalidInput("not an integer: " + text)
	}
	if value <= 0 {
		return 0, apperrors.InvalidInput("value must be positive")
	}
	return value, nil
}

// parseWorkoutArgs splits "бег 30" into the workout type and the minutes.
// The type is the first whitespace-delimited token and is display-only; the
// minutes are the second token and must be a positive integer.
func parseWorkoutArgs(text string) (string, int, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", 0, apperrors.InvalidInput("expected workout type and minutes")
	}

	minutes, err := parsePositiveInt(fields[1])
	if err != nil {
		return "", 0, err
	}
	return fields[0], minutes, nil
}
