package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeStorage    ErrorType = "storage"
	ErrorTypeExternal   ErrorType = "external_api"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError represents an application error with a stable, distinguishable kind.
// Two AppErrors match under errors.Is when their Type and Code match, so the
// predefined errors below work as sentinels for wrapped failures.
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	Internal error
	Context  map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// LogFields returns structured logging fields
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
	}

	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}

	for k, v := range e.Context {
		fields = append(fields, k, v)
	}

	return fields
}

// New creates a new AppError
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error into AppError
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
	}
}

// Predefined errors, one per failure kind the services surface.
var (
	// ErrInvalidInput means a non-numeric or non-positive amount, minutes or
	// grams value was supplied. Detected before any ledger mutation.
	ErrInvalidInput = New(ErrorTypeValidation, "INVALID_INPUT", "invalid numeric input")
	// ErrProfileIncomplete means a goal or ledger operation was requested
	// before all profile fields were set.
	ErrProfileIncomplete = New(ErrorTypeValidation, "PROFILE_INCOMPLETE", "user profile is not filled in")
	// ErrCityNotFound means the geocoder or the weather service does not know
	// the user's city.
	ErrCityNotFound = New(ErrorTypeExternal, "CITY_NOT_FOUND", "city not found")
	// ErrTimezoneUnresolvable means the city geocoded fine but no timezone
	// maps to its coordinates.
	ErrTimezoneUnresolvable = New(ErrorTypeExternal, "TZ_UNRESOLVABLE", "timezone not resolvable for city")
	// ErrWeatherService covers weather API failures other than an unknown city.
	ErrWeatherService = New(ErrorTypeExternal, "WEATHER_API", "weather service error")
)

// CityNotFound reports an unknown city, keeping the original cause.
func CityNotFound(city string) *AppError {
	return New(ErrorTypeExternal, "CITY_NOT_FOUND", fmt.Sprintf("city %q not found", city)).
		WithContext("city", city)
}

// WeatherServiceError wraps a weather API failure.
func WeatherServiceError(err error) *AppError {
	return Wrap(err, ErrorTypeExternal, "WEATHER_API", "weather service error")
}

// InvalidInput reports a caller-side validation failure.
func InvalidInput(message string) *AppError {
	return New(ErrorTypeValidation, "INVALID_INPUT", message)
}

// StorageError wraps a storage failure.
func StorageError(err error) *AppError {
	return Wrap(err, ErrorTypeStorage, "STORAGE", "storage operation failed")
}

// ExternalAPIError wraps a generic external API failure.
func ExternalAPIError(err error, api string) *AppError {
	return Wrap(err, ErrorTypeExternal, "EXTERNAL_API", fmt.Sprintf("%s API error", api)).
		WithContext("api", api)
}
