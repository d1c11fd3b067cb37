package handlers

import (
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserService domain.UserService
	Tracking    domain.TrackingService
}
