// Package service defines the interfaces for external collaborators.
package service

import (
	"context"

	"github.com/google/uuid"
)

// AlertService defines the interface for delivering a local alert to the
// owning user's devices. Delivery is fire-and-forget; the engine assumes no
// delivery guarantee.
type AlertService interface {
	// EmitLocalAlert delivers an alert with the given title, body and data
	// payload to every device registered for the user.
	EmitLocalAlert(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error
}
