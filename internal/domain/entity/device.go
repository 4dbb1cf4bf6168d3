// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorDevice represents a vendor's device registered for confirmation prompts and session notifications.
type VendorDevice struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token for push notifications.
	DeviceID  string    `json:"device_id"` // Unique device identifier from the client.
	Platform  string    `json:"platform"`  // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
