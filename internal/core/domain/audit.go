package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateDeal AuditAction = "CREATE_DEAL"
	AuditActionRejectDeal AuditAction = "REJECT_DUPLICATE_DEAL"
)

// AuditLog records a single audited write against the deal store.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	RequestID    string      `json:"request_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
