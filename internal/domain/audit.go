package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit categories
const (
	AuditCategoryInventory = "inventory"
	AuditCategorySales     = "sales"
)

// Audit actions recorded by the inventory subsystem
const (
	AuditActionReceiveStock = "RECEIVE_STOCK"
	AuditActionAdjustStock  = "ADJUST_STOCK"
)

// AuditEntry is one row of the who-did-what trail. UserSnapshot keeps a
// readable actor label even after the user record changes.
type AuditEntry struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Timestamp    time.Time           `bson:"timestamp" json:"timestamp"`
	UserID       *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	UserSnapshot string              `bson:"userSnapshot" json:"userSnapshot"`
	Action       string              `bson:"action" json:"action"`
	Details      string              `bson:"details" json:"details"`
	Category     string              `bson:"category" json:"category"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}

// NewAuditEntry creates an audit trail entry. userID may be nil for
// system-initiated actions; userSnapshot should then label the system.
func NewAuditEntry(userID *primitive.ObjectID, userSnapshot, action, details, category string) *AuditEntry {
	now := time.Now()
	return &AuditEntry{
		Timestamp:    now,
		UserID:       userID,
		UserSnapshot: userSnapshot,
		Action:       action,
		Details:      details,
		Category:     category,
		CreatedAt:    now,
	}
}

// AuditRecorder writes audit trail entries. Recording is best effort:
// implementations report failures but callers must not fail the
// business operation over them.
type AuditRecorder interface {
	Record(ctx context.Context, entry *AuditEntry) error
}
