package domain

import "time"

// Event types
const (
	EventTypeMovementRecorded = "movement.recorded"
	EventTypeItemCreated      = "item.created"
)

// Aggregate types
const (
	AggregateTypeMovement = "movement"
	AggregateTypeItem     = "item"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// MovementRecordedEvent payload
type MovementRecordedEvent struct {
	MovementID    string `json:"movement_id"`
	ItemID        string `json:"item_id"`
	Type          string `json:"type"`
	Quantity      int64  `json:"quantity"`
	BalanceBefore int64  `json:"balance_before"`
	BalanceAfter  int64  `json:"balance_after"`
	RecordedAt    string `json:"recorded_at"`
}

// ItemCreatedEvent payload
type ItemCreatedEvent struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
