package modqueue

import (
	"time"
)

// Priority of a queued review item. Urgent is reserved for explicit
// escalations and is never assigned at ingestion.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// rank orders priorities for assignment; higher is served first.
func (p Priority) rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// Status of a review item. An item transitions exactly once from
// pending/needs_review to a terminal status.
type Status string

const (
	StatusPending     Status = "pending"
	StatusNeedsReview Status = "needs_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ModAction is a moderator decision applied to an assigned item.
type ModAction string

const (
	ActionApprove  ModAction = "approve"
	ActionReject   ModAction = "reject"
	ActionEscalate ModAction = "escalate"
)

// ModerationItem is one entry in the review queue. It references the hazard
// under review but does not own it.
type ModerationItem struct {
	ID          string   `gorm:"primaryKey"`
	HazardID    string   `gorm:"index;not null"`
	SubmitterID string   `gorm:"not null"`
	Reasons     []string `gorm:"serializer:json"`
	Priority    Priority `gorm:"index;not null"`
	Status      Status   `gorm:"index;not null"`
	// AssignedModerator may only be set while the item is non-terminal.
	AssignedModerator *string
	Notes             *string
	CreatedAt         time.Time `gorm:"not null"`
	ResolvedAt        *time.Time
}

// PriorityForSeverity derives ingestion priority from the hazard's declared
// severity level. Urgent is not reachable from here.
func PriorityForSeverity(severity int) Priority {
	switch {
	case severity >= 4:
		return PriorityHigh
	case severity >= 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
