package entity

import "time"

// TaskKind tells the concierge team what to do with a task.
type TaskKind string

const (
	// TaskCallLead follows up on a reservation.
	TaskCallLead TaskKind = "call_lead"
	// TaskReviewListing vets a newly listed asset.
	TaskReviewListing TaskKind = "review_listing"
)

// ConciergeTask is a follow-up item created from a catalog event.
type ConciergeTask struct {
	ID        string    `json:"id"`
	Kind      TaskKind  `json:"kind"`
	Subject   string    `json:"subject"`   // Human readable summary.
	Reference string    `json:"reference"` // Reservation or asset id.
	EventID   string    `json:"eventId"`   // Event the task was derived from, used for deduplication.
	RequestID string    `json:"requestId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
