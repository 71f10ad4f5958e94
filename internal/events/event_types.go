package events

import (
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventReportSubmitted  EventType = "report_submitted"
	EventFeedbackRecorded EventType = "feedback_recorded"
	EventRatingSubmitted  EventType = "rating_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorRole domain.Role `json:"actor_role"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// ReportSubmittedPayload payload. Tier distinguishes lecturer reports from
// PRL and PL submissions above them.
type ReportSubmittedPayload struct {
	ReportID int64  `json:"report_id"`
	Tier     string `json:"tier"`
	CourseID int64  `json:"course_id,omitempty"`
}

// FeedbackRecordedPayload payload.
type FeedbackRecordedPayload struct {
	RecordID int64  `json:"record_id"`
	Kind     string `json:"kind"`
}

// RatingSubmittedPayload payload.
type RatingSubmittedPayload struct {
	RatingID int64  `json:"rating_id"`
	Kind     string `json:"kind"`
	Overall  int    `json:"overall,omitempty"`
}
