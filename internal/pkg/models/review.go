package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is one reviewer's rating of a course. A reviewer may hold at most
// one review per course; the store enforces this with a unique composite
// index on (course_id, reviewer_email). New reviews start unapproved and
// become visible only after moderation.
type Review struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CourseID      string    `json:"courseId" db:"course_id"`
	ReviewerName  string    `json:"reviewerName" db:"reviewer_name"`
	ReviewerEmail string    `json:"reviewerEmail" db:"reviewer_email"`
	Rating        int       `json:"rating" db:"rating"`
	ReviewText    string    `json:"reviewText" db:"review_text"`
	IsApproved    bool      `json:"isApproved" db:"is_approved"`
	CreatedAt     time.Time `json:"date" db:"created_at"`
}

// SubmitReviewRequest represents a review submission
type SubmitReviewRequest struct {
	CourseID      string `json:"courseId" validate:"required"`
	ReviewerName  string `json:"reviewerName" validate:"required"`
	ReviewerEmail string `json:"reviewerEmail" validate:"required"`
	Rating        int    `json:"rating" validate:"required"`
	ReviewText    string `json:"reviewText" validate:"required"`
}

// UpdateReviewApprovalRequest represents a moderation decision
type UpdateReviewApprovalRequest struct {
	IsApproved bool `json:"isApproved"`
}

// ReviewFilter narrows the admin review listing
type ReviewFilter struct {
	Status string
	Page   int
	Limit  int
}

// ReviewPage is one page of the admin review listing
type ReviewPage struct {
	Reviews     []Review `json:"reviews"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
}
