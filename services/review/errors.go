package review

import "errors"

// Sentinel errors returned by the review usecase.
var (
	ErrValidation      = errors.New("validation failed")
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("a review for this course already exists for this email")
)
