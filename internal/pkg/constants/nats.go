package constants

// NATS Subjects
const (
	// Payment workflow
	SubjectPaymentSubmitted   = "payment.submitted"
	SubjectPaymentCourseGrant = "payment.course.granted"
)
