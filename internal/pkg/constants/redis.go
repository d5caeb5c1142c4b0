package constants

// Redis key formats
const (
	// Account service
	KeyPendingOTP = "otp:pending:%s" // Format: otp:pending:{email}
)
