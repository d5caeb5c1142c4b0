package payment

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/rakibhasan/coursehub/services/payment Notifier

// Notifier delivers the approval confirmation to the payer.
type Notifier interface {
	SendCourseAccess(to, name, courseName string) error
}
