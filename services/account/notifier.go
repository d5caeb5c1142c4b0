package account

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/rakibhasan/coursehub/services/account Notifier

// Notifier delivers verification codes to users out of band.
type Notifier interface {
	SendOTP(to, code string) error
	SendPasswordResetOTP(to, code string) error
}
