package notifier

//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock.go

// Client delivers operational messages to the configured channel.
// Implementations must tolerate being disabled and never block a sync
// pass on delivery failure.
type Client interface {
	Notify(msg string)
}
