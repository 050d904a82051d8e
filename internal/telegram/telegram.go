package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// SendMessageToDefaultChannel posts a MarkdownV2 message to the alert chat.
	// It does nothing when alerts are not configured.
	SendMessageToDefaultChannel(msg string)
}
