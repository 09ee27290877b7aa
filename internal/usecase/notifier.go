package usecase

import "fmt"

type Console interface {
	Info(message string)
	Success(message string)
	Error(message string)
	Plain(message string)
}

// ChatSender is an optional secondary channel such as a Telegram bot.
type ChatSender interface {
	Send(message string) error
}

// Notifier always prints to the console and, when a chat channel is
// configured, makes one best-effort delivery there. Chat failures are
// printed and logged, never returned.
type Notifier struct {
	console Console
	chat    ChatSender
	logger  Logger
}

// NewNotifier builds a notifier; chat is nil when the channel is not
// configured.
func NewNotifier(console Console, chat ChatSender, logger Logger) *Notifier {
	return &Notifier{
		console: console,
		chat:    chat,
		logger:  logger,
	}
}

func (n *Notifier) Notify(message string) {
	n.console.Info(message)

	if n.chat == nil {
		return
	}

	if err := n.chat.Send(message); err != nil {
		n.console.Error(fmt.Sprintf("Telegram error: %v", err))
		n.logger.Warnf("Chat notification failed: %v", err)
	}
}
