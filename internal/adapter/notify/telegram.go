package notify

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zenndi/zenndi-ops/internal/config"
)

const DefaultTelegramTimeout = 10 * time.Second

// Telegram posts messages to one chat through the Bot API. The client skips
// the getMe handshake so each send is a single bounded request.
type Telegram struct {
	token  string
	chatID string
	title  string
	bot    *tgbotapi.BotAPI
}

func NewTelegram(cfg *config.TelegramConfig, title string, timeout time.Duration) *Telegram {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTelegramTimeout
	}

	bot := &tgbotapi.BotAPI{
		Token:  cfg.BotToken,
		Client: &http.Client{Timeout: timeout},
		Buffer: 100,
	}
	bot.SetAPIEndpoint(endpoint)

	return &Telegram{
		token:  cfg.BotToken,
		chatID: strings.TrimSpace(cfg.ChatID),
		title:  title,
		bot:    bot,
	}
}

// Send makes one delivery attempt. The bot token never appears in the
// returned error.
func (t *Telegram) Send(message string) error {
	text := fmt.Sprintf("🚀 %s\n%s", t.title, message)

	var msg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(t.chatID, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(t.chatID, text)
	}

	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram notification: %s", t.redact(err))
	}

	return nil
}

// redact strips the token, which request URLs embed, from err's text.
func (t *Telegram) redact(err error) string {
	if t.token == "" {
		return err.Error()
	}
	return strings.ReplaceAll(err.Error(), t.token, "<redacted>")
}
