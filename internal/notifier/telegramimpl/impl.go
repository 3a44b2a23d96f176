package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/meta-graph-sync/internal/notifier"
	"github.com/orgball2608/meta-graph-sync/pkg/config"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New builds the Telegram notifier. When Telegram is disabled in the
// configuration the returned client drops messages silently.
func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("TelegramNotifier")

	if !opts.Config.Telegram.Enabled {
		log.Info("Telegram notifications disabled")
		return &TelegramImpl{Logger: log, Config: opts.Config}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

var _ notifier.Client = (*TelegramImpl)(nil)

func (t *TelegramImpl) Notify(msg string) {
	if t.TgBot == nil {
		return
	}

	message := tgbotapi.NewMessage(t.Config.Telegram.ChatID, msg)
	if _, err := t.TgBot.Send(message); err != nil {
		t.Logger.Error("Failed to send notification", "error", err)
	}
}
