package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-shop-sync/internal/telegram"
	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot   *tgbotapi.BotAPI
	Logger  logger.Logger
	Channel int64
}

// New connects the alert bot. Without a token, or when the bot cannot be
// reached, alerts are disabled instead of failing startup.
func New(opts Opts) *TelegramImpl {
	log := opts.Logger.WithComponent("TelegramAlerts")
	impl := &TelegramImpl{
		Logger:  log,
		Channel: opts.Config.Telegram.Channel,
	}

	if opts.Config.Telegram.Token == "" || opts.Config.Telegram.Channel == 0 {
		log.Info("Telegram alerts disabled")
		return impl
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot, alerts disabled", "error", err)
		return impl
	}

	impl.TgBot = tgBot
	return impl
}

var _ telegram.Client = (*TelegramImpl)(nil)

var Module = fx.Module("telegram",
	fx.Provide(
		fx.Annotate(New, fx.As(new(telegram.Client))),
	),
)
