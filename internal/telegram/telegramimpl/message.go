package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (tg *TelegramImpl) SendMessageToDefaultChannel(msg string) {
	if tg.TgBot == nil {
		return
	}

	newMsg := tgbotapi.NewMessage(tg.Channel, msg)
	newMsg.ParseMode = tgbotapi.ModeMarkdownV2
	newMsg.DisableWebPagePreview = true

	if _, err := tg.TgBot.Send(newMsg); err != nil {
		tg.Logger.Error("Error sending alert", "chat_id", tg.Channel, "error", err)
		return
	}

	tg.Logger.Info("Alert sent", "chat_id", tg.Channel)
}
