package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/models"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendPosting(p models.QualifiedPosting) error {
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"🎓 %s\n"+
			"📍 %s\n"+
			"📅 %s\n"+
			"🔗 <a href=\"%s\">Careers Page</a>",
		p.Title,
		p.Company,
		p.JobTier,
		p.Location,
		p.PostedDate,
		p.CareerLink,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>JobScout Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
