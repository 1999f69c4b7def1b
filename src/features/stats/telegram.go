package stats

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramHandler handles Telegram commands for the stats feature
type TelegramHandler struct {
	service *Service
}

// NewTelegramHandler creates a new Telegram handler for the stats feature
func NewTelegramHandler(service *Service) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// HandleCommand processes stats-related Telegram commands
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	switch command {
	case "tours":
		return h.handleTours(bot, chatID)
	case "tourstats":
		return h.handleTourStats(bot, chatID, strings.TrimSpace(args))
	default:
		msg := tgbotapi.NewMessage(chatID, "❌ Unknown stats command. Use /tours or /tourstats <tour>")
		msg.ParseMode = tgbotapi.ModeMarkdown
		bot.Send(msg)
		return nil
	}
}

// GetCommands returns the available commands for this handler
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"tours":     "List tours with computed statistics",
		"tourstats": "Show the statistics summary for a tour",
	}
}

// handleTours lists the tours that have a snapshot
func (h *TelegramHandler) handleTours(bot *tgbotapi.BotAPI, chatID int64) error {
	tours, err := h.service.ListTours(context.Background())
	if err != nil || len(tours) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🎸 *No tour statistics computed yet*")
		msg.ParseMode = tgbotapi.ModeMarkdown
		bot.Send(msg)
		return nil
	}

	message := "🎸 *Tours*\n\n"
	for _, t := range tours {
		message += fmt.Sprintf("• `%s`\n", t)
	}
	msg := tgbotapi.NewMessage(chatID, message)
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}

// handleTourStats sends a compact summary of a tour's snapshot
func (h *TelegramHandler) handleTourStats(bot *tgbotapi.BotAPI, chatID int64, tourName string) error {
	if tourName == "" {
		msg := tgbotapi.NewMessage(chatID, "Usage: /tourstats <tour name>")
		bot.Send(msg)
		return nil
	}

	stats, err := h.service.GetLatestStats(context.Background(), tourName)
	if err != nil || stats == nil {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("❌ No statistics for `%s`", tourName))
		msg.ParseMode = tgbotapi.ModeMarkdown
		bot.Send(msg)
		return nil
	}

	message := fmt.Sprintf("📊 *%s*\n\n", stats.TourName)
	if len(stats.LongestSongs) > 0 {
		longest := stats.LongestSongs[0]
		message += fmt.Sprintf("⏱ Longest: %s (%d:%02d)\n", longest.SongName, longest.DurationSeconds/60, longest.DurationSeconds%60)
	}
	if len(stats.RarestSongs) > 0 {
		rarest := stats.RarestSongs[0]
		message += fmt.Sprintf("💎 Rarest: %s (gap %d)\n", rarest.SongName, rarest.Gap)
	}
	if len(stats.MostPlayedSongs) > 0 {
		most := stats.MostPlayedSongs[0]
		message += fmt.Sprintf("🔁 Most played: %s (%d times)\n", most.SongName, most.PlayCount)
	}
	message += fmt.Sprintf("🎶 Debuts: %d\n", len(stats.Debuts.Debuts))
	message += fmt.Sprintf("📅 Shows: %d\n", stats.Repeats.TotalShows)

	msg := tgbotapi.NewMessage(chatID, message)
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}
