package jobs

import (
	"fmt"
	"sort"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramHandler handles Telegram commands for the jobs feature
type TelegramHandler struct {
	service *Service
}

// NewTelegramHandler creates a new Telegram handler for the jobs feature
func NewTelegramHandler(service *Service) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// HandleCommand processes jobs-related Telegram commands
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	switch command {
	case "jobs":
		return h.handleJobs(bot, chatID)
	default:
		msg := tgbotapi.NewMessage(chatID, "❌ Unknown jobs command. Use /jobs")
		msg.ParseMode = tgbotapi.ModeMarkdown
		bot.Send(msg)
		return nil
	}
}

// GetCommands returns the available commands for this handler
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"jobs": "Show statistics generation jobs",
	}
}

// handleJobs lists generation jobs, newest first
func (h *TelegramHandler) handleJobs(bot *tgbotapi.BotAPI, chatID int64) error {
	jobs := h.service.GetJobs()

	if len(jobs) == 0 {
		msg := tgbotapi.NewMessage(chatID, "📋 *No generation jobs yet.* Results appear under /tourstats once one runs.")
		msg.ParseMode = tgbotapi.ModeMarkdown
		bot.Send(msg)
		return nil
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	message := "📋 *Generation jobs*\n\n"
	for _, job := range jobs {
		message += formatJobLine(job) + "\n"
	}

	msg := tgbotapi.NewMessage(chatID, message)
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}

// formatJobLine renders one job as a list entry, surfacing the tour the job
// is computing when its metadata names one.
func formatJobLine(job *Job) string {
	line := fmt.Sprintf("%s `%s`", statusEmoji(job.Status), job.Name)
	if tourName, ok := job.Metadata["tour"].(string); ok && tourName != "" {
		line += fmt.Sprintf(" [%s]", tourName)
	}
	switch job.Status {
	case JobStatusRunning:
		line += fmt.Sprintf(" %d%%", job.Progress)
	case JobStatusFailed:
		if job.Error != "" {
			line += fmt.Sprintf(" (%s)", job.Error)
		}
	}
	if job.Message != "" {
		line += ": " + job.Message
	}
	return line
}

// statusEmoji maps a job status to its list marker
func statusEmoji(status JobStatus) string {
	switch status {
	case JobStatusPending:
		return "⏳"
	case JobStatusRunning:
		return "🔄"
	case JobStatusCompleted:
		return "✅"
	case JobStatusFailed:
		return "❌"
	case JobStatusCancelled:
		return "🚫"
	default:
		return "❓"
	}
}
