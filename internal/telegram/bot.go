// Package telegram runs the household bot: today's menu, the current
// shopping list and a single-day reshuffle, over long-polled updates.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"kondate/internal/app"
	"kondate/internal/planner"
)

// Bot wraps the Telegram API around the planning operations. Each allowed
// chat is its own household; the chat id doubles as the user id.
type Bot struct {
	api          *tgbotapi.BotAPI
	app          *app.App
	logger       *zap.Logger
	allowedChats map[int64]bool
}

// NewBot initializes the Telegram bot for long polling.
func NewBot(token string, allowedChats []int64, application *app.App, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	logger.Info("telegram bot authorized", zap.String("account", api.Self.UserName))

	allowed := make(map[int64]bool, len(allowedChats))
	for _, id := range allowedChats {
		allowed[id] = true
	}
	return &Bot{api: api, app: application, logger: logger, allowedChats: allowed}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !b.allowedChats[msg.Chat.ID] {
		b.logger.Warn("unauthorized chat", zap.Int64("chat_id", msg.Chat.ID))
		return
	}

	userID := fmt.Sprintf("%d", msg.Chat.ID)
	switch msg.Command() {
	case "today":
		b.sendToday(ctx, msg.Chat.ID, userID)
	case "shopping":
		b.sendShopping(ctx, msg.Chat.ID, userID)
	case "reshuffle":
		b.reshuffleToday(ctx, msg.Chat.ID, userID)
	case "start", "help":
		b.reply(msg.Chat.ID, "コマンド:\n/today 今日の献立\n/shopping 買い物リスト\n/reshuffle 今日の献立を変更")
	default:
		b.reply(msg.Chat.ID, "わからないコマンドです。/help をどうぞ。")
	}
}

func (b *Bot) sendToday(ctx context.Context, chatID int64, userID string) {
	day, err := b.app.DayMenu(userID, time.Now())
	if err != nil {
		b.replyError(chatID, "今日の献立はまだありません。", err)
		return
	}
	b.replyMarkdown(chatID, formatDayMarkdown(day))
}

func (b *Bot) sendShopping(ctx context.Context, chatID int64, userID string) {
	lines, err := b.app.ShoppingList(ctx, userID)
	if err != nil {
		b.replyError(chatID, "買い物リストを取得できませんでした。", err)
		return
	}
	b.replyMarkdown(chatID, formatShoppingMarkdown(lines))
}

func (b *Bot) reshuffleToday(ctx context.Context, chatID int64, userID string) {
	item, err := b.app.RefreshDay(ctx, userID, time.Now())
	if err != nil {
		b.replyError(chatID, "献立を変更できませんでした。", err)
		return
	}
	b.replyMarkdown(chatID, "🔄 新しい献立です。\n\n"+formatItemMarkdown(item))
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn("failed to send telegram message", zap.Error(err))
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send telegram message", zap.Error(err))
	}
}

func (b *Bot) replyError(chatID int64, text string, err error) {
	if !errors.Is(err, app.ErrNotFound) {
		b.logger.Warn("bot command failed", zap.Error(err))
	}
	b.reply(chatID, text)
}

func formatDayMarkdown(day *planner.DailyMenu) string {
	return formatItemMarkdown(&planner.MenuItem{
		Day:  planner.WeekdayLabel(day.MenuDate),
		Date: day.MenuDate.Format("2006-01-02"),
		Dish: day.Dish,
		Menu: day.Menu,
	})
}

func formatItemMarkdown(item *planner.MenuItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🍽 *%s (%s)*\n", item.Day, item.Date)
	for _, dish := range item.Menu.Dishes {
		fmt.Fprintf(&sb, "\n*%s*: %s\n", dish.Category, dish.Name)
		for _, ing := range dish.Ingredients {
			fmt.Fprintf(&sb, "  • %s %g%s\n", ing.Name, ing.Qty, ing.Unit)
		}
	}
	return sb.String()
}

func formatShoppingMarkdown(lines []app.ShoppingLine) string {
	if len(lines) == 0 {
		return "🛒 買い物リストは空です。"
	}
	var sb strings.Builder
	sb.WriteString("🛒 *買い物リスト*\n")
	for _, line := range lines {
		mark := "•"
		if line.Checked {
			mark = "✅"
		}
		fmt.Fprintf(&sb, "%s %s %g%s\n", mark, line.Name, line.Qty, line.Unit)
	}
	return sb.String()
}
