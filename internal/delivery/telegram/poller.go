package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Run removes any webhook and long-polls for updates until ctx is done.
// Updates are handled one at a time in arrival order.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	if err := h.clearWebhook(ctx); err != nil {
		return err
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.opts.PollTimeout

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := h.bot.GetUpdates(u)
		if err != nil {
			if isConflict(err) {
				h.logger.Warn("another poller or webhook is active, repeating handshake", zap.Error(err))
				if err := h.clearWebhook(ctx); err != nil {
					return err
				}
				continue
			}

			h.logger.Error("failed to get updates", zap.Error(err))
			if err := wait(ctx, h.opts.ErrorBackoff); err != nil {
				return err
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= u.Offset {
				u.Offset = update.UpdateID + 1
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// clearWebhook deletes the webhook, retrying until it succeeds or ctx is done.
func (h *Handler) clearWebhook(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		_, err := h.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: false})
		if err == nil {
			h.logger.Debug("webhook cleared", zap.Int("attempt", attempt))
			return nil
		}

		h.logger.Warn("failed to clear webhook",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", h.opts.HandshakeRetry),
			zap.Error(err),
		)
		if err := wait(ctx, h.opts.HandshakeRetry); err != nil {
			return fmt.Errorf("clear webhook: %w", err)
		}
	}
}

func isConflict(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling update",
				zap.Int("update_id", update.UpdateID),
				zap.Any("panic", r),
			)
		}
	}()

	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	h.handleMessage(ctx, update.Message)
}
