package telegram

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc is one routed bot action, bound to the chat it answers in.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling turns a handler failure into a logged apology so a bad
// lookup or quiz step never kills the update loop.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		h.logger.Error("handler failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}
