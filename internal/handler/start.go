package handler

import (
	"errors"

	"coursefiles/internal/catalog"
	"coursefiles/internal/keyboard"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Registration failure must not block browsing; the registry and the
	// session store are independent.
	if err := h.registry.Register(userID); err != nil {
		h.logger.Error("Failed to register user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	sections, err := h.catalog.ListChildren()
	if err != nil {
		if errors.Is(err, catalog.ErrRootNotFound) {
			h.logger.Error("Files root is missing", zap.Error(err))
			return c.Send(msgRootMissing)
		}
		h.logger.Error("Failed to list sections", zap.Error(err))
		return c.Send(msgLoadFailed)
	}

	if len(sections) == 0 {
		return c.Send(msgNoSections)
	}

	sess := h.sessions.Get(userID)
	sess.Reset(sections)

	rows := keyboard.Arrange(sections, prefixSection)
	return c.Send(msgWelcome, keyboard.Markup(rows, "", h.contactURL))
}
