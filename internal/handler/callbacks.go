package handler

import (
	"strconv"
	"strings"
	"unicode"

	"coursefiles/internal/domain"
	"coursefiles/internal/keyboard"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackToken extracts the navigation token from a callback. Telebot puts
// it in Unique for buttons it built itself; older clients may replay raw
// data, so fall back to the cleaned Data field.
func callbackToken(callback *tele.Callback) string {
	if callback.Unique != "" {
		return callback.Unique
	}
	data := cleanCallbackData(callback.Data)
	if i := strings.Index(data, "|"); i >= 0 {
		data = data[:i]
	}
	return data
}

// splitToken parses "<prefix>_<index>" tokens. Back tokens and anything
// without a numeric tail report ok=false.
func splitToken(token string) (prefix string, index int, ok bool) {
	i := strings.LastIndex(token, "_")
	if i <= 0 || i == len(token)-1 {
		return "", 0, false
	}
	index, err := strconv.Atoi(token[i+1:])
	if err != nil {
		return "", 0, false
	}
	return token[:i], index, true
}

// handleCallback routes every callback query through the navigation state
// machine. A token that no longer matches the session — out-of-range index,
// unknown prefix, state lost to a restart — is logged and acknowledged with
// no screen change.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID
	token := callbackToken(callback)
	sess := h.sessions.Get(userID)

	switch token {
	case tokenBackToSections:
		return h.showSections(c, sess)
	case tokenBackToSemesters:
		return h.showSemesters(c, sess)
	case tokenBackToSubjects:
		return h.showSubjects(c, sess)
	}

	prefix, index, ok := splitToken(token)
	if !ok {
		return h.ignoreCallback(c, token, "unparseable token")
	}

	switch prefix {
	case prefixSection:
		return h.openSection(c, sess, index)
	case prefixSemester:
		return h.openSemester(c, sess, index)
	case prefixSubject:
		return h.openSubject(c, sess, index)
	case prefixFile:
		return h.sendFile(c, sess, index)
	}
	return h.ignoreCallback(c, token, "unknown prefix")
}

// openSection descends from the section list into one section's semesters.
func (h *Handler) openSection(c tele.Context, sess *domain.Session, index int) error {
	if index < 0 || index >= len(sess.Sections) {
		return h.ignoreStaleIndex(c, prefixSection, index, len(sess.Sections))
	}

	section := sess.Sections[index]
	semesters, err := h.catalog.ListChildren(section)
	if err != nil {
		h.logger.Error("Failed to list semesters",
			zap.String("section", section),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgLoadFailed})
	}

	sess.EnterSection(section, semesters)
	text, markup := h.semesterMenu(sess)
	return h.edit(c, text, markup)
}

// openSemester descends into one semester's subjects.
func (h *Handler) openSemester(c tele.Context, sess *domain.Session, index int) error {
	if index < 0 || index >= len(sess.Semesters) {
		return h.ignoreStaleIndex(c, prefixSemester, index, len(sess.Semesters))
	}

	semester := sess.Semesters[index]
	subjects, err := h.catalog.ListChildren(sess.SelectedSection, semester)
	if err != nil {
		h.logger.Error("Failed to list subjects",
			zap.String("section", sess.SelectedSection),
			zap.String("semester", semester),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgLoadFailed})
	}

	sess.EnterSemester(semester, subjects)
	text, markup := h.subjectMenu(sess)
	return h.edit(c, text, markup)
}

// openSubject descends into one subject's file list.
func (h *Handler) openSubject(c tele.Context, sess *domain.Session, index int) error {
	if index < 0 || index >= len(sess.Subjects) {
		return h.ignoreStaleIndex(c, prefixSubject, index, len(sess.Subjects))
	}

	subject := sess.Subjects[index]
	files, err := h.catalog.ListChildren(sess.SelectedSection, sess.SelectedSemester, subject)
	if err != nil {
		h.logger.Error("Failed to list files",
			zap.String("section", sess.SelectedSection),
			zap.String("semester", sess.SelectedSemester),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgLoadFailed})
	}

	sess.EnterSubject(subject, files)
	text, markup := h.fileMenu(sess)
	return h.edit(c, text, markup)
}

// sendFile delivers the chosen file as a document. The menu stays as it is:
// delivery is a new message, not a screen transition.
func (h *Handler) sendFile(c tele.Context, sess *domain.Session, index int) error {
	if index < 0 || index >= len(sess.Files) {
		return h.ignoreStaleIndex(c, prefixFile, index, len(sess.Files))
	}
	if sess.SelectedSection == "" || sess.SelectedSemester == "" || sess.SelectedSubject == "" {
		return h.ignoreCallback(c, keyboard.Token(prefixFile, index), "incomplete ancestry")
	}

	name := sess.Files[index]
	path := h.catalog.FilePath(sess.SelectedSection, sess.SelectedSemester, sess.SelectedSubject, name)

	doc := &tele.Document{
		File:     tele.FromDisk(path),
		FileName: name,
	}
	if err := c.Send(doc); err != nil {
		h.logger.Error("Failed to send document",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("path", path),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgSendFailed})
	}

	h.logger.Info("Document delivered",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("file", name),
	)
	return c.Respond()
}

// showSections re-renders the section list from the session; back
// navigation never re-reads the directory tree.
func (h *Handler) showSections(c tele.Context, sess *domain.Session) error {
	if len(sess.Sections) == 0 {
		return h.ignoreCallback(c, tokenBackToSections, "no cached sections")
	}
	text, markup := h.sectionMenu(sess)
	return h.edit(c, text, markup)
}

// showSemesters re-renders the cached semester list.
func (h *Handler) showSemesters(c tele.Context, sess *domain.Session) error {
	if sess.SelectedSection == "" {
		return h.ignoreCallback(c, tokenBackToSemesters, "no cached semesters")
	}
	text, markup := h.semesterMenu(sess)
	return h.edit(c, text, markup)
}

// showSubjects re-renders the cached subject list.
func (h *Handler) showSubjects(c tele.Context, sess *domain.Session) error {
	if sess.SelectedSemester == "" {
		return h.ignoreCallback(c, tokenBackToSubjects, "no cached subjects")
	}
	text, markup := h.subjectMenu(sess)
	return h.edit(c, text, markup)
}

// ignoreStaleIndex acknowledges a callback whose index no longer fits the
// session's list. The screen is left untouched.
func (h *Handler) ignoreStaleIndex(c tele.Context, prefix string, index, size int) error {
	h.logger.Warn("Stale callback index",
		zap.String("prefix", prefix),
		zap.Int("index", index),
		zap.Int("list_size", size),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// ignoreCallback acknowledges a callback the state machine cannot act on.
func (h *Handler) ignoreCallback(c tele.Context, token, reason string) error {
	h.logger.Warn("Ignoring callback",
		zap.String("token", token),
		zap.String("reason", reason),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge callback. Otherwise, acknowledge callback and return error
// so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	userID := c.Sender().ID
	errStr := err.Error()
	// If message is not modified, it was already edited by another callback.
	// Just acknowledge and return nil - don't send new message
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// edit replaces the current screen in place, falling back to a fresh
// message only when Telegram refuses the edit.
func (h *Handler) edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
