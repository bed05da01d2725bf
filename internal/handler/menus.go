package handler

import (
	"fmt"

	"coursefiles/internal/domain"
	"coursefiles/internal/keyboard"

	tele "gopkg.in/telebot.v3"
)

// Screen builders. Each one renders purely from the session's cached lists,
// so a back transition reproduces the previous screen exactly.

func (h *Handler) sectionMenu(sess *domain.Session) (string, *tele.ReplyMarkup) {
	text := "📚 Pick a section:"
	rows := keyboard.Arrange(sess.Sections, prefixSection)
	return text, keyboard.Markup(rows, "", h.contactURL)
}

func (h *Handler) semesterMenu(sess *domain.Session) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("📖 Section: %s\nPick a semester:", sess.SelectedSection)
	if len(sess.Semesters) == 0 {
		text = fmt.Sprintf("📖 Section: %s\n📂 Nothing here yet.", sess.SelectedSection)
	}
	rows := keyboard.Arrange(sess.Semesters, prefixSemester)
	return text, keyboard.Markup(rows, tokenBackToSections, h.contactURL)
}

func (h *Handler) subjectMenu(sess *domain.Session) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("📖 Semester: %s\nPick a subject:", sess.SelectedSemester)
	if len(sess.Subjects) == 0 {
		text = fmt.Sprintf("📖 Semester: %s\n📂 Nothing here yet.", sess.SelectedSemester)
	}
	rows := keyboard.Arrange(sess.Subjects, prefixSubject)
	return text, keyboard.Markup(rows, tokenBackToSemesters, h.contactURL)
}

// fileMenu lists files one per row; file names are long enough that the
// two-column grid would truncate them.
func (h *Handler) fileMenu(sess *domain.Session) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("📘 Subject: %s\nPick a file:", sess.SelectedSubject)
	if len(sess.Files) == 0 {
		text = fmt.Sprintf("📘 Subject: %s\n📂 No files here yet.", sess.SelectedSubject)
	}
	rows := keyboard.List(sess.Files, prefixFile)
	return text, keyboard.Markup(rows, tokenBackToSubjects, h.contactURL)
}
