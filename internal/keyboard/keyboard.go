// Package keyboard builds the inline keyboards shown while browsing.
// Callback data encodes the item's position in the rendered list, so a
// keyboard is only meaningful together with the session that produced it.
package keyboard

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

const (
	backLabel    = "🔙 Back"
	contactLabel = "📩 Contact the developer"
)

// Token returns the callback token for an item at the given list position.
func Token(prefix string, index int) string {
	return fmt.Sprintf("%s_%d", prefix, index)
}

// Arrange packs items two per row in input order. An odd trailing item gets
// a row of its own.
func Arrange(items []string, prefix string) []tele.Row {
	rows := make([]tele.Row, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		row := tele.Row{button(items[i], prefix, i)}
		if i+1 < len(items) {
			row = append(row, button(items[i+1], prefix, i+1))
		}
		rows = append(rows, row)
	}
	return rows
}

// List puts every item on its own row; used for file listings.
func List(items []string, prefix string) []tele.Row {
	rows := make([]tele.Row, 0, len(items))
	for i, item := range items {
		rows = append(rows, tele.Row{button(item, prefix, i)})
	}
	return rows
}

// Markup appends the trailing navigation controls to the item rows and
// returns the finished inline markup. The back button comes first (skipped
// when backToken is empty), the contact link is always the final row.
func Markup(rows []tele.Row, backToken, contactURL string) *tele.ReplyMarkup {
	if backToken != "" {
		rows = append(rows, tele.Row{{Text: backLabel, Unique: backToken}})
	}
	rows = append(rows, tele.Row{{Text: contactLabel, URL: contactURL}})

	markup := &tele.ReplyMarkup{}
	markup.Inline(rows...)
	return markup
}

func button(label, prefix string, index int) tele.Btn {
	return tele.Btn{Text: label, Unique: Token(prefix, index)}
}
