package keyboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item %d", i)
	}
	return out
}

func TestArrange_RowPacking(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		expectedRows int
	}{
		{name: "empty", count: 0, expectedRows: 0},
		{name: "single item", count: 1, expectedRows: 1},
		{name: "even count", count: 4, expectedRows: 2},
		{name: "odd count", count: 5, expectedRows: 3},
		{name: "large odd count", count: 11, expectedRows: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Arrange(items(tt.count), "section")

			assert.Len(t, rows, tt.expectedRows)
			for i, row := range rows {
				if i == len(rows)-1 && tt.count%2 == 1 {
					assert.Len(t, row, 1, "trailing row of an odd list holds one button")
				} else {
					assert.Len(t, row, 2)
				}
			}
		})
	}
}

func TestArrange_IndicesFollowInputOrder(t *testing.T) {
	rows := Arrange([]string{"Math", "Physics", "Chemistry"}, "section")

	flat := []tele.Btn{}
	for _, row := range rows {
		flat = append(flat, row...)
	}

	for i, btn := range flat {
		assert.Equal(t, fmt.Sprintf("section_%d", i), btn.Unique)
	}
	assert.Equal(t, "Math", flat[0].Text)
	assert.Equal(t, "Chemistry", flat[2].Text)
}

func TestList_OneItemPerRow(t *testing.T) {
	rows := List([]string{"a.pdf", "b.pdf", "c.pdf"}, "file")

	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Len(t, row, 1)
		assert.Equal(t, fmt.Sprintf("file_%d", i), row[0].Unique)
	}
}

func TestMarkup_TrailingControls(t *testing.T) {
	rows := Arrange([]string{"S1", "S2"}, "semester")

	markup := Markup(rows, "back_to_sections", "https://t.me/developer")

	keyboard := markup.InlineKeyboard
	assert.Len(t, keyboard, 3)

	backRow := keyboard[len(keyboard)-2]
	assert.Len(t, backRow, 1)
	assert.Equal(t, "back_to_sections", backRow[0].Unique)

	contactRow := keyboard[len(keyboard)-1]
	assert.Len(t, contactRow, 1)
	assert.Equal(t, "https://t.me/developer", contactRow[0].URL)
}

func TestMarkup_NoBackTarget(t *testing.T) {
	rows := Arrange([]string{"Math"}, "section")

	markup := Markup(rows, "", "https://t.me/developer")

	keyboard := markup.InlineKeyboard
	assert.Len(t, keyboard, 2)
	assert.Equal(t, "https://t.me/developer", keyboard[1][0].URL)
}

func TestMarkup_EmptyItemListStillHasControls(t *testing.T) {
	markup := Markup(nil, "back_to_subjects", "https://t.me/developer")

	keyboard := markup.InlineKeyboard
	assert.Len(t, keyboard, 2)
	assert.Equal(t, "back_to_subjects", keyboard[0][0].Unique)
}
