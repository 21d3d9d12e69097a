package note

import "github.com/ribgsilva/note-board/persistence/v1/note"

// Palette colors, the first one is the default
const (
	ColorYellow = note.ColorYellow
	ColorBlue   = note.ColorBlue
	ColorGreen  = note.ColorGreen
	ColorPink   = note.ColorPink
	ColorPurple = note.ColorPurple
)

// DefaultColor is used when a note is created without a known color
const DefaultColor = note.DefaultColor

// Palette lists every color a note may have, in display order
var Palette = note.Palette

type Note struct {
	Id      int64  `json:"id" example:"1731571200000"`
	Title   string `json:"title" example:"Groceries"`
	Content string `json:"content" example:"Milk, eggs"`
	Color   string `json:"color" example:"bg-yellow-200"`
	Date    string `json:"date" example:"2024-11-14"`
}

// ChartPoint is the number of notes created on a date
type ChartPoint struct {
	Date  string `json:"date" example:"2024-11-14"`
	Count int    `json:"count" example:"2"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

type DeleteNote struct {
	Id int64 `json:"id"`
}

// ValidColor reports whether c belongs to the palette
func ValidColor(c string) bool {
	return note.ValidColor(c)
}
