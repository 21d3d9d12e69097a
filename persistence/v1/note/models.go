package note

import "errors"

// DefaultSlotKey is the key the collection is stored under when none is configured
const DefaultSlotKey = "notes"

// DateLayout is the calendar date format of Record.Date
const DateLayout = "2006-01-02"

// Palette colors, the first one is the default
const (
	ColorYellow = "bg-yellow-200"
	ColorBlue   = "bg-blue-200"
	ColorGreen  = "bg-green-200"
	ColorPink   = "bg-pink-200"
	ColorPurple = "bg-purple-200"
)

// DefaultColor is used when a note is created without a known color
const DefaultColor = ColorYellow

// Palette lists every color a note may have, in display order
var Palette = []string{ColorYellow, ColorBlue, ColorGreen, ColorPink, ColorPurple}

// ValidColor reports whether c belongs to the palette
func ValidColor(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// ErrMalformed is returned by Load when the slot holds something other than a note collection
var ErrMalformed = errors.New("malformed note collection")

// recordKeys are the exact keys of a stored record
var recordKeys = []string{"id", "title", "content", "color", "date"}

// Record is the stored shape of a note
type Record struct {
	Id      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Date    string `json:"date"`
}
