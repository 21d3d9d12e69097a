package palette

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-board/business/v1/note"
	"github.com/ribgsilva/note-board/platform/web/handler"
)

type Palette struct {
	Colors  []string `json:"colors"`
	Default string   `json:"default" example:"bg-yellow-200"`
}

// Get godoc
// @Summary List note colors
// @Description Colors a note can be created with, the default one first
// @Tags Palette
// @Produce json
// @Success 200 {object} palette.Palette
// @Router /v1/palette [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Palette{Colors: note.Palette, Default: note.DefaultColor},
	}
}
