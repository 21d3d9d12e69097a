package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-board/business/v1/note"
	"github.com/ribgsilva/note-board/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description All notes in creation order
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Router /v1/notes [get]
func List(store *note.Store) handler.Func {
	return func(_ *gin.Context) handler.Result {
		return handler.Result{
			Status: http.StatusOK,
			Body:   store.All(),
		}
	}
}

// Chart godoc
// @Summary Notes per day
// @Description Number of notes created on each date, in order of first appearance
// @Tags Note
// @Produce json
// @Success 200 {array} note.ChartPoint
// @Router /v1/notes/chart [get]
func Chart(store *note.Store) handler.Func {
	return func(_ *gin.Context) handler.Result {
		return handler.Result{
			Status: http.StatusOK,
			Body:   store.Chart(),
		}
	}
}
