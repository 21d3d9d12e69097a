package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-board/business/v1/note"
	"github.com/ribgsilva/note-board/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Adds a note and returns every note. A blank title or text is ignored and the notes are returned unchanged
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 200 {array} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func Create(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		var n note.NewNote
		if err := ctx.ShouldBindJSON(&n); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid body"},
			}
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   store.Add(ctx, n.Title, n.Content, n.Color),
		}
	}
}
