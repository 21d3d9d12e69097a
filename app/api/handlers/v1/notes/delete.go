package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-board/business/v1/note"
	"github.com/ribgsilva/note-board/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Removes a note using its id and returns the remaining notes. Unknown ids are ignored
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {array} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(store *note.Store) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
		if err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid id"},
			}
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   store.Delete(ctx, id),
		}
	}
}
