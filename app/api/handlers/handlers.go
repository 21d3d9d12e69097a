package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-board/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-board/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-board/app/api/handlers/v1/palette"
	"github.com/ribgsilva/note-board/business/v1/note"
	"github.com/ribgsilva/note-board/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, store *note.Store) {
	r.GET("/v1/notes", handler.Wrapper(notes.List(store)))
	r.POST("/v1/notes", handler.Wrapper(notes.Create(store)))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete(store)))
	r.GET("/v1/notes/chart", handler.Wrapper(notes.Chart(store)))
	r.GET("/v1/palette", handler.Wrapper(palette.Get))
}
