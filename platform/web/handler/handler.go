package handler

import "github.com/gin-gonic/gin"

// Result is what every handler returns, rendered as json by Wrapper
type Result struct {
	Status int
	Body   any
}

// Error is the body sent back on failures
type Error struct {
	Message string `json:"message" example:"invalid id"`
}

// Func is a gin handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func into a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
