package component

import (
	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message string `json:"message"`
}

// Render writes the response for a handler. Success bodies are the raw
// result (the routes each have their own shape: note array, single note,
// bare identifier string); failures get the message envelope.
func (ar ApiResponse) Render(context *gin.Context, code int, result interface{}, err error) {
	if err != nil {
		ar.Message = err.Error()
		context.JSON(code, ar)
		return
	}
	if result == nil {
		context.Status(code)
		return
	}
	context.JSON(code, result)
}
