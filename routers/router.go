package routers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"notesapi/pkg/note"
	v1 "notesapi/routers/api/v1"
	"notesapi/utils/logging"
	"notesapi/utils/options"
)

func InitRouter(conf *options.Config, noter note.Noter) *gin.Engine {
	gin.SetMode(conf.Http.RunMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), otelgin.Middleware("notes-api"), errorHandler())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/notes")
	})

	v1.NoteRouter(noter)

	for key, instance := range v1.APIs {
		for uri, _func := range instance {
			_value, ok := _func.(func(*gin.Context))
			if !ok {
				panic("invalid api type")
			}
			path := fmt.Sprintf("%s%s", key, uri.GetUri())
			switch uri.GetModel() {
			case "GET":
				r.GET(path, _value)
			case "POST":
				r.POST(path, _value)
			case "DELETE":
				r.DELETE(path, _value)
			case "PUT":
				r.PUT(path, _value)
			case "OPTIONS":
				r.OPTIONS(path, _value)
			case "PATCH":
				r.PATCH(path, _value)
			default:
				logging.Info("no match http request method")
			}
		}
	}
	return r
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("handler panic:", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			}
		}()
		c.Next()
	}
}
