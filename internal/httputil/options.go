package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

func options(methods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("allow", methods)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

var (
	OptionsGet            = options("OPTIONS, GET")
	OptionsPost           = options("OPTIONS, POST")
	OptionsGetPost        = options("OPTIONS, GET, POST")
	OptionsGetPatchDelete = options("OPTIONS, GET, PATCH, DELETE")
)
