// Package version reports the build of the running backend.
package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
)

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`      // Version of the backend
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go release the backend was built with
}

// RegisterRoutes registers the endpoint reporting the given version.
func RegisterRoutes(r *gin.RouterGroup, v string) {
	r.GET("", Get(v))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler for the version endpoint.
//
// @Summary		API version
// @Description	Returns the software version of the API and the Go release it was built with
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(v string) gin.HandlerFunc {
	response := Response{
		Data: Object{
			Version:   v,
			GoVersion: runtime.Version(),
		},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
