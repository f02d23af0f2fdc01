package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs     string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz  string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version  string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Expenses string `json:"expenses" example:"https://example.com/api/expenses"`    // Records of income and expenses
	Summary  string `json:"summary" example:"https://example.com/api/summary"`      // Monthly statistics
	Export   string `json:"export" example:"https://example.com/api/export"`        // Export of all records
	Import   string `json:"import" example:"https://example.com/api/import"`        // Import of an export
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(httputil.ContextURL)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:     url + "/docs/index.html",
			Healthz:  url + "/healthz",
			Version:  url + "/version",
			Expenses: url + "/expenses",
			Summary:  url + "/summary",
			Export:   url + "/export",
			Import:   url + "/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
