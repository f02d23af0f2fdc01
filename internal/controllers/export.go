package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/i18n"
)

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import & Export
// @Success		204
// @Router			/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all records as a JSON file that can be imported again
// @Tags			Import & Export
// @Produce		json
// @Success		200	{object}	ExportFile
// @Failure		500	{object}	httputil.HTTPError
// @Router			/export [get]
func (co Controller) Export(c *gin.Context) {
	records, err := co.Gateway.List(c.Request.Context())
	if err != nil {
		fail(c, err, i18n.MsgExportFailed)
		return
	}

	now := co.now()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.json\"", now.Format(time.DateOnly)))
	c.JSON(http.StatusOK, ExportFile{
		Version:      co.Version,
		CreationTime: now.UTC().Format(time.RFC3339),
		Data:         records,
	})
}
