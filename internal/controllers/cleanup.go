package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/rs/zerolog/log"
)

// @Summary		Delete everything
// @Description	Permanently deletes all records
// @Tags			General
// @Produce		json
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			confirm	query		string	false	"Confirmation to delete all records. Must have the value 'yes-please-delete-everything'"
// @Router			/ [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		fail(c, errCleanupConfirmation, i18n.MsgDeleteFailed)
		return
	}

	err = co.Gateway.DeleteAll(c.Request.Context())
	if err != nil {
		fail(c, err, i18n.MsgDeleteFailed)
		return
	}

	log.Info().Msg("all records deleted")
	c.JSON(http.StatusOK, MessageResponse{
		Message: i18n.Printer(c).Sprintf(i18n.MsgAllDeleted),
	})
}
