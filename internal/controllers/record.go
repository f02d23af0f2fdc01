package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/kakeibo-app/backend/internal/models"
)

// RegisterRecordRoutes registers the routes for records with
// the RouterGroup that is passed.
func (co Controller) RegisterRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsRecordList)
		r.GET("", co.GetRecords)
		r.POST("", co.CreateRecord)
	}

	// Record with ID
	{
		r.OPTIONS("/:id", co.OptionsRecordDetail)
		r.GET("/:id", co.GetRecord)
		r.PUT("/:id", co.UpdateRecord)
		r.PATCH("/:id", co.UpdateRecord)
		r.DELETE("/:id", co.DeleteRecord)
	}
}

// bind binds the request body to the payload.
//
// A value of the wrong type for a field is returned as validation error
// so that it can be reported together with the other violations of the payload.
func bind(c *gin.Context, payload any) (*models.ValidationError, error) {
	err := httputil.BindData(c, payload)
	if err == nil {
		return nil, nil
	}

	if typeErr := typeError(err); typeErr != nil {
		return typeErr, nil
	}

	if status(err) == http.StatusInternalServerError {
		return nil, httputil.ErrInvalidBody
	}

	return nil, err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func (co Controller) OptionsRecordList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the record"
// @Router			/expenses/{id} [options]
func (co Controller) OptionsRecordDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err, i18n.MsgGetFailed)
		return
	}

	_, err = co.Gateway.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, i18n.MsgGetFailed)
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Get records
// @Description	Returns all records in the order they were created
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		models.Record
// @Failure		500	{object}	httputil.HTTPError
// @Router			/expenses [get]
func (co Controller) GetRecords(c *gin.Context) {
	records, err := co.Gateway.List(c.Request.Context())
	if err != nil {
		fail(c, err, i18n.MsgListFailed)
		return
	}

	c.JSON(http.StatusOK, records)
}

// @Summary		Get record
// @Description	Returns a specific record
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Record
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the record"
// @Router			/expenses/{id} [get]
func (co Controller) GetRecord(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err, i18n.MsgGetFailed)
		return
	}

	record, err := co.Gateway.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, i18n.MsgGetFailed)
		return
	}

	c.JSON(http.StatusOK, record)
}

// @Summary		Create record
// @Description	Creates a new record. The ID and date are set by the server.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	models.Record
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			record	body		models.RecordCreate	true	"Record"
// @Router			/expenses [post]
func (co Controller) CreateRecord(c *gin.Context) {
	var payload models.RecordCreate

	typeErr, err := bind(c, &payload)
	if err != nil {
		fail(c, err, i18n.MsgCreateFailed)
		return
	}

	fields, err := models.ValidateCreate(payload)
	if err = withTypeError(err, typeErr); err != nil {
		fail(c, err, i18n.MsgCreateFailed)
		return
	}

	record, err := co.Gateway.Create(c.Request.Context(), fields)
	if err != nil {
		fail(c, err, i18n.MsgCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// @Summary		Update record
// @Description	Updates the fields of a record that are set in the request body. Fields that are not set are kept.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	models.Record
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		int					true	"ID of the record"
// @Param			record	body		models.RecordUpdate	true	"Fields to update"
// @Router			/expenses/{id} [put]
// @Router			/expenses/{id} [patch]
func (co Controller) UpdateRecord(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err, i18n.MsgUpdateFailed)
		return
	}

	present, err := httputil.GetBodyFields(c)
	if err != nil {
		fail(c, err, i18n.MsgUpdateFailed)
		return
	}

	var payload models.RecordUpdate
	typeErr, err := bind(c, &payload)
	if err != nil {
		fail(c, err, i18n.MsgUpdateFailed)
		return
	}

	update, err := models.ValidatePartialUpdate(payload, present...)
	if err = withTypeError(err, typeErr); err != nil {
		fail(c, err, i18n.MsgUpdateFailed)
		return
	}

	record, err := co.Gateway.Update(c.Request.Context(), id, update)
	if err != nil {
		fail(c, err, i18n.MsgUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, record)
}

// @Summary		Delete record
// @Description	Deletes a record
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the record"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteRecord(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err, i18n.MsgDeleteFailed)
		return
	}

	deleted, err := co.Gateway.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err, i18n.MsgDeleteFailed)
		return
	}

	if !deleted {
		httputil.NewError(c, http.StatusNotFound, i18n.MsgRecordNotFound)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: i18n.Printer(c).Sprintf(i18n.MsgRecordDeleted),
	})
}
