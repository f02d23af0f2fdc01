package controllers

import (
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/kakeibo-app/backend/internal/stats"
)

// SummaryQuery are the query parameters for the summary.
type SummaryQuery struct {
	stats.Filter
	TimeZone string `form:"tz"` // IANA time zone that defines "today" and the current month
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSummary)
	r.GET("", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the balance and statistics for the current month. If any filter is set, the number and sum of the matching records are included.
// @Tags			Summary
// @Produce		json
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			q			query		string	false	"Search for this text in the description"
// @Param			category	query		string	false	"Filter by category. 'all' matches all categories"
// @Param			window		query		string	false	"Time window: all, today or week"
// @Param			tz			query		string	false	"IANA time zone, e.g. Asia/Tokyo. Defaults to the server's time zone"
// @Router			/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query SummaryQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&query)

	window, err := stats.ParseTimeWindow(string(query.Window))
	if err != nil {
		fail(c, errInvalidTimeWindow, i18n.MsgListFailed)
		return
	}
	query.Window = window

	now := co.now()
	if query.TimeZone != "" {
		location, err := time.LoadLocation(query.TimeZone)
		if err != nil {
			fail(c, errInvalidTimeZone, i18n.MsgListFailed)
			return
		}
		now = now.In(location)
	}

	records, err := co.Gateway.List(c.Request.Context())
	if err != nil {
		fail(c, err, i18n.MsgListFailed)
		return
	}

	summary := SummaryObject{
		Balance: stats.Balance(records, now),
		Monthly: stats.Monthly(records, now),
	}

	if !query.Filter.IsZero() {
		filtered := stats.Apply(records, query.Filter, now)
		summary.Filtered = &FilteredTotal{
			Count: len(filtered),
			Total: stats.Total(filtered),
		}
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: summary})
}
