package client_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/kakeibo-app/backend/internal/client"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/internal/stats"
)

func (suite *TestSuiteStandard) TestClientCRUD() {
	ctx := context.Background()

	records, err := suite.client.List(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(records, 0)

	created, err := suite.client.Create(ctx, lunch())
	suite.Require().Nil(err)
	suite.Assert().NotZero(created.ID)
	suite.Assert().Equal(int64(1000), created.Amount)

	got, err := suite.client.Get(ctx, created.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, got.ID)

	updated, err := suite.client.Update(ctx, created.ID, models.RecordUpdate{Category: ptr("外食")})
	suite.Require().Nil(err)
	suite.Assert().Equal("外食", updated.Category)
	suite.Assert().Equal("ランチ", updated.Description)

	suite.Require().Nil(suite.client.Delete(ctx, created.ID))

	_, err = suite.client.Get(ctx, created.ID)
	var apiError *client.APIError
	suite.Require().ErrorAs(err, &apiError)
	suite.Assert().Equal(http.StatusNotFound, apiError.Status)
}

func (suite *TestSuiteStandard) TestClientValidationError() {
	payload := lunch()
	payload.Amount = ptr(int64(0))
	payload.Description = ptr("")

	_, err := suite.client.Create(context.Background(), payload)

	var apiError *client.APIError
	suite.Require().ErrorAs(err, &apiError)
	suite.Assert().Equal(http.StatusBadRequest, apiError.Status)
	suite.Assert().Equal("入力データが無効です", client.Message(err), "Default language is Japanese")

	fields := []string{}
	for _, f := range apiError.Fields {
		fields = append(fields, f.Field)
	}
	suite.Assert().Equal([]string{"amount", "description"}, fields)
}

func (suite *TestSuiteStandard) TestClientLanguage() {
	suite.client.Language = "en"

	_, err := suite.client.Get(context.Background(), 9999)
	suite.Assert().Equal("the record could not be found", client.Message(err))
}

func (suite *TestSuiteStandard) TestClientDeleteAll() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := suite.client.Create(ctx, lunch())
		suite.Require().Nil(err)
	}

	suite.Require().Nil(suite.client.DeleteAll(ctx))

	records, err := suite.client.List(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(records, 0)
}

func (suite *TestSuiteStandard) TestClientSummaryAndExport() {
	ctx := context.Background()

	_, err := suite.client.Create(ctx, lunch())
	suite.Require().Nil(err)

	salary := models.RecordCreate{
		Amount:      ptr(int64(5000)),
		Description: ptr("給料"),
		Category:    ptr("給与"),
		Type:        ptr(models.TypeIncome),
	}
	_, err = suite.client.Create(ctx, salary)
	suite.Require().Nil(err)

	summary, err := suite.client.Summary(ctx, stats.Filter{}, "")
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1000), summary.Balance.Expense)
	suite.Assert().Equal(int64(5000), summary.Balance.Income)
	suite.Assert().Equal(int64(4000), summary.Balance.Net)
	suite.Assert().Nil(summary.Filtered)

	summary, err = suite.client.Summary(ctx, stats.Filter{Category: "給与"}, "Asia/Tokyo")
	suite.Require().Nil(err)
	suite.Require().NotNil(summary.Filtered)
	suite.Assert().Equal(1, summary.Filtered.Count)
	suite.Assert().Equal(int64(5000), summary.Filtered.Total)

	export, err := suite.client.Export(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(export.Data, 2)
}

func (suite *TestSuiteStandard) TestClientTransportError() {
	c := client.New("http://127.0.0.1:1/api")

	_, err := c.List(context.Background())
	suite.Assert().ErrorIs(err, client.ErrTransport)
	suite.Assert().Equal("サーバーに接続できませんでした", client.Message(err))
}

func (suite *TestSuiteStandard) TestMessage() {
	suite.Assert().Equal("boom", client.Message(errors.New("boom")))
	suite.Assert().Equal("bad", client.Message(&client.APIError{Status: 400, Message: "bad"}))
}
