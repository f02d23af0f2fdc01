package client_test

import (
	"context"

	"github.com/kakeibo-app/backend/internal/client"
	"github.com/kakeibo-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestFormSubmit() {
	ctx := context.Background()
	session := client.NewSession(suite.client)
	form := client.NewForm(session)

	suite.Assert().Equal(client.Draft{Type: models.TypeExpense}, form.Draft())

	form.SetAmount(1200)
	form.SetDescription("ランチ")
	form.SetCategory("食費")

	record, err := form.Submit(ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1200), record.Amount)
	suite.Assert().Equal(client.Draft{Type: models.TypeExpense}, form.Draft(), "Form is reset after submit")

	records, err := session.Records(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(records, 1)
}

func (suite *TestSuiteStandard) TestFormInvalidKeepsDraft() {
	form := client.NewForm(client.NewSession(suite.client))
	form.SetDescription("ランチ")
	form.SetType(models.TypeIncome)

	_, err := form.Submit(context.Background())

	var validationError *models.ValidationError
	suite.Require().ErrorAs(err, &validationError)
	suite.Assert().True(validationError.Has("amount"))
	suite.Assert().True(validationError.Has("category"))
	suite.Assert().Equal("入力データが無効です", client.Message(err))

	suite.Assert().Equal(client.Draft{Description: "ランチ", Type: models.TypeIncome}, form.Draft())
}

func (suite *TestSuiteStandard) TestFormServerErrorKeepsDraft() {
	c := client.New("http://127.0.0.1:1/api")
	form := client.NewForm(client.NewSession(c))

	form.SetAmount(500)
	form.SetDescription("バス")
	form.SetCategory("交通費")

	_, err := form.Submit(context.Background())
	suite.Assert().ErrorIs(err, client.ErrTransport)
	suite.Assert().Equal(int64(500), form.Draft().Amount)
}

func (suite *TestSuiteStandard) TestFormTypeAndCategories() {
	form := client.NewForm(client.NewSession(suite.client))

	suite.Assert().Equal(models.CategoriesFor(models.TypeExpense), form.Categories())

	form.SetCategory("食費")
	form.SetType(models.TypeIncome)
	suite.Assert().Equal("食費", form.Draft().Category, "Category is kept when the type changes")
	suite.Assert().Equal(models.CategoriesFor(models.TypeIncome), form.Categories())

	form.Reset()
	suite.Assert().Equal(client.Draft{Type: models.TypeExpense}, form.Draft())
}
