package models_test

import (
	"context"
	"time"

	"github.com/kakeibo-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestGatewayCreateGet() {
	before := time.Now()

	created := suite.createTestRecord(models.RecordFields{
		Amount:      1000,
		Description: "ランチ",
		Category:    "食費",
		Type:        models.TypeExpense,
	})

	suite.Assert().NotZero(created.ID)
	suite.Assert().False(created.Date.Before(before), "Date %s is before the call time %s", created.Date, before)

	record, err := suite.gateway.Get(context.Background(), created.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal(created.ID, record.ID)
	suite.Assert().Equal(created.Amount, record.Amount)
	suite.Assert().Equal(created.Description, record.Description)
	suite.Assert().Equal(created.Category, record.Category)
	suite.Assert().Equal(created.Type, record.Type)
	suite.Assert().Equal(created.Date, record.Date)
	suite.Assert().Equal(time.UTC, record.Date.Location())
	suite.Assert().Zero(created.Date.Nanosecond()%int(models.DatePrecision), "Date must be truncated to the storage precision")
}

func (suite *TestSuiteStandard) TestGatewayCreateUniqueIDs() {
	a := suite.createTestRecord(models.RecordFields{Amount: 1, Description: "a", Category: "食費"})
	b := suite.createTestRecord(models.RecordFields{Amount: 1, Description: "a", Category: "食費"})

	suite.Assert().NotEqual(a.ID, b.ID)
}

func (suite *TestSuiteStandard) TestGatewayGetNotFound() {
	_, err := suite.gateway.Get(context.Background(), 4711)

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().True(models.IsNotFound(err))
	suite.Assert().Equal("there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGatewayListOrder() {
	records, err := suite.gateway.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().NotNil(records)
	suite.Assert().Len(records, 0)

	for _, d := range []string{"first", "second", "third"} {
		suite.createTestRecord(models.RecordFields{Amount: 100, Description: d, Category: "娯楽"})
	}

	records, err = suite.gateway.List(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(records, 3)
	suite.Assert().Equal("first", records[0].Description)
	suite.Assert().Equal("third", records[2].Description)
}

// TestGatewayUpdateCategoryOnly verifies that an update only changes
// the fields it contains.
func (suite *TestSuiteStandard) TestGatewayUpdateCategoryOnly() {
	original := suite.createTestRecord(models.RecordFields{
		Amount:      1000,
		Description: "ランチ",
		Category:    "食費",
		Type:        models.TypeExpense,
	})

	category := "新カテゴリ"
	updated, err := suite.gateway.Update(context.Background(), original.ID, models.RecordUpdate{Category: &category})
	suite.Require().Nil(err)

	suite.Assert().Equal("新カテゴリ", updated.Category)

	stored, err := suite.gateway.Get(context.Background(), original.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("新カテゴリ", stored.Category)
	suite.Assert().Equal(original.Amount, stored.Amount)
	suite.Assert().Equal(original.Description, stored.Description)
	suite.Assert().Equal(original.Type, stored.Type)
	suite.Assert().True(original.Date.Equal(stored.Date))
}

func (suite *TestSuiteStandard) TestGatewayUpdateEmpty() {
	original := suite.createTestRecord(models.RecordFields{Amount: 300, Description: "バス", Category: "交通費"})

	updated, err := suite.gateway.Update(context.Background(), original.ID, models.RecordUpdate{})
	suite.Require().Nil(err)
	suite.Assert().Equal(original.Amount, updated.Amount)
	suite.Assert().Equal(original.Description, updated.Description)
}

func (suite *TestSuiteStandard) TestGatewayUpdateNotFound() {
	amount := int64(5)
	_, err := suite.gateway.Update(context.Background(), 99, models.RecordUpdate{Amount: &amount})

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGatewayDelete() {
	record := suite.createTestRecord(models.RecordFields{Amount: 300, Description: "バス", Category: "交通費"})

	deleted, err := suite.gateway.Delete(context.Background(), record.ID)
	suite.Require().Nil(err)
	suite.Assert().True(deleted)

	_, err = suite.gateway.Get(context.Background(), record.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	deleted, err = suite.gateway.Delete(context.Background(), record.ID)
	suite.Require().Nil(err)
	suite.Assert().False(deleted)
}

func (suite *TestSuiteStandard) TestGatewayDeleteUnknown() {
	deleted, err := suite.gateway.Delete(context.Background(), 123456)

	suite.Assert().Nil(err)
	suite.Assert().False(deleted)
}

func (suite *TestSuiteStandard) TestGatewayImport() {
	date := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	existing := suite.createTestRecord(models.RecordFields{Amount: 700, Description: "本", Category: "その他"})

	records := []models.Record{
		{ID: 42, Amount: 1200, Description: "ランチ", Category: "食費", Type: models.TypeExpense, Date: date},
		{ID: 43, Amount: 1200, Description: "ランチ", Category: "食費", Type: models.TypeExpense, Date: date},
		existing,
		{Amount: 250000, Description: "給料", Category: "給与", Type: models.TypeIncome, Date: date.AddDate(0, 0, 10)},
	}

	created, skipped, err := suite.gateway.Import(context.Background(), records)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, created)
	suite.Assert().Equal(2, skipped)

	stored, err := suite.gateway.List(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(stored, 3)

	suite.Assert().NotEqual(uint64(42), stored[1].ID)
	suite.Assert().True(date.Equal(stored[1].Date), "Imported date must be kept")

	// Importing the same data again does not create anything
	created, skipped, err = suite.gateway.Import(context.Background(), records)
	suite.Require().Nil(err)
	suite.Assert().Equal(0, created)
	suite.Assert().Equal(4, skipped)
}

// TestGatewayImportStored verifies that records read back from the
// database are recognized as duplicates, even when the dates in the
// import carry more precision than is stored.
func (suite *TestSuiteStandard) TestGatewayImportStored() {
	suite.createTestRecord(models.RecordFields{Amount: 700, Description: "本", Category: "その他"})

	date := time.Date(2024, 3, 14, 9, 30, 0, 123456789, time.UTC)
	created, _, err := suite.gateway.Import(context.Background(), []models.Record{
		{Amount: 1200, Description: "ランチ", Category: "食費", Type: models.TypeExpense, Date: date},
	})
	suite.Require().Nil(err)
	suite.Require().Equal(1, created)

	stored, err := suite.gateway.List(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(stored, 2)
	suite.Assert().Equal(date.Truncate(models.DatePrecision), stored[1].Date)

	precise := stored[1]
	precise.Date = date

	created, skipped, err := suite.gateway.Import(context.Background(), append(stored, precise))
	suite.Require().Nil(err)
	suite.Assert().Equal(0, created)
	suite.Assert().Equal(3, skipped)
}

// TestGatewayImportUpdatedRecord verifies that the content hash follows updates.
func (suite *TestSuiteStandard) TestGatewayImportUpdatedRecord() {
	record := suite.createTestRecord(models.RecordFields{Amount: 700, Description: "本", Category: "その他"})

	amount := int64(800)
	updated, err := suite.gateway.Update(context.Background(), record.ID, models.RecordUpdate{Amount: &amount})
	suite.Require().Nil(err)

	created, skipped, err := suite.gateway.Import(context.Background(), []models.Record{updated, record})
	suite.Require().Nil(err)
	suite.Assert().Equal(1, created, "The record with the old amount must be imported")
	suite.Assert().Equal(1, skipped)
}

func (suite *TestSuiteStandard) TestGatewayDeleteAll() {
	suite.createTestRecord(models.RecordFields{Amount: 1, Description: "a", Category: "食費"})
	suite.createTestRecord(models.RecordFields{Amount: 2, Description: "b", Category: "給与", Type: models.TypeIncome})

	err := suite.gateway.DeleteAll(context.Background())
	suite.Require().Nil(err)

	records, err := suite.gateway.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Len(records, 0)
}

func (suite *TestSuiteStandard) TestGatewayDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.gateway.List(context.Background())
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.gateway.Get(context.Background(), 1)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.gateway.Create(context.Background(), models.RecordFields{Amount: 1, Description: "a", Category: "b", Type: models.TypeExpense})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.gateway.Delete(context.Background(), 1)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
