package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/kakeibo-app/backend/internal/controllers"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExport() {
	now := fixedController().Now()
	suite.importTestRecords(
		models.Record{Amount: 1200, Description: "ランチ", Category: "食費", Type: models.TypeExpense, Date: now.Add(-time.Hour)},
		models.Record{Amount: 250000, Description: "給料", Category: "給与", Type: models.TypeIncome, Date: now.AddDate(0, 0, -10)},
	)

	r := test.RequestWith(suite.T(), fixedController(), http.MethodGet, "http://example.com/api/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(`attachment; filename="expenses_2026-10-15.json"`, r.Header().Get("Content-Disposition"))

	var export controllers.ExportFile
	test.DecodeResponse(suite.T(), &r, &export)

	suite.Assert().Equal("0.0.0", export.Version)
	suite.Assert().Equal("2026-10-15T05:00:00Z", export.CreationTime)
	suite.Require().Len(export.Data, 2)
	suite.Assert().Equal("ランチ", export.Data[0].Description)
	suite.Assert().True(now.AddDate(0, 0, -10).Equal(export.Data[1].Date))
}

// TestExportImport verifies that an export can be restored and that
// importing it twice does not duplicate records.
func (suite *TestSuiteStandard) TestExportImport() {
	suite.createTestRecord(map[string]any{"amount": 1200, "description": "ランチ"})
	suite.createTestRecord(map[string]any{"amount": 5000, "description": "お小遣い", "category": "副業", "type": "income"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	export := bytes.Clone(r.Body.Bytes())

	var exported controllers.ExportFile
	test.DecodeResponse(suite.T(), &r, &exported)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/api?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, want := range []controllers.ImportResult{{Created: 2, Skipped: 0}, {Created: 0, Skipped: 2}} {
		body, headers := test.Upload(suite.T(), "expenses_2026-10-15.json", export)
		r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/import", body, headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response controllers.ImportResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Equal(want, response.Data)
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	var records []models.Record
	test.DecodeResponse(suite.T(), &r, &records)

	suite.Require().Len(records, 2)
	suite.Assert().Equal("ランチ", records[0].Description)
	suite.Assert().Equal(models.TypeIncome, records[1].Type)
	suite.Assert().True(exported.Data[0].Date.Equal(records[0].Date), "Date has not been restored")
}

func (suite *TestSuiteStandard) TestImportRecordList() {
	body, headers := test.Upload(suite.T(), "backup.json", []byte(`[
		{"amount": 980, "description": "本", "category": "教育", "type": "expense", "date": "2026-09-01T03:00:00Z"},
		{"amount": 3000, "description": "プレゼント", "category": "プレゼント", "type": "income"}
	]`))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(2, response.Data.Created)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	var records []models.Record
	test.DecodeResponse(suite.T(), &r, &records)

	suite.Require().Len(records, 2)
	suite.Assert().True(time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC).Equal(records[0].Date), "Date %s has not been kept", records[0].Date)
	suite.Assert().False(records[1].Date.IsZero())
}

func (suite *TestSuiteStandard) TestImportInvalidRecords() {
	body, headers := test.Upload(suite.T(), "backup.json", []byte(`{"data": [
		{"amount": 980, "description": "本", "category": "教育", "type": "expense"},
		{"amount": 0, "description": "", "category": "教育", "type": "expense"}
	]}`))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	e := test.DecodeError(suite.T(), &r)
	suite.Assert().Equal("入力データが無効です", e.Error)
	suite.Assert().Equal([]httputil.FieldError{
		{Field: "data[1].amount", Message: "金額は1円以上である必要があります"},
		{Field: "data[1].description", Message: "説明を入力してください"},
	}, e.Errors)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	suite.Assert().JSONEq(`[]`, r.Body.String(), "Records of an invalid import have been stored")
}

// TestImportTypeErrors verifies that values of the wrong JSON type are
// reported as field errors of their record.
func (suite *TestSuiteStandard) TestImportTypeErrors() {
	body, headers := test.Upload(suite.T(), "backup.json", []byte(`{"data": [
		{"amount": 980, "description": "本", "category": "教育", "type": "expense"},
		{"amount": 1.5, "description": "", "category": "食費", "type": "expense"},
		{"amount": "100", "description": "a", "category": 7, "type": "expense"}
	]}`))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	e := test.DecodeError(suite.T(), &r)
	suite.Assert().Equal("入力データが無効です", e.Error)
	suite.Assert().Equal([]httputil.FieldError{
		{Field: "data[1].amount", Message: "金額は整数で入力してください"},
		{Field: "data[1].description", Message: "説明を入力してください"},
		{Field: "data[2].amount", Message: "金額は整数で入力してください"},
		{Field: "data[2].category", Message: "カテゴリを選択してください"},
	}, e.Errors)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	suite.Assert().JSONEq(`[]`, r.Body.String(), "Records of an invalid import have been stored")
}

func (suite *TestSuiteStandard) TestImportFails() {
	tests := []struct {
		name    string
		file    string
		content string
		error   string
	}{
		{"Wrong file name", "expenses.csv", `[]`, "エクスポートしたJSONファイルのみインポートできます"},
		{"Not JSON", "expenses.json", `amount;description`, "エクスポートしたJSONファイルのみインポートできます"},
		{"No data", "expenses.json", `{"version": "1.0.0"}`, "エクスポートしたJSONファイルのみインポートできます"},
		{"Record is not an object", "expenses.json", `[42]`, "エクスポートしたJSONファイルのみインポートできます"},
		{"Invalid date", "expenses.json", `[{"amount": 1, "description": "a", "category": "食費", "type": "expense", "date": "yesterday"}]`, "エクスポートしたJSONファイルのみインポートできます"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.Upload(t, tt.file, []byte(tt.content))
			r := test.Request(t, http.MethodPost, "http://example.com/api/import", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.error, test.DecodeError(t, &r).Error)
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("ファイルを送信してください", test.DecodeError(suite.T(), &r).Error)
}

func (suite *TestSuiteStandard) TestImportExportDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal("データのエクスポートに失敗しました", test.DecodeError(suite.T(), &r).Error)

	body, headers := test.Upload(suite.T(), "backup.json", []byte(`[{"amount": 980, "description": "本", "category": "教育", "type": "expense"}]`))
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal("データのインポートに失敗しました", test.DecodeError(suite.T(), &r).Error)
}

func (suite *TestSuiteStandard) TestImportExportOptions() {
	for path, allow := range map[string]string{
		"export":  "OPTIONS, GET",
		"import":  "OPTIONS, POST",
		"summary": "OPTIONS, GET",
	} {
		r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/api/%s", path), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal(allow, r.Header().Get("allow"))
	}
}
