package i18n

// Message keys. The key is the English text, translations live in catalog.
const (
	MsgInvalidID        = "invalid ID"
	MsgRecordNotFound   = "the record could not be found"
	MsgInvalidInput     = "the submitted data is invalid"
	MsgInvalidBody      = "the body of your request contains invalid or un-parseable data. Please check and try again"
	MsgRequestBodyEmpty = "the request body must not be empty"
	MsgRecordDeleted    = "the record has been deleted"
	MsgAllDeleted       = "all records have been deleted"
	MsgMethodNotAllowed = "this HTTP method is not allowed for the endpoint you called"

	MsgListFailed   = "failed to load records"
	MsgGetFailed    = "failed to load the record"
	MsgCreateFailed = "failed to create the record"
	MsgUpdateFailed = "failed to update the record"
	MsgDeleteFailed = "failed to delete the record"
	MsgExportFailed = "failed to export records"
	MsgImportFailed = "failed to import records"

	MsgCleanupConfirmation = "the confirmation for deleting all records was incorrect"
	MsgNoFile              = "you must send a file to this endpoint"
	MsgWrongFileType       = "only exported JSON files can be imported"
	MsgInvalidTimeWindow   = "the time window must be one of all, today or week"
	MsgInvalidTimeZone     = "the time zone is not known"

	MsgAmountMin          = "the amount must be at least 1 yen"
	MsgAmountInvalid      = "the amount must be a whole number"
	MsgDescriptionMissing = "please enter a description"
	MsgCategoryMissing    = "please select a category"
	MsgTypeMissing        = "please select a type"
	MsgTypeInvalid        = "the type must be either expense or income"
	MsgFieldNull          = "this field must not be null"
	MsgFieldInvalid       = "this field has an invalid value"

	MsgTransportFailed     = "the server could not be reached"
	MsgDatabaseUnavailable = "the database is not available"
)

var catalog = map[string]string{
	MsgInvalidID:        "無効なIDです",
	MsgRecordNotFound:   "支出が見つかりません",
	MsgInvalidInput:     "入力データが無効です",
	MsgInvalidBody:      "リクエストの内容を解析できませんでした",
	MsgRequestBodyEmpty: "リクエストの本文が空です",
	MsgRecordDeleted:    "支出を削除しました",
	MsgAllDeleted:       "すべてのデータを削除しました",
	MsgMethodNotAllowed: "このエンドポイントではこのHTTPメソッドは使用できません",

	MsgListFailed:   "支出データの取得に失敗しました",
	MsgGetFailed:    "支出の取得に失敗しました",
	MsgCreateFailed: "支出の作成に失敗しました",
	MsgUpdateFailed: "支出の更新に失敗しました",
	MsgDeleteFailed: "支出の削除に失敗しました",
	MsgExportFailed: "データのエクスポートに失敗しました",
	MsgImportFailed: "データのインポートに失敗しました",

	MsgCleanupConfirmation: "削除の確認が正しくありません",
	MsgNoFile:              "ファイルを送信してください",
	MsgWrongFileType:       "エクスポートしたJSONファイルのみインポートできます",
	MsgInvalidTimeWindow:   "期間は all、today、week のいずれかを指定してください",
	MsgInvalidTimeZone:     "タイムゾーンが不明です",

	MsgAmountMin:          "金額は1円以上である必要があります",
	MsgAmountInvalid:      "金額は整数で入力してください",
	MsgDescriptionMissing: "説明を入力してください",
	MsgCategoryMissing:    "カテゴリを選択してください",
	MsgTypeMissing:        "タイプを選択してください",
	MsgTypeInvalid:        "タイプは支出または収入である必要があります",
	MsgFieldNull:          "この項目は null にできません",
	MsgFieldInvalid:       "この項目の値が無効です",

	MsgTransportFailed:     "サーバーに接続できませんでした",
	MsgDatabaseUnavailable: "データベースに接続できません",
}
