package models

// Category is one of the labels offered for a record type.
type Category struct {
	Name  string `json:"name" example:"食費"`
	Emoji string `json:"emoji" example:"🍽️"`
}

// Label is the text offered to the user, e.g. "🍽️ 食費".
func (c Category) Label() string {
	if c.Emoji == "" {
		return c.Name
	}
	return c.Emoji + " " + c.Name
}

// LabelFor returns the label for a category name, which does not need
// to be one of the offered categories.
func LabelFor(name string) string {
	return Category{Name: name, Emoji: Emoji(name)}.Label()
}

var expenseCategories = []Category{
	{"食費", "🍽️"},
	{"交通費", "🚊"},
	{"娯楽", "🎮"},
	{"光熱費", "💡"},
	{"通信費", "📱"},
	{"医療費", "🏥"},
	{"衣類", "👕"},
	{"その他", "📦"},
}

var incomeCategories = []Category{
	{"給与", "💰"},
	{"副業", "💼"},
	{"投資", "📈"},
	{"ボーナス", "🎁"},
	{"年金", "🏛️"},
	{"収入その他", "💵"},
}

// CategoriesFor returns the labels offered for a record type.
//
// The labels are suggestions only, records are not validated against them.
func CategoriesFor(t RecordType) []Category {
	var source []Category
	switch t {
	case TypeIncome:
		source = incomeCategories
	case TypeExpense:
		source = expenseCategories
	default:
		return []Category{}
	}

	categories := make([]Category, len(source))
	copy(categories, source)
	return categories
}

// Emoji returns the emoji for a category label. It is empty for labels
// that are not offered for any type.
func Emoji(name string) string {
	for _, c := range expenseCategories {
		if c.Name == name {
			return c.Emoji
		}
	}

	for _, c := range incomeCategories {
		if c.Name == name {
			return c.Emoji
		}
	}

	return ""
}
