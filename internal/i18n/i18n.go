// Package i18n holds the user facing messages of the API in all supported
// languages and negotiates the language for a request.
package i18n

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists all languages with a catalog. The first one is the
// default fallback.
var Supported = []language.Tag{
	language.Japanese,
	language.English,
}

var ErrUnsupportedLanguage = errors.New("language not supported")

var matcher = language.NewMatcher(Supported)

// fallback is used when the client accepts no supported language
var fallback = Supported[0]

func init() {
	for key, ja := range catalog {
		_ = message.SetString(language.Japanese, key, ja)
		_ = message.SetString(language.English, key, key)
	}
}

// Match returns the supported language closest to the Accept-Language header
// value. An empty or unparseable header selects the fallback language.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}

	return Supported[index]
}

// SetFallback sets the language for requests that do not accept any
// supported language.
func SetFallback(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", lang, err)
	}

	// The matcher also offers languages that are merely understood by
	// speakers of the requested one, only the same base language counts
	_, index, _ := matcher.Match(tag)
	want, _ := tag.Base()
	got, _ := Supported[index].Base()
	if want != got {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	fallback = Supported[index]
	return nil
}

// Printer returns a printer for the language negotiated for the request.
func Printer(c *gin.Context) *message.Printer {
	return message.NewPrinter(Match(c.GetHeader("Accept-Language")))
}

// Yen formats an amount in yen with digit grouping, e.g. ¥12,345.
func Yen(p *message.Printer, amount int64) string {
	if amount < 0 {
		return p.Sprintf("-¥%d", -amount)
	}
	return p.Sprintf("¥%d", amount)
}

// SignedYen formats an amount with an explicit sign, e.g. +¥5,000 for income.
func SignedYen(p *message.Printer, amount int64) string {
	if amount < 0 {
		return Yen(p, amount)
	}
	return "+" + Yen(p, amount)
}
