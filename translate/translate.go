// Package translate renders user-visible rvlearn messages in the host locale.
package translate

import (
	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/rvlearn/token github.com/ezrec/rvlearn/interp github.com/ezrec/rvlearn/source

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warnf("rvlearn: locale: %v", err)
	}

	if len(locales) == 0 {
		printer = message.NewPrinter(language.AmericanEnglish)
		return
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
