// Package translate formats user-facing messages for the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("imemasm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message printer for the first matching language.
// With no languages, en-US is used.
func Use(languages ...string) {
	if len(languages) == 0 {
		languages = []string{"en-US"}
	}

	p := message.NewPrinter(message.MatchLanguage(languages...))

	mutex.Lock()
	printer = p
	mutex.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	p := printer
	mutex.RUnlock()

	return p.Sprintf(key, args...)
}

// Message is an error whose en-US text is translated each time it is
// formatted, so the language selected by Use applies to package level
// error values.
type Message string

func (msg Message) Error() string {
	return From(string(msg))
}
