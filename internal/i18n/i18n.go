// SPDX-License-Identifier: MPL-2.0

// Package i18n holds the user-facing message catalogs. Portuguese is the
// default locale; English is the only other one.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	// Portuguese is the default locale.
	Portuguese = language.Portuguese
	// English is the alternative locale.
	English = language.English

	supported = []language.Tag{Portuguese, English}
	matcher   = language.NewMatcher(supported)
	messages  = buildCatalog()
)

// Printer formats catalog messages for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// Match returns the supported locale closest to the requested BCP 47 tags
// or POSIX locale strings ("en_US.UTF-8"). Unknown input yields Portuguese.
func Match(requested ...string) language.Tag {
	var tags []language.Tag
	for _, r := range requested {
		if r = normalize(r); r == "" {
			continue
		}
		if t, err := language.Parse(r); err == nil {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return Portuguese
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Portuguese
	}
	return supported[idx]
}

// Detect picks the locale from explicit (if set), then LC_ALL, LC_MESSAGES
// and LANG.
func Detect(explicit string) language.Tag {
	if explicit != "" {
		return Match(explicit)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := normalize(os.Getenv(key)); v != "" && v != "C" && v != "POSIX" {
			return Match(v)
		}
	}
	return Portuguese
}

// NewPrinter returns a Printer for tag.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(messages))}
}

// Tag returns the printer's locale.
func (p *Printer) Tag() language.Tag { return p.tag }

// T formats the message for key.
func (p *Printer) T(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}

// normalize strips POSIX encoding and modifier suffixes.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Portuguese))
	for key, msg := range portuguese {
		_ = b.SetString(Portuguese, string(key), msg)
	}
	for key, msg := range english {
		_ = b.SetString(English, string(key), msg)
	}
	return b
}
