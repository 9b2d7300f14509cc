// Package contact turns a visitor's phone number into a WhatsApp deep link
// addressed to the business owner.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wigconnect/wigconnect/internal/settings"
)

const (
	// BaseURL is the click-to-chat endpoint. The destination must be digits
	// only.
	BaseURL = "https://wa.me"

	// MinDigits is the submission threshold. It is independent of the
	// configurable phoneFormat.minLength, which only affects the widget.
	MinDigits = 10

	numberLabel = "My WhatsApp number: "
)

type Reason int

const (
	TooShort Reason = iota + 1
)

func (r Reason) String() string {
	switch r {
	case TooShort:
		return "too short"
	}
	return "unknown"
}

// ValidationError is returned by Build when the visitor's number is
// rejected.
type ValidationError struct {
	Reason Reason
	Digits int
}

var ErrTooShort = &ValidationError{Reason: TooShort}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact: phone number %s: %d digits, need at least %d", e.Reason, e.Digits, MinDigits)
}

// Is matches any ValidationError with the same reason.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Reason == e.Reason
}

// Message is what the visitor sees inline when validation fails.
func (e *ValidationError) Message() string {
	return fmt.Sprintf("Please enter a valid %d-digit phone number", MinDigits)
}

// Link is one generated deep link together with the values that went
// into it.
type Link struct {
	URL         string
	Message     string
	Destination string
	// Canonical is the visitor's number with the country code prepended.
	Canonical string
	// Display is the visitor's input as typed, trimmed.
	Display string
}

// Build validates raw and constructs the deep link from the settings in doc.
func Build(raw string, doc settings.Document) (Link, error) {
	digits := Digits(raw)
	if len(digits) < MinDigits {
		return Link{}, &ValidationError{Reason: TooShort, Digits: len(digits)}
	}

	canonical := doc.CountryCode() + strings.TrimPrefix(digits, "0")
	display := strings.TrimSpace(raw)
	message := doc.WhatsAppMessage() + "\n\n" + numberLabel + display + " (" + canonical + ")"

	dest := Digits(doc.OwnerPhone())
	if dest == "" {
		dest = settings.DefaultOwnerPhone
	}

	return Link{
		URL:         BaseURL + "/" + dest + "?text=" + EncodeComponent(message),
		Message:     message,
		Destination: dest,
		Canonical:   canonical,
		Display:     display,
	}, nil
}

// Digits drops every character that is not an ASCII digit.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// componentUnescapes restores the characters that browsers leave as they
// are in a URI component.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a query value, producing the
// same output as encodeURIComponent.
func EncodeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
