package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wigconnect/wigconnect/internal/settings"
)

func TestBuildRejectsShortNumbers(t *testing.T) {
	inputs := []string{"", "abc", "123", "801 234 567", "(080) 123-45", "+2 3 4"}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			link, err := Build(in, settings.Defaults())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTooShort))
			assert.Empty(t, link.URL)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, TooShort, verr.Reason)
			assert.Equal(t, len(Digits(in)), verr.Digits)
			assert.Equal(t, "Please enter a valid 10-digit phone number", verr.Message())
		})
	}
}

func TestBuildScenario(t *testing.T) {
	doc := settings.Document{Contact: &settings.Contact{CountryCode: "234"}}

	link, err := Build("0801 234 5678", doc)
	require.NoError(t, err)

	assert.Equal(t, "2348012345678", link.Canonical)
	assert.Equal(t, "0801 234 5678", link.Display)
	assert.True(t, strings.HasSuffix(link.Message, "My WhatsApp number: 0801 234 5678 (2348012345678)"), link.Message)
	assert.True(t, strings.HasPrefix(link.Message, settings.DefaultWhatsAppMessage+"\n\n"))
	assert.Equal(t, settings.DefaultOwnerPhone, link.Destination)
}

func TestBuildCanonicalNumber(t *testing.T) {
	cases := []struct {
		in, code, want string
	}{
		{"8012345678", "234", "2348012345678"},
		{"0801234567", "234", "234801234567"},
		{"00801234567", "44", "440801234567"},
		{"801-234-5678", "1", "18012345678"},
	}
	for _, c := range cases {
		doc := settings.Document{Contact: &settings.Contact{CountryCode: c.code}}
		link, err := Build(c.in, doc)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, link.Canonical, c.in)
		assert.Contains(t, link.Message, "("+c.want+")")
	}
}

func TestBuildDestination(t *testing.T) {
	doc := settings.Document{Contact: &settings.Contact{OwnerPhone: "+234 905 793 0710"}}
	link, err := Build("8012345678", doc)
	require.NoError(t, err)
	assert.Equal(t, "2349057930710", link.Destination)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/2349057930710?text="), link.URL)

	doc.Contact.OwnerPhone = "call us"
	link, err = Build("8012345678", doc)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultOwnerPhone, link.Destination)
}

func TestBuildRoundTrip(t *testing.T) {
	doc := settings.Document{Contact: &settings.Contact{
		WhatsAppMessage: "Hi & welcome! 100% human-made wigs? Price=₦50,000 + delivery #1",
	}}
	link, err := Build(" 0801 234 5678 ", doc)
	require.NoError(t, err)

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/2349057930710", u.Path)
	assert.Equal(t, link.Message, u.Query().Get("text"))
	assert.NotContains(t, u.RawQuery, "+")
	assert.Contains(t, u.RawQuery, "%20")
}

func TestEncodeComponent(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{"Hello! I'm (really) *here*", "Hello!%20I'm%20(really)%20*here*"},
		{"& 100% ₦ ~-_.", "%26%20100%25%20%E2%82%A6%20~-_."},
		{"a+b=c/d?e#f", "a%2Bb%3Dc%2Fd%3Fe%23f"},
		{"line\n\nnext", "line%0A%0Anext"},
		{"%21 stays escaped as %2521", "%2521%20stays%20escaped%20as%20%252521"},
	} {
		assert.Equal(t, tt.want, EncodeComponent(tt.in), tt.in)
	}

	link, err := Build("8012345678", settings.Defaults())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/2349057930710?text=Hello!%20I'm%20interested"), link.URL)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "2349057930710", Digits("+234 (905) 793-0710"))
	assert.Equal(t, "", Digits("no digits"))
	assert.Equal(t, "12", Digits("١٢ 1 x 2"))
}

func TestFormatDisplay(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"8":              "8",
		"801":            "801",
		"8012":           "801 2",
		"801234":         "801 234",
		"8012345":        "801 234 5",
		"8012345678":     "801 234 5678",
		"80123456789999": "801 234 5678",
		"801-234-5678":   "801 234 5678",
		"0801":           "0801",
		"08012":          "0801 2",
		"08012345678":    "0801 234 5678",
		"080123456789":   "0801 234 5678",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDisplay(in, 10), in)
	}

	assert.Equal(t, "801 234 56", FormatDisplay("8012345678", 8))
	assert.Equal(t, 13, InputMaxLength(10))
	assert.Equal(t, 13, InputMaxLength(0))
}
