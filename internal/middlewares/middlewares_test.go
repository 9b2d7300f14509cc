package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wigconnect/wigconnect/internal/sessions"
)

func serve(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var seen string
	h := FormSession(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fData := sessions.GetForm(r.Context())
		require.NotNil(t, fData)
		seen = fData.Id
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec, seen
}

func TestFormSessionIssuesCookie(t *testing.T) {
	rec, id := serve(t, nil)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, FormCookie, c.Name)
	assert.True(t, strings.HasPrefix(c.Value, "wc_"))
	assert.Equal(t, "wc_"+id, c.Value)
	assert.Len(t, id, formIdLen)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
}

func TestFormSessionKeepsValidCookie(t *testing.T) {
	id := strings.Repeat("a", formIdLen)
	rec, seen := serve(t, &http.Cookie{Name: FormCookie, Value: "wc_" + id})

	assert.Equal(t, id, seen)
	assert.Empty(t, rec.Result().Cookies())
}

func TestFormSessionReplacesMalformedCookie(t *testing.T) {
	for _, value := range []string{
		"abc",
		"wc_short",
		"wc_" + strings.Repeat("!", formIdLen),
		strings.Repeat("a", formIdLen+3),
	} {
		rec, seen := serve(t, &http.Cookie{Name: FormCookie, Value: value})
		assert.NotEqual(t, strings.TrimPrefix(value, "wc_"), seen, value)
		assert.Len(t, rec.Result().Cookies(), 1, value)
	}
}
