package middlewares

import (
	"net/http"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/wigconnect/wigconnect/internal/sessions"
)

const (
	FormCookie = "fid"
	formPrefix = "wc_"
	formIdLen  = 24
)

// FormSession makes sure every request carries a form session id, issuing
// a new cookie when the visitor has none or sends a malformed one.
func FormSession(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(FormCookie); err == nil {
				if fid, found := strings.CutPrefix(cookie.Value, formPrefix); found && validFormId(fid) {
					id = fid
				}
			}

			if id == "" {
				id = uniuri.NewLen(formIdLen)
				http.SetCookie(w, &http.Cookie{
					Name:     FormCookie,
					Value:    formPrefix + id,
					Path:     "/",
					MaxAge:   86400,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			r = r.WithContext(sessions.WithForm(r.Context(), &sessions.FormData{Id: id}))
			next.ServeHTTP(w, r)
		})
	}
}

func validFormId(id string) bool {
	if len(id) != formIdLen {
		return false
	}
	for _, c := range id {
		if !strings.ContainsRune(string(uniuri.StdChars), c) {
			return false
		}
	}
	return true
}
