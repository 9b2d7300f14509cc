package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wigconnect/wigconnect/internal/assets"
	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/metrics"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/sessions"
	"github.com/wigconnect/wigconnect/internal/settings"
	"github.com/wigconnect/wigconnect/web/pages"
	"github.com/wigconnect/wigconnect/web/templates"
)

// Index renders the landing page from the current settings snapshot. A
// fresh page load always starts with an idle form.
func Index(store *settings.Store, forms *formstate.Registry, m *metrics.Metrics, a *assets.Assets, tmpls *templates.Tmpls) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fData := sessions.GetForm(r.Context())
		forms.Get(fData.Id).Reset()
		m.FormSessions.Set(float64(forms.Len()))

		v := presentation.Build(store.Get().Document)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := pages.Landing(pages.LandingProps{
			View:    v,
			Contact: contactProps(v, formstate.Idle, tmpls),
			Assets:  a,
			Tmpls:   tmpls,
		}).Render(w)
		if err != nil {
			panic(err)
		}
	})
}

// SettingsDocument serves the document of the current snapshot as JSON.
func SettingsDocument(store *settings.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := store.Get()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Settings-Source", snap.Source)
		if snap.Fallback {
			w.Header().Set("X-Settings-Fallback", "true")
		}
		if err := json.NewEncoder(w).Encode(snap.Document); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
