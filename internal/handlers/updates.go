package handlers

import (
	"log/slog"
	"net/http"

	datastar "github.com/starfederation/datastar/sdk/go"
	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/sessions"
	"github.com/wigconnect/wigconnect/internal/settings"
	"github.com/wigconnect/wigconnect/web/helpers"
	"github.com/wigconnect/wigconnect/web/layouts"
	"github.com/wigconnect/wigconnect/web/pages"
	"github.com/wigconnect/wigconnect/web/templates"
)

// Updates streams the bound sections again every time a new settings
// snapshot is published, until the client goes away.
func Updates(logger *slog.Logger, store *settings.Store, forms *formstate.Registry, tmpls *templates.Tmpls) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fData := sessions.GetForm(r.Context())

		snaps, cancel := store.Subscribe()
		defer cancel()

		sse := datastar.NewSSE(w, r)

		for {
			select {
			case snap := <-snaps:
				v := presentation.Build(snap.Document)
				for _, node := range pages.Sections(v, tmpls).All() {
					frag, err := helpers.Render(node)
					if err != nil {
						panic(err)
					}
					sse.MergeFragments(frag)
				}

				// The panel follows the form's state, not the stream's.
				machine := forms.Get(fData.Id)
				props := contactProps(v, machine.State(), tmpls)
				if link, ok := machine.Link(); ok {
					props.Link = link.URL
					props.Value = link.Display
				}
				mergePanel(sse, props)

				sse.ExecuteScript(layouts.SyncScript(v))

				logger.LogAttrs(r.Context(), slog.LevelDebug, "settings pushed",
					slog.String("form", fData.Id),
					slog.String("source", snap.Source),
				)
			case <-r.Context().Done():
				return
			}
		}
	}
}
