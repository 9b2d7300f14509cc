package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dchest/uniuri"
	datastar "github.com/starfederation/datastar/sdk/go"
	"github.com/wigconnect/wigconnect/internal/contact"
	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/metrics"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/sessions"
	"github.com/wigconnect/wigconnect/internal/settings"
	"github.com/wigconnect/wigconnect/web/components"
	"github.com/wigconnect/wigconnect/web/helpers"
	"github.com/wigconnect/wigconnect/web/templates"
)

// ErrorDismissAfter is how long the inline validation message stays up.
var ErrorDismissAfter = 5 * time.Second

const errorIDLen = 8

type phoneSignals struct {
	Phone string `json:"phone"`
}

func contactProps(v *presentation.View, state formstate.State, tmpls *templates.Tmpls) components.ContactProps {
	return components.ContactProps{
		State:   state,
		Input:   v.PhoneInput,
		Palette: v.Theme.Palette,
		Tmpls:   tmpls,
	}
}

func mergePanel(sse *datastar.ServerSentEventGenerator, p components.ContactProps) {
	frag, err := helpers.Render(components.ContactPanel(p))
	if err != nil {
		panic(err)
	}
	sse.MergeFragments(frag)
}

// ContactSubmit validates the phone number and walks the visitor's form
// through pending to result, streaming each state as it is entered.
func ContactSubmit(logger *slog.Logger, store *settings.Store, forms *formstate.Registry, m *metrics.Metrics, tmpls *templates.Tmpls) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body phoneSignals
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		fData := sessions.GetForm(r.Context())
		machine := forms.Get(fData.Id)
		snap := store.Get()
		v := presentation.Build(snap.Document)
		props := contactProps(v, formstate.Idle, tmpls)
		props.Value = body.Phone

		out, err := machine.Submit(body.Phone, snap)

		var vErr *contact.ValidationError
		switch {
		case errors.As(err, &vErr):
			m.ValidationFailures.Inc()
			props.Error = vErr.Message()
			props.ErrorID = "phone-error-" + uniuri.NewLen(errorIDLen)
			props.Invalid = true

			sse := datastar.NewSSE(w, r)
			mergePanel(sse, props)

			t := time.NewTimer(ErrorDismissAfter)
			defer t.Stop()
			select {
			case <-t.C:
				sse.RemoveFragments("#" + props.ErrorID)
			case <-r.Context().Done():
			}
			return
		case errors.Is(err, formstate.ErrBusy):
			// Double submit, show whatever the form is doing now.
			props.State = machine.State()
			if link, ok := machine.Link(); ok {
				props.Link = link.URL
			}
			sse := datastar.NewSSE(w, r)
			mergePanel(sse, props)
			return
		case err != nil:
			logger.LogAttrs(r.Context(), slog.LevelError, "contact submit failed",
				slog.String("error", err.Error()),
			)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		sse := datastar.NewSSE(w, r)
		props.State = formstate.Pending
		mergePanel(sse, props)

		select {
		case link, ok := <-out:
			if !ok {
				// Reset while pending, the reset response owns the panel.
				return
			}
			m.LinksGenerated.Inc()
			logger.LogAttrs(r.Context(), slog.LevelInfo, "whatsapp link generated",
				slog.String("form", fData.Id),
				slog.Int("messageLength", len(link.Message)),
			)
			props.State = formstate.Result
			props.Value = link.Display
			props.Link = link.URL
			mergePanel(sse, props)
		case <-r.Context().Done():
		}
	}
}

// ContactReset cancels any pending reveal and shows an empty idle form.
func ContactReset(store *settings.Store, forms *formstate.Registry, m *metrics.Metrics, tmpls *templates.Tmpls) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fData := sessions.GetForm(r.Context())
		forms.Get(fData.Id).Reset()
		m.Resets.Inc()

		v := presentation.Build(store.Get().Document)

		sse := datastar.NewSSE(w, r)
		mergePanel(sse, contactProps(v, formstate.Idle, tmpls))
		sse.MergeSignals([]byte(`{"phone":""}`))
	}
}

// ContactFormat groups the digits typed so far for display.
func ContactFormat(store *settings.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body phoneSignals
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		formatted := contact.FormatDisplay(body.Phone, store.Get().Document.PhoneDigits())
		sse := datastar.NewSSE(w, r)
		if formatted == body.Phone {
			return
		}
		signals, err := json.Marshal(phoneSignals{Phone: formatted})
		if err != nil {
			panic(err)
		}
		sse.MergeSignals(signals)
	}
}
