package sessions

import "context"

type contextKey int

const formContextKey contextKey = iota

// FormData identifies the visitor's contact form across requests.
type FormData struct {
	Id string // The form session id, also the cookie value
}

func WithForm(ctx context.Context, data *FormData) context.Context {
	return context.WithValue(ctx, formContextKey, data)
}

// GetForm will return the form session data in the Context.
// If the form data isn't found, nil is returned.
func GetForm(ctx context.Context) *FormData {
	val := ctx.Value(formContextKey)
	if val == nil {
		return nil
	}

	data, ok := val.(*FormData)
	if !ok {
		panic("sessions: form context value of wrong type")
	}
	return data
}
