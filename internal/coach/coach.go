package coach

import "errors"

// Completer is the slice of the AI client the coach flows use.
type Completer interface {
	Complete(system, user string) (string, error)
	CompleteWithImage(system, user, imageData string) (string, error)
}

// Service exposes the four coach flows. Each flow is a stateless typed
// request → typed response call: form values go into the prompt, the reply
// text comes back untransformed. No retry; failures surface to the caller.
type Service struct {
	ai Completer
}

func NewService(ai Completer) *Service {
	return &Service{ai: ai}
}

// ErrMissingFields reports an incomplete intake form.
var ErrMissingFields = errors.New("required fields are missing")
