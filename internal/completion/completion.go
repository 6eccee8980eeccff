package completion

import "context"

// Completer knows how to get a raw text completion for a prompt.
//
// Implementations that talk to a remote endpoint must not surface transport,
// authentication or response-shape failures as errors: they return an empty
// string instead, and callers treat empty as "no completion". The error
// return exists for implementations with genuinely local failure modes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

//go:generate mockery --case underscore --output completionmock --outpkg completionmock --name Completer
