// Package nationalid dispatches national ID decoding to the decoder for a
// format.
package nationalid

import (
	"natid/internal/nationalid/eswatini"
	"natid/internal/nationalid/shared"
	"natid/internal/nationalid/southafrica"
	dErrors "natid/pkg/domain-errors"
)

// Option adjusts a single Parse call.
type Option func(*options)

type options struct {
	eswatiniChecksum bool
}

// WithEswatiniChecksum toggles Luhn enforcement for Eswatini PINs.
// South African IDs always enforce it.
func WithEswatiniChecksum(required bool) Option {
	return func(o *options) {
		o.eswatiniChecksum = required
	}
}

// Formats lists the supported formats in a stable order.
func Formats() []shared.Format {
	return []shared.Format{shared.FormatEswatini, shared.FormatSouthAfrica}
}

// Parse decodes text with the decoder for format.
// Decoding failures are returned unchanged as *shared.FormatError; an
// unsupported format is a CodeBadRequest domain error.
func Parse(format shared.Format, text string, opts ...Option) (shared.Identity, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case shared.FormatEswatini:
		var pinOpts []eswatini.Option
		if o.eswatiniChecksum {
			pinOpts = append(pinOpts, eswatini.RequireChecksum())
		}
		pin, err := eswatini.Parse(text, pinOpts...)
		if err != nil {
			return nil, err
		}
		return pin, nil
	case shared.FormatSouthAfrica:
		id, err := southafrica.Parse(text)
		if err != nil {
			return nil, err
		}
		return id, nil
	default:
		return nil, dErrors.Wrap(shared.ErrUnknownFormat, dErrors.CodeBadRequest, "unsupported national ID format")
	}
}

// TryParse is Parse without the error.
func TryParse(format shared.Format, text string, opts ...Option) (shared.Identity, bool) {
	id, err := Parse(format, text, opts...)
	if err != nil {
		return nil, false
	}
	return id, true
}
