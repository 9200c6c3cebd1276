package handler

import (
	"errors"
	"fmt"
	"strings"

	"natid/internal/nationalid/service"
	"natid/internal/nationalid/shared"
	dErrors "natid/pkg/domain-errors"
)

// maxNationalIDLength rejects oversized input before it reaches a decoder.
const maxNationalIDLength = 32

// DecodeRequest is the HTTP request body for POST /national-ids/decode and
// POST /national-ids/validate.
type DecodeRequest struct {
	Format     string `json:"format"`
	NationalID string `json:"national_id"`

	// Parsed values (populated by Validate)
	parsedFormat shared.Format
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
//
// national_id is passed to the decoder untrimmed so that blank or padded
// input is reported with its decoding kind.
func (r *DecodeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.NationalID) > maxNationalIDLength {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("national_id must be at most %d characters", maxNationalIDLength))
	}

	r.Format = strings.TrimSpace(r.Format)
	if r.Format == "" {
		return dErrors.New(dErrors.CodeValidation, "format is required")
	}
	format, err := shared.ParseFormat(r.Format)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "format must be one of SZ, ZA")
	}
	r.parsedFormat = format

	return nil
}

// ToService converts the validated request for the service layer.
func (r *DecodeRequest) ToService() service.DecodeRequest {
	return service.DecodeRequest{Format: r.parsedFormat, NationalID: r.NationalID}
}

// BatchDecodeRequest is the HTTP request body for POST /national-ids/decode/batch.
type BatchDecodeRequest struct {
	Items []DecodeRequest `json:"items"`
}

// Validate validates every item.
func (r *BatchDecodeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Items) == 0 {
		return dErrors.New(dErrors.CodeValidation, "items must not be empty")
	}
	if len(r.Items) > service.MaxBatchSize {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("items must contain at most %d entries", service.MaxBatchSize))
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("items[%d]: %s", i, dErrorMessage(err)))
		}
	}
	return nil
}

// ToService converts the validated batch for the service layer.
func (r *BatchDecodeRequest) ToService() []service.DecodeRequest {
	reqs := make([]service.DecodeRequest, len(r.Items))
	for i := range r.Items {
		reqs[i] = r.Items[i].ToService()
	}
	return reqs
}

func dErrorMessage(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
