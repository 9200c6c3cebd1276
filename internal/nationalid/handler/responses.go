package handler

import (
	"natid/internal/nationalid/service"
	"natid/internal/nationalid/shared"
	dErrors "natid/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// DecodeResponse is the HTTP response for POST /national-ids/decode.
type DecodeResponse struct {
	Format            string `json:"format"`
	NationalID        string `json:"national_id"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender"`
	SerialNumber      int    `json:"serial_number"`
	CitizenshipStatus string `json:"citizenship_status,omitempty"`
	ChecksumValid     bool   `json:"checksum_valid"`
	Age               int    `json:"age"`
	IsOver18          bool   `json:"is_over_18"`
}

// ValidateResponse is the HTTP response for POST /national-ids/validate.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Kind   string `json:"kind,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// BatchItemResponse is one entry of a batch response.
type BatchItemResponse struct {
	Index  int             `json:"index"`
	Result *DecodeResponse `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Kind   string          `json:"kind,omitempty"`
}

// BatchDecodeResponse is the HTTP response for POST /national-ids/decode/batch.
type BatchDecodeResponse struct {
	Items []BatchItemResponse `json:"items"`
}

// FormatsResponse is the HTTP response for GET /national-ids/formats.
type FormatsResponse struct {
	Formats []string `json:"formats"`
}

// FromResult converts a service DecodeResult to an HTTP response.
func FromResult(result *service.DecodeResult) *DecodeResponse {
	return &DecodeResponse{
		Format:            result.Format.String(),
		NationalID:        result.NationalID,
		DateOfBirth:       result.DateOfBirth.Format(dateLayout),
		Gender:            result.Gender.String(),
		SerialNumber:      result.SerialNumber,
		CitizenshipStatus: result.CitizenshipStatus.String(),
		ChecksumValid:     result.ChecksumValid,
		Age:               result.Age,
		IsOver18:          result.IsOver18,
	}
}

// FromValidateResult converts a service ValidateResult to an HTTP response.
func FromValidateResult(result *service.ValidateResult) *ValidateResponse {
	return &ValidateResponse{
		Valid:  result.Valid,
		Kind:   string(result.Kind),
		Reason: result.Reason,
	}
}

// FromBatch converts batch items to an HTTP response.
func FromBatch(items []service.BatchItem) *BatchDecodeResponse {
	resp := &BatchDecodeResponse{Items: make([]BatchItemResponse, len(items))}
	for i, item := range items {
		out := BatchItemResponse{Index: item.Index}
		if item.Err != nil {
			out.Error = string(dErrors.CodeOf(item.Err))
			out.Kind = string(shared.KindOf(item.Err))
		} else {
			out.Result = FromResult(item.Result)
		}
		resp.Items[i] = out
	}
	return resp
}
