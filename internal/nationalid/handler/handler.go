package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"natid/internal/nationalid"
	"natid/internal/nationalid/service"
	"natid/internal/nationalid/shared"
	"natid/pkg/platform/httputil"
	"natid/pkg/requestcontext"
)

// Service defines the interface for national ID operations.
type Service interface {
	Decode(ctx context.Context, req service.DecodeRequest) (*service.DecodeResult, error)
	Validate(ctx context.Context, req service.DecodeRequest) (*service.ValidateResult, error)
	DecodeBatch(ctx context.Context, reqs []service.DecodeRequest) ([]service.BatchItem, error)
}

// Handler wires national ID endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a national ID handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts national ID endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/national-ids", func(r chi.Router) {
		r.Get("/formats", h.HandleFormats)
		r.Post("/decode", h.HandleDecode)
		r.Post("/decode/batch", h.HandleDecodeBatch)
		r.Post("/validate", h.HandleValidate)
	})
}

// HandleDecode handles POST /national-ids/decode requests.
func (h *Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[DecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Decode(ctx, req.ToService())
	if err != nil {
		h.writeDecodeError(ctx, w, requestID, err)
		return
	}

	h.logger.InfoContext(ctx, "national id decoded",
		"request_id", requestID,
		"format", result.Format,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleValidate handles POST /national-ids/validate requests.
// Invalid national IDs are a 200 with valid=false.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Validate(ctx, req.ToService())
	if err != nil {
		h.writeDecodeError(ctx, w, requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromValidateResult(result))
}

// HandleDecodeBatch handles POST /national-ids/decode/batch requests.
func (h *Handler) HandleDecodeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchDecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	items, err := h.service.DecodeBatch(ctx, req.ToService())
	if err != nil {
		h.logger.ErrorContext(ctx, "batch decode failed",
			"request_id", requestID,
			"items", len(req.Items),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "national id batch decoded",
		"request_id", requestID,
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromBatch(items))
}

// HandleFormats handles GET /national-ids/formats requests.
func (h *Handler) HandleFormats(w http.ResponseWriter, _ *http.Request) {
	formats := nationalid.Formats()
	resp := FormatsResponse{Formats: make([]string, len(formats))}
	for i, f := range formats {
		resp.Formats[i] = f.String()
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeDecodeError(ctx context.Context, w http.ResponseWriter, requestID string, err error) {
	kind := shared.KindOf(err)
	if kind == "" {
		h.logger.WarnContext(ctx, "national id request rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteErrorFields(w, err, map[string]string{"kind": string(kind)})
}
