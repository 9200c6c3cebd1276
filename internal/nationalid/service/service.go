// Package service is the application layer for national ID decoding.
//
// It wraps the pure decoders with request-scoped time, metrics, tracing and
// logging, and translates decoding failures into domain errors for the
// transport layer.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"natid/internal/nationalid"
	"natid/internal/nationalid/eswatini"
	"natid/internal/nationalid/metrics"
	"natid/internal/nationalid/shared"
	"natid/internal/nationalid/southafrica"
	dErrors "natid/pkg/domain-errors"
	"natid/pkg/requestcontext"
)

const (
	// MaxBatchSize bounds the number of items in one batch request.
	MaxBatchSize = 100

	adultAge = 18

	defaultBatchConcurrency = 8

	outcomeUnsupportedFormat = "unsupported_format"
)

// DecodeRequest names the format and the raw national ID to decode.
type DecodeRequest struct {
	Format     shared.Format
	NationalID string
}

// DecodeResult is the decoded view of a national ID at request time.
type DecodeResult struct {
	Format            shared.Format
	NationalID        string
	DateOfBirth       time.Time
	Gender            shared.Gender
	SerialNumber      int
	CitizenshipStatus shared.CitizenshipStatus // South Africa only
	ChecksumValid     bool
	Age               int
	IsOver18          bool
}

// ValidateResult reports whether a national ID decodes, and why not.
type ValidateResult struct {
	Valid  bool
	Kind   shared.ErrorKind
	Reason string
}

// BatchItem is the outcome of one entry of a batch, in request order.
type BatchItem struct {
	Index  int
	Result *DecodeResult
	Err    error
}

// Service decodes national IDs.
type Service struct {
	logger           *slog.Logger
	metrics          *metrics.Metrics
	tracer           trace.Tracer
	eswatiniChecksum bool
	batchConcurrency int
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithEswatiniChecksum makes Eswatini PINs fail when their Luhn check fails.
func WithEswatiniChecksum(required bool) Option {
	return func(s *Service) {
		s.eswatiniChecksum = required
	}
}

// WithBatchConcurrency bounds the goroutines used by DecodeBatch.
// Values below 1 are ignored.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// New constructs a Service. Without options it logs to slog.Default, records
// no metrics and traces with the global otel tracer provider.
func New(opts ...Option) *Service {
	s := &Service{
		logger:           slog.Default(),
		tracer:           otel.Tracer("natid/nationalid"),
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decode decodes a single national ID. Decoding failures are returned as
// CodeValidation domain errors wrapping the *shared.FormatError; an unknown
// format is a CodeBadRequest.
func (s *Service) Decode(ctx context.Context, req DecodeRequest) (*DecodeResult, error) {
	ctx, span := s.tracer.Start(ctx, "nationalid.Decode",
		trace.WithAttributes(attribute.String("natid.format", req.Format.String())))
	defer span.End()

	start := time.Now()
	id, err := nationalid.Parse(req.Format, req.NationalID, nationalid.WithEswatiniChecksum(s.eswatiniChecksum))
	s.metrics.ObserveDecodeLatency(req.Format.String(), time.Since(start))

	if err != nil {
		return nil, s.rejected(ctx, span, req, err)
	}

	s.metrics.IncrementOutcome(req.Format.String(), metrics.OutcomeOK)
	return s.toResult(ctx, id), nil
}

// Validate reports whether the national ID decodes. Only an unsupported
// format is returned as an error.
func (s *Service) Validate(ctx context.Context, req DecodeRequest) (*ValidateResult, error) {
	_, err := s.Decode(ctx, req)
	if err == nil {
		return &ValidateResult{Valid: true}, nil
	}

	var fe *shared.FormatError
	if !errors.As(err, &fe) {
		return nil, err
	}
	return &ValidateResult{Kind: fe.Kind, Reason: fe.Message}, nil
}

// DecodeBatch decodes up to MaxBatchSize national IDs concurrently. Each
// item carries its own result or error; the batch itself fails only when
// it is malformed or the context is cancelled.
func (s *Service) DecodeBatch(ctx context.Context, reqs []DecodeRequest) ([]BatchItem, error) {
	if len(reqs) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "batch must contain at least one item")
	}
	if len(reqs) > MaxBatchSize {
		return nil, dErrors.New(dErrors.CodeBadRequest, "batch must contain at most 100 items")
	}
	s.metrics.ObserveBatchSize(len(reqs))

	items := make([]BatchItem, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Decode(gctx, req)
			items[i] = BatchItem{Index: i, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch decode aborted")
	}
	return items, nil
}

func (s *Service) rejected(ctx context.Context, span trace.Span, req DecodeRequest, err error) error {
	span.RecordError(err)

	var fe *shared.FormatError
	if !errors.As(err, &fe) {
		span.SetStatus(codes.Error, outcomeUnsupportedFormat)
		s.metrics.IncrementOutcome(req.Format.String(), outcomeUnsupportedFormat)
		return err
	}

	span.SetStatus(codes.Error, string(fe.Kind))
	s.metrics.IncrementOutcome(req.Format.String(), string(fe.Kind))
	s.logger.InfoContext(ctx, "national id rejected",
		"request_id", requestcontext.RequestID(ctx),
		"format", req.Format,
		"national_id", maskNationalID(req.NationalID),
		"kind", fe.Kind,
		"param", fe.Param,
	)
	return dErrors.Wrap(err, dErrors.CodeValidation, fe.Message)
}

func (s *Service) toResult(ctx context.Context, id shared.Identity) *DecodeResult {
	age := shared.AgeAt(id.DateOfBirth(), requestcontext.Now(ctx))
	res := &DecodeResult{
		Format:        id.Format(),
		NationalID:    id.String(),
		DateOfBirth:   id.DateOfBirth(),
		Gender:        id.Gender(),
		SerialNumber:  id.SerialNumber(),
		ChecksumValid: true,
		Age:           age,
		IsOver18:      age >= adultAge,
	}

	switch v := id.(type) {
	case eswatini.PIN:
		res.ChecksumValid = v.ChecksumValid()
	case southafrica.ID:
		res.CitizenshipStatus = v.CitizenshipStatus()
	}
	return res
}

// maskNationalID keeps the date of birth prefix and hides the rest.
func maskNationalID(raw string) string {
	const visible = 6
	if len(raw) <= visible {
		return strings.Repeat("*", len(raw))
	}
	return raw[:visible] + strings.Repeat("*", len(raw)-visible)
}
