package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/application"
	orderdomain "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	orderports "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
)

const tracerName = "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/adapters/observability/service"

// Service decorates the order workflow with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Submit(ctx context.Context, owner, email string, sub orderports.Submission) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Submit",
		trace.WithAttributes(
			attribute.String("order.owner", owner),
			attribute.String("order.product", sub.Product),
		))
	defer span.End()

	s.logInfo(ctx, "submitting order", slog.String("owner", owner), slog.String("product", sub.Product))
	result, err := s.inner.Submit(ctx, owner, email, sub)
	if err != nil {
		if errors.Is(err, orderapp.ErrInvalidInput) {
			// Rejections are the workflow doing its job, not failures.
			s.metrics.recordRejected(ctx)
			span.SetAttributes(attribute.String("order.rejection", err.Error()))
			s.logInfo(ctx, "order rejected", slog.String("owner", owner), slog.String("reason", err.Error()))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to submit order", slog.String("owner", owner))
	}
	s.metrics.recordSubmitted(ctx, result.Product)
	span.SetAttributes(attribute.Int64("order.id", result.ID))
	s.logInfo(ctx, "order submitted", slog.Int64("order.id", result.ID), slog.String("reference", result.Reference()))
	return result, nil
}

func (s *Service) ListByOwner(ctx context.Context, owner string) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListByOwner",
		trace.WithAttributes(attribute.String("order.owner", owner)))
	defer span.End()

	result, err := s.inner.ListByOwner(ctx, owner)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.String("owner", owner))
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByID",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	ordersSubmitted metric.Int64Counter
	ordersRejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	submitted, _ := m.Int64Counter("orders.service.submitted", metric.WithDescription("Number of orders accepted and persisted"))
	rejected, _ := m.Int64Counter("orders.service.rejected", metric.WithDescription("Number of submissions rejected by validation"))
	return serviceMetrics{ordersSubmitted: submitted, ordersRejected: rejected}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context, product orderdomain.Product) {
	if m.ordersSubmitted != nil {
		m.ordersSubmitted.Add(ctx, 1, metric.WithAttributes(attribute.String("order.product", string(product))))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
