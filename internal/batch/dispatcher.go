// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/models"
)

// StatusNotProcessed marks sub-requests skipped after a terminating failure.
// HTTP has no canonical code for "never attempted"; 424 (Failed Dependency)
// is the closest match and keeps the slot distinguishable from real outcomes.
const StatusNotProcessed = http.StatusFailedDependency

// Handler executes one logical sub-operation. It returns the response body
// on success, or a kind-tagged error ([*Error] or a wrapped one) on domain
// failure. Untagged errors are treated as unexpected and terminate the batch.
type Handler func(ctx context.Context, params json.RawMessage) (json.RawMessage, error)

type handlerKey struct {
	resource  string
	operation string
}

// Dispatcher executes a batch of independent sub-requests sequentially,
// routing each to a statically registered handler and assembling per-item
// outcomes under a configured [ContinuationPolicy].
//
// Registration happens at startup; Process must not race with Register.
type Dispatcher struct {
	handlers map[handlerKey]Handler
	policy   ContinuationPolicy
	logger   *logger.Logger
}

// ErrDuplicateHandler is returned when two handlers are registered for the
// same (resource, operation) pair.
var ErrDuplicateHandler = errors.New("handler already registered")

// NewDispatcher constructs a [Dispatcher] with an empty handler registry.
func NewDispatcher(policy ContinuationPolicy, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[handlerKey]Handler),
		policy:   policy,
		logger:   logger,
	}
}

// Register binds a handler to a (resource, operation) pair. Registering the
// same pair twice is a wiring bug and returns [ErrDuplicateHandler].
func (d *Dispatcher) Register(resource, operation string, handler Handler) error {
	key := handlerKey{resource: resource, operation: operation}
	if _, exists := d.handlers[key]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateHandler, resource, operation)
	}
	d.handlers[key] = handler
	return nil
}

// Process executes the sub-requests in submission order and returns one
// [models.SubResponse] per request, in the same order.
//
// Each handler runs inside a failure boundary: panics are captured and
// classified as unexpected. After a failure the continuation policy decides
// whether to keep going; unexpected failures and context cancellation always
// terminate, with every unattempted sub-request reported as not processed.
func (d *Dispatcher) Process(ctx context.Context, requests []models.SubRequest) []models.SubResponse {
	log := logger.FromContext(ctx)

	responses := make([]models.SubResponse, 0, len(requests))

	for idx, request := range requests {
		if err := ctx.Err(); err != nil {
			log.Warn().
				Str("func", "Dispatcher.Process").
				Int("processed", idx).
				Int("total", len(requests)).
				Msg("context cancelled, remaining sub-requests not processed")
			return markNotProcessed(responses, len(requests))
		}

		body, err := d.invoke(ctx, request)
		if err == nil {
			responses = append(responses, models.SubResponse{
				Status: http.StatusOK,
				Body:   body,
			})
			continue
		}

		kind := KindOf(err)
		responses = append(responses, models.SubResponse{
			Status:      StatusOf(kind),
			ErrorDetail: err.Error(),
		})

		if kind == KindUnexpected {
			log.Error().Err(err).
				Str("func", "Dispatcher.Process").
				Str("resource", request.Resource).
				Str("operation", request.Operation).
				Int("index", idx).
				Msg("unexpected failure, terminating batch")
			return markNotProcessed(responses, len(requests))
		}

		log.Warn().
			Str("func", "Dispatcher.Process").
			Str("resource", request.Resource).
			Str("operation", request.Operation).
			Str("kind", kind.String()).
			Int("index", idx).
			Msg("sub-request failed")

		if d.policy.Decide(kind) == Terminate {
			return markNotProcessed(responses, len(requests))
		}
	}

	return responses
}

// invoke routes one sub-request to its handler inside a panic boundary.
func (d *Dispatcher) invoke(ctx context.Context, request models.SubRequest) (body json.RawMessage, err error) {
	handler, ok := d.handlers[handlerKey{resource: request.Resource, operation: request.Operation}]
	if !ok {
		return nil, NewError(KindNotFound, fmt.Sprintf("no handler for %s/%s", request.Resource, request.Operation))
	}

	defer func() {
		if r := recover(); r != nil {
			err = NewError(KindUnexpected, fmt.Sprintf("handler panic: %v", r))
		}
	}()

	return handler(ctx, request.Params)
}

func markNotProcessed(responses []models.SubResponse, total int) []models.SubResponse {
	for len(responses) < total {
		responses = append(responses, models.SubResponse{
			Status:      StatusNotProcessed,
			ErrorDetail: "not processed",
		})
	}
	return responses
}
