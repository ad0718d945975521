// Package orderservice implements the outbound gateway to the order service.
// The gateway reports shipment status changes so the order stays in sync with
// its shipment. Calls go through a circuit breaker so a struggling order
// service does not stall every status transition.
package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/sony/gobreaker"
)

// ErrOrderServiceUnavailable is returned when the circuit breaker rejects a
// call because the order service has been failing.
var ErrOrderServiceUnavailable = errors.New("order service is unavailable")

const defaultRequestTimeout = 10 * time.Second

// Gateway calls the order service's status endpoint over HTTP.
type Gateway struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// statusUpdateRequest is the PATCH body sent to the order service.
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// errorResponse mirrors the order service's error body.
type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// NewGateway creates an order service gateway rooted at baseURL,
// e.g. "http://orders:8080". A nil client gets a default with a request timeout.
func NewGateway(baseURL string, client *http.Client, logger *slog.Logger) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "order-service",
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

// UpdateOrderStatus reports a shipment-driven status change for the order.
// A non-2xx response from the order service is returned as an unsuccessful
// GatewayResult carrying the remote message and details; errors are reserved
// for invalid input and transport failures.
func (g *Gateway) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	status string,
) (ports.GatewayResult, error) {
	if err := orderID.Validate(); err != nil {
		return ports.GatewayResult{}, err
	}
	if status == "" {
		return ports.GatewayResult{}, errs.NewValueIsRequiredError("status")
	}

	raw, err := g.breaker.Execute(func() (any, error) {
		return g.patchOrderStatus(ctx, orderID, status)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.logger.Warn("circuit breaker rejected order status update",
				"orderId", orderID.String(),
				"status", status,
			)
			return ports.GatewayResult{}, fmt.Errorf("%w: %w", ErrOrderServiceUnavailable, err)
		}

		g.logger.Error("order status update failed",
			"orderId", orderID.String(),
			"status", status,
			"error", err,
		)
		return ports.GatewayResult{}, err
	}

	result := raw.(ports.GatewayResult)
	if result.Success {
		g.logger.Info("order status updated",
			"orderId", orderID.String(),
			"status", status,
		)
	} else {
		g.logger.Warn("order service rejected status update",
			"orderId", orderID.String(),
			"status", status,
			"statusCode", result.StatusCode,
			"message", result.Message,
		)
	}

	return result, nil
}

func (g *Gateway) patchOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	status string,
) (ports.GatewayResult, error) {
	body, err := json.Marshal(statusUpdateRequest{Status: status})
	if err != nil {
		return ports.GatewayResult{}, err
	}

	url := fmt.Sprintf("%s/api/orders/%s/status", g.baseURL, orderID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return ports.GatewayResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.GatewayResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return ports.GatewayResult{Success: true, StatusCode: resp.StatusCode}, nil
	}

	message, details := parseErrorBody(resp.Body)
	return ports.GatewayResult{
		Success:    false,
		StatusCode: resp.StatusCode,
		Message:    message,
		Details:    details,
	}, nil
}

// parseErrorBody extracts message and details from an error response.
// Falls back to the raw body when it is not the expected JSON shape.
func parseErrorBody(body io.Reader) (string, string) {
	raw, err := io.ReadAll(io.LimitReader(body, 64*1024))
	if err != nil || len(raw) == 0 {
		return "", ""
	}

	var parsed errorResponse
	if err = json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message, parsed.Details
	}

	return strings.TrimSpace(string(raw)), ""
}
