// Package viacep implements address validation against the ViaCep postal
// code service (https://viacep.com.br). ViaCep only covers Brazil, so any
// other destination country is reported as not serviceable.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"logistics/internal/core/ports"
)

const defaultRequestTimeout = 10 * time.Second

// supportedCountries lists the accepted spellings of Brazil.
var supportedCountries = []string{"BR", "Brasil", "Brazil"}

// Gateway resolves postal codes through the ViaCep HTTP API.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// cepResponse mirrors the relevant part of ViaCep's JSON payload.
// Erro is a raw message because the service has returned both a boolean and
// the string "true" for unknown postal codes.
type cepResponse struct {
	Cep        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

func (r cepResponse) notFound() bool {
	return len(r.Erro) > 0 && string(r.Erro) != "false" && string(r.Erro) != `"false"`
}

// NewGateway creates a ViaCep gateway rooted at baseURL,
// e.g. "https://viacep.com.br". A nil client gets a default with a request timeout.
func NewGateway(baseURL string, client *http.Client, logger *slog.Logger) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// ValidateAndNormalize resolves the postal code and checks the requested city
// and state against it. A nil result with a nil error means the destination
// is not serviceable; errors are reserved for transport failures.
func (g *Gateway) ValidateAndNormalize(
	ctx context.Context,
	input ports.AddressInput,
) (*ports.AddressInput, error) {
	if !isSupportedCountry(input.Country) {
		g.logger.Info("destination country is not serviceable", "country", input.Country)
		return nil, nil
	}

	cep := normalizeCep(input.PostalCode)
	if len(cep) != 8 {
		g.logger.Info("postal code is malformed", "postalCode", input.PostalCode)
		return nil, nil
	}

	resolved, err := g.lookupCep(ctx, cep)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		g.logger.Info("postal code is unknown", "postalCode", input.PostalCode)
		return nil, nil
	}

	if !strings.EqualFold(strings.TrimSpace(input.City), resolved.Localidade) ||
		!strings.EqualFold(strings.TrimSpace(input.State), resolved.UF) {
		g.logger.Info("city or state does not match postal code",
			"postalCode", input.PostalCode,
			"requestedCity", input.City,
			"requestedState", input.State,
			"resolvedCity", resolved.Localidade,
			"resolvedState", resolved.UF,
		)
		return nil, nil
	}

	street := resolved.Logradouro
	if street == "" {
		street = input.Street
	}

	return &ports.AddressInput{
		Street:     street,
		City:       resolved.Localidade,
		State:      resolved.UF,
		PostalCode: resolved.Cep,
		Country:    "BR",
	}, nil
}

func (g *Gateway) lookupCep(ctx context.Context, cep string) (*cepResponse, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", g.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// ViaCep answers 400 for syntactically invalid codes.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep: unexpected status %d", resp.StatusCode)
	}

	var parsed cepResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("viacep: decode response: %w", err)
	}

	if parsed.notFound() {
		return nil, nil
	}

	return &parsed, nil
}

func isSupportedCountry(country string) bool {
	for _, c := range supportedCountries {
		if strings.EqualFold(strings.TrimSpace(country), c) {
			return true
		}
	}
	return false
}

// normalizeCep strips everything but digits, so "01310-200" and "01310200"
// resolve the same way.
func normalizeCep(postalCode string) string {
	var b strings.Builder
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
