package viacep_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics/internal/adapters/out/viacep"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func paulistaInput() ports.AddressInput {
	return ports.AddressInput{
		Street:     "Avenida Paulista, 1578",
		City:       "São Paulo",
		State:      "SP",
		PostalCode: "01310-200",
		Country:    "BR",
	}
}

func cepServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310200/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestGateway_ValidateAndNormalize_Serviceable(t *testing.T) {
	server := cepServer(t,
		`{"cep":"01310-200","logradouro":"Avenida Paulista","localidade":"São Paulo","uf":"SP"}`)
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())
	result, err := gateway.ValidateAndNormalize(t.Context(), paulistaInput())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Avenida Paulista", result.Street)
	assert.Equal(t, "São Paulo", result.City)
	assert.Equal(t, "SP", result.State)
	assert.Equal(t, "01310-200", result.PostalCode)
	assert.Equal(t, "BR", result.Country)
}

func TestGateway_ValidateAndNormalize_CountrySpellings(t *testing.T) {
	server := cepServer(t,
		`{"cep":"01310-200","logradouro":"Avenida Paulista","localidade":"São Paulo","uf":"SP"}`)
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())

	for _, country := range []string{"BR", "br", "Brasil", "BRAZIL"} {
		input := paulistaInput()
		input.Country = country

		result, err := gateway.ValidateAndNormalize(t.Context(), input)
		require.NoError(t, err)
		assert.NotNil(t, result, "country %q should be serviceable", country)
	}
}

func TestGateway_ValidateAndNormalize_UnsupportedCountry(t *testing.T) {
	gateway := viacep.NewGateway("http://localhost:1", nil, discardLogger())

	input := paulistaInput()
	input.Country = "AR"

	result, err := gateway.ValidateAndNormalize(t.Context(), input)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGateway_ValidateAndNormalize_MalformedPostalCode(t *testing.T) {
	gateway := viacep.NewGateway("http://localhost:1", nil, discardLogger())

	input := paulistaInput()
	input.PostalCode = "1234"

	result, err := gateway.ValidateAndNormalize(t.Context(), input)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGateway_ValidateAndNormalize_UnknownPostalCode(t *testing.T) {
	for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
		server := cepServer(t, body)

		gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())
		result, err := gateway.ValidateAndNormalize(t.Context(), paulistaInput())

		require.NoError(t, err)
		assert.Nil(t, result)
		server.Close()
	}
}

func TestGateway_ValidateAndNormalize_CityMismatch(t *testing.T) {
	server := cepServer(t,
		`{"cep":"01310-200","logradouro":"Avenida Paulista","localidade":"São Paulo","uf":"SP"}`)
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())

	input := paulistaInput()
	input.City = "Campinas"

	result, err := gateway.ValidateAndNormalize(t.Context(), input)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGateway_ValidateAndNormalize_StateMismatch(t *testing.T) {
	server := cepServer(t,
		`{"cep":"01310-200","logradouro":"Avenida Paulista","localidade":"São Paulo","uf":"SP"}`)
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())

	input := paulistaInput()
	input.State = "RJ"

	result, err := gateway.ValidateAndNormalize(t.Context(), input)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGateway_ValidateAndNormalize_CaseInsensitiveComparison(t *testing.T) {
	server := cepServer(t,
		`{"cep":"01310-200","logradouro":"Avenida Paulista","localidade":"São Paulo","uf":"SP"}`)
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())

	input := paulistaInput()
	input.City = "são paulo"
	input.State = "sp"

	result, err := gateway.ValidateAndNormalize(t.Context(), input)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestGateway_ValidateAndNormalize_EmptyLogradouroFallsBackToInputStreet(t *testing.T) {
	server := cepServer(t,
		`{"cep":"01310-200","logradouro":"","localidade":"São Paulo","uf":"SP"}`)
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())
	result, err := gateway.ValidateAndNormalize(t.Context(), paulistaInput())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Avenida Paulista, 1578", result.Street)
}

func TestGateway_ValidateAndNormalize_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // refuse connections

	gateway := viacep.NewGateway(server.URL, nil, discardLogger())
	_, err := gateway.ValidateAndNormalize(t.Context(), paulistaInput())

	require.Error(t, err)
}

func TestGateway_ValidateAndNormalize_UpstreamServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := viacep.NewGateway(server.URL, server.Client(), discardLogger())
	_, err := gateway.ValidateAndNormalize(t.Context(), paulistaInput())

	require.Error(t, err)
}
