package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movingco/internal/api"
	"movingco/internal/entities"
	"movingco/internal/pricing"
	"movingco/internal/service"
)

type fixtureConfig struct{}

func (fixtureConfig) EngineConfig() (pricing.Config, error) {
	return pricing.Config{
		Intercity: pricing.RateTable{
			"Vancouver": {"Calgary": decimal.NewFromInt(500)},
		},
		LocalServiceRate: decimal.NewFromInt(120),
		Local: pricing.LocalMovingRates{
			Areas: map[pricing.AreaTier]pricing.AreaRates{
				pricing.AreaStandard: {
					WithVehicle: pricing.VehicleRates{
						BaseRatePerHour:            decimal.NewFromInt(80),
						AdditionalPersonFeePerHour: decimal.NewFromInt(40),
					},
					WithoutVehicle: pricing.CrewRates{
						BaseRatePerPersonPerHour: decimal.NewFromInt(45),
					},
				},
			},
			Settings: pricing.LocalMovingSettings{MinimumHours: 2},
		},
		Storage: pricing.StorageCatalog{
			"queenBed": {Name: "Queen Mattress", Price: decimal.NewFromInt(70), Billing: pricing.BillingRecurring},
		},
		TaxAndFees: pricing.TaxFeeConfig{
			GSTRate:    decimal.NewFromInt(5),
			GSTEnabled: true,
			PSTRate:    decimal.NewFromInt(7),
			PSTEnabled: true,
		},
	}, nil
}

func (fixtureConfig) ActiveCityNames() ([]string, error) {
	return []string{"Calgary", "Vancouver"}, nil
}

func newQuoteHandler() *api.QuoteHandler {
	svc := service.NewQuoteService(fixtureConfig{}, nil, nil)
	return api.NewQuoteHandler(svc)
}

func postQuote(t *testing.T, handler *api.QuoteHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler.Quote(rr, req)
	return rr
}

func TestQuoteEndpoint_Local(t *testing.T) {
	rr := postQuote(t, newQuoteHandler(), entities.QuoteRequest{
		ServiceType: "local",
		Local: &entities.LocalSelectionInput{
			Area:        "standard",
			WithVehicle: true,
			Persons:     3,
			Hours:       2,
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp entities.QuoteBreakdownResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "local", resp.ServiceType)
	assert.Equal(t, 320.0, resp.Subtotal)
	assert.Equal(t, 38.4, resp.Tax)
	assert.Equal(t, 358.4, resp.Total)
}

func TestQuoteEndpoint_Intercity(t *testing.T) {
	rr := postQuote(t, newQuoteHandler(), entities.QuoteRequest{
		ServiceType: "intercity",
		Language:    "en",
		Intercity: &entities.IntercitySelectionInput{
			OriginCity:      "Vancouver",
			DestinationCity: "Calgary",
			VolumeM3:        5,
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp entities.QuoteBreakdownResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Pallets)
	assert.Equal(t, 1500.0, resp.IntercityFee)
}

func TestQuoteEndpoint_ValidationError(t *testing.T) {
	rr := postQuote(t, newQuoteHandler(), entities.QuoteRequest{
		ServiceType: "local",
		Local:       &entities.LocalSelectionInput{Area: "standard", Persons: 2, Hours: 1},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQuoteEndpoint_MalformedBody(t *testing.T) {
	handler := newQuoteHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.Quote(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQuoteEndpoint_UnknownServiceType(t *testing.T) {
	rr := postQuote(t, newQuoteHandler(), entities.QuoteRequest{ServiceType: "teleport"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
