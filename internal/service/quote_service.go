package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"movingco/internal/db"
	"movingco/internal/entities"
	apperrors "movingco/internal/errors"
	"movingco/internal/pricing"
	"movingco/internal/repository"
)

const (
	// Pickup and delivery crews are booked for at least two hours.
	minIntercityServiceHours = 2

	defaultLanguage = "zh"

	depositStatusNone    = "none"
	depositStatusPending = "pending"
)

// ConfigProvider supplies the assembled engine configuration and the
// currently bookable cities. Satisfied by ConfigService.
type ConfigProvider interface {
	EngineConfig() (pricing.Config, error)
	ActiveCityNames() ([]string, error)
}

// QuoteService validates quote requests, runs the pricing engine and
// stores submitted leads.
type QuoteService struct {
	config ConfigProvider
	leads  *repository.QuoteLeadRepository
	sender *SenderService
}

func NewQuoteService(config ConfigProvider, leads *repository.QuoteLeadRepository, sender *SenderService) *QuoteService {
	return &QuoteService{config: config, leads: leads, sender: sender}
}

// Quote computes a price breakdown without persisting anything.
func (s *QuoteService) Quote(req entities.QuoteRequest) (*entities.QuoteBreakdownResponse, error) {
	cfg, err := s.config.EngineConfig()
	if err != nil {
		log.Printf("Error assembling pricing config: %v", err)
		return nil, fmt.Errorf("loading pricing configuration: %w", err)
	}

	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}

	switch req.ServiceType {
	case "local":
		return s.localQuote(cfg, req.Local, lang)
	case "intercity":
		return s.intercityQuote(cfg, req.Intercity, lang)
	case "storage":
		return s.storageQuote(cfg, req.Storage, lang)
	default:
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("unknown service type %q", req.ServiceType))
	}
}

func (s *QuoteService) localQuote(cfg pricing.Config, input *entities.LocalSelectionInput, lang string) (*entities.QuoteBreakdownResponse, error) {
	if input == nil {
		return nil, apperrors.ErrBadRequest("local selection is required for service type local")
	}
	area := pricing.AreaTier(input.Area)
	if area != pricing.AreaStandard && area != pricing.AreaPremium {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("unknown area %q", input.Area))
	}
	if input.Persons < 1 {
		return nil, apperrors.ErrBadRequest("at least one mover is required")
	}
	if min := cfg.Local.Settings.MinimumHours; input.Hours < min {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("local moving requires at least %d hours", min))
	}

	result, err := pricing.LocalQuote(cfg.Local, pricing.LocalSelection{
		Area:        area,
		WithVehicle: input.WithVehicle,
		Persons:     input.Persons,
		Hours:       input.Hours,
	})
	if err != nil {
		return nil, apperrors.ErrBadRequest(err.Error())
	}

	breakdown := pricing.ComposeBreakdown(result.Subtotal, cfg.TaxAndFees, pricing.ScopeLocal, lang)
	resp := entities.NewQuoteBreakdown("local", breakdown)
	resp.NeedsDeposit = result.NeedsDeposit
	if result.NeedsDeposit {
		resp.DepositCAD = result.DepositCAD.Round(2).InexactFloat64()
		resp.DepositRMB = result.DepositRMB.Round(2).InexactFloat64()
	}
	return resp, nil
}

func (s *QuoteService) intercityQuote(cfg pricing.Config, input *entities.IntercitySelectionInput, lang string) (*entities.QuoteBreakdownResponse, error) {
	if input == nil {
		return nil, apperrors.ErrBadRequest("intercity selection is required for service type intercity")
	}
	if input.OriginCity == "" || input.DestinationCity == "" {
		return nil, apperrors.ErrBadRequest("origin and destination cities are required")
	}
	if input.OriginCity == input.DestinationCity {
		return nil, apperrors.ErrBadRequest("origin and destination must differ")
	}
	if input.VolumeM3 < 0 {
		return nil, apperrors.ErrBadRequest("volume must not be negative")
	}
	if input.PickupService && input.PickupHours < minIntercityServiceHours {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("pickup service requires at least %d hours", minIntercityServiceHours))
	}
	if input.DeliveryService && input.DeliveryHours < minIntercityServiceHours {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("delivery service requires at least %d hours", minIntercityServiceHours))
	}

	active, err := s.config.ActiveCityNames()
	if err != nil {
		return nil, err
	}
	if !containsCity(active, input.OriginCity) {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("city %q is not currently served", input.OriginCity))
	}
	if !containsCity(active, input.DestinationCity) {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("city %q is not currently served", input.DestinationCity))
	}

	result, err := pricing.IntercityQuote(cfg.Intercity, cfg.LocalServiceRate, pricing.IntercitySelection{
		Origin:        input.OriginCity,
		Destination:   input.DestinationCity,
		VolumeM3:      decimal.NewFromFloat(input.VolumeM3),
		Pickup:        input.PickupService,
		PickupHours:   input.PickupHours,
		Delivery:      input.DeliveryService,
		DeliveryHours: input.DeliveryHours,
	})
	if err != nil {
		return nil, apperrors.ErrBadRequest(err.Error())
	}

	breakdown := pricing.ComposeBreakdown(result.Subtotal, cfg.TaxAndFees, pricing.ScopeIntercity, lang)
	resp := entities.NewQuoteBreakdown("intercity", breakdown)
	resp.Pallets = result.Pallets
	resp.RatePerPallet = result.RatePerPallet.Round(2).InexactFloat64()
	resp.IntercityFee = result.IntercityFee.Round(2).InexactFloat64()
	resp.LocalServiceFee = result.LocalServiceFee.Round(2).InexactFloat64()
	if result.RouteUnpriced {
		resp.Warning = unpricedRouteWarning(input.OriginCity, input.DestinationCity, lang)
	}
	return resp, nil
}

func (s *QuoteService) storageQuote(cfg pricing.Config, input *entities.StorageSelectionInput, lang string) (*entities.QuoteBreakdownResponse, error) {
	if input == nil {
		return nil, apperrors.ErrBadRequest("storage selection is required for service type storage")
	}
	if input.Months < 0 {
		return nil, apperrors.ErrBadRequest("storage months must not be negative")
	}

	result, err := pricing.StorageQuote(cfg.Storage, pricing.StorageSelection{
		Quantities: input.Items,
		Months:     input.Months,
	})
	if err != nil {
		return nil, apperrors.ErrBadRequest(err.Error())
	}

	breakdown := pricing.ComposeBreakdown(result.Subtotal, cfg.TaxAndFees, pricing.ScopeStorage, lang)
	resp := entities.NewQuoteBreakdown("storage", breakdown)
	resp.MonthlyStorageFee = result.MonthlyStorageFee.Round(2).InexactFloat64()
	resp.StorageSubtotal = result.StorageSubtotal.Round(2).InexactFloat64()
	resp.PickupFee = result.PickupFee.Round(2).InexactFloat64()
	return resp, nil
}

// SubmitLead prices the request, stores it with a reference code and
// notifies the customer by email and SMS in the background.
func (s *QuoteService) SubmitLead(req entities.QuoteLeadRequest) (*entities.QuoteLeadResponse, error) {
	if req.UserName == "" || req.UserEmail == "" {
		return nil, apperrors.ErrBadRequest("name and email are required")
	}

	breakdown, err := s.Quote(req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	requestJSON, err := json.Marshal(req.QuoteRequest)
	if err != nil {
		return nil, fmt.Errorf("encoding quote request: %w", err)
	}

	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}

	now := time.Now()
	lead := &db.QuoteLead{
		Code:          fmt.Sprintf("%08X", now.UnixNano()%100000000),
		ServiceType:   req.ServiceType,
		UserName:      req.UserName,
		UserEmail:     req.UserEmail,
		UserPhone:     req.UserPhone,
		Language:      lang,
		RequestJSON:   string(requestJSON),
		Subtotal:      decimal.NewFromFloat(breakdown.Subtotal),
		Tax:           decimal.NewFromFloat(breakdown.Tax),
		Total:         decimal.NewFromFloat(breakdown.Total),
		NeedsDeposit:  breakdown.NeedsDeposit,
		DepositStatus: depositStatusNone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.leads.Create(lead); err != nil {
		log.Printf("Error storing quote lead: %v", err)
		return nil, fmt.Errorf("storing quote request: %w", err)
	}

	if s.sender != nil {
		s.sender.SendQuoteNotifications(lead, breakdown)
	}

	message := "Your quote has been sent to your email."
	if lang == "zh" {
		message = "报价已发送至您的邮箱。"
	}
	return &entities.QuoteLeadResponse{
		Code:      lead.Code,
		Message:   message,
		Breakdown: breakdown,
	}, nil
}

// ListLeads returns stored quote requests for the admin dashboard,
// optionally filtered by service type and creation date (YYYY-MM-DD).
func (s *QuoteService) ListLeads(serviceType, date string) ([]db.QuoteLead, error) {
	return s.leads.List(serviceType, date)
}

func containsCity(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func unpricedRouteWarning(origin, destination, lang string) string {
	if lang == "zh" {
		return fmt.Sprintf("暂无 %s 至 %s 的跨省运输报价，请联系客服。", origin, destination)
	}
	return fmt.Sprintf("No intercity rate is configured for %s to %s, please contact us.", origin, destination)
}
