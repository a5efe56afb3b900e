package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"movingco/internal/db"
	"movingco/internal/entities"
	"movingco/internal/pricing"
	"movingco/internal/repository"
)

// ConfigService assembles the typed engine configuration from the
// key-value store and owns seeding, resets and the raw config views
// the admin dashboard edits. The engine itself never touches the
// store; it receives the assembled pricing.Config as a parameter.
type ConfigService struct {
	pricingRepo  *repository.PricingConfigRepository
	cityRepo     *repository.CityRepository
	settingsRepo *repository.SettingsRepository
}

func NewConfigService(pricingRepo *repository.PricingConfigRepository, cityRepo *repository.CityRepository, settingsRepo *repository.SettingsRepository) *ConfigService {
	return &ConfigService{
		pricingRepo:  pricingRepo,
		cityRepo:     cityRepo,
		settingsRepo: settingsRepo,
	}
}

// EnsureDefaults seeds any empty configuration table with the shipped
// defaults. Existing rows are never overwritten.
func (s *ConfigService) EnsureDefaults() error {
	if count, err := s.pricingRepo.Count(); err != nil {
		return err
	} else if count == 0 {
		if err := s.pricingRepo.Replace(defaultPricingValues); err != nil {
			return fmt.Errorf("seeding pricing config: %w", err)
		}
	}

	if count, err := s.cityRepo.Count(); err != nil {
		return err
	} else if count == 0 {
		if err := s.cityRepo.SeedDefaults(defaultCities); err != nil {
			return fmt.Errorf("seeding cities: %w", err)
		}
	}

	if count, err := s.settingsRepo.Count(); err != nil {
		return err
	} else if count == 0 {
		if err := s.settingsRepo.Replace(defaultSystemSettings); err != nil {
			return fmt.Errorf("seeding system settings: %w", err)
		}
	}
	return nil
}

// PricingValues returns the raw pricing configuration for the admin
// dashboard: JSON documents parsed, scalars passed through.
func (s *ConfigService) PricingValues() (map[string]interface{}, error) {
	stored, err := s.pricingRepo.GetAll()
	if err != nil {
		return nil, err
	}
	values := make(map[string]interface{}, len(stored))
	for key, raw := range stored {
		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			values[key] = raw
			continue
		}
		values[key] = parsed
	}
	return values, nil
}

// UpdatePricing upserts the given config keys. Object values are
// stored as compact JSON, strings as their bare value.
func (s *ConfigService) UpdatePricing(values map[string]json.RawMessage) error {
	for key, raw := range values {
		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			if err := s.pricingRepo.Upsert(key, asString); err != nil {
				return err
			}
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("invalid JSON for config key %q: %w", key, err)
		}
		if err := s.pricingRepo.Upsert(key, buf.String()); err != nil {
			return err
		}
	}
	return nil
}

func (s *ConfigService) ResetPricing() error {
	return s.pricingRepo.Replace(defaultPricingValues)
}

// SettingsTree returns system settings nested by their dotted keys,
// with "true"/"false" coerced to bools and numeric strings to numbers.
func (s *ConfigService) SettingsTree() (map[string]interface{}, error) {
	flat, err := s.settingsRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return nestSettings(flat), nil
}

// UpdateSettings flattens the nested settings document back into
// dotted keys and upserts them.
func (s *ConfigService) UpdateSettings(tree map[string]interface{}) error {
	flat := flattenSettings(tree, "")
	return s.settingsRepo.UpsertMany(flat)
}

func (s *ConfigService) ResetSettings() error {
	return s.settingsRepo.Replace(defaultSystemSettings)
}

func (s *ConfigService) Cities() ([]entities.CityResponse, error) {
	cities, err := s.cityRepo.List()
	if err != nil {
		return nil, err
	}
	responses := make([]entities.CityResponse, 0, len(cities))
	for _, c := range cities {
		display := c.Name
		if zh, ok := defaultCityDisplayNames[c.Name]; ok {
			display = zh
		}
		icon := c.Icon
		if icon == "" {
			icon = "🏙️"
		}
		responses = append(responses, entities.CityResponse{
			ID:          strings.ToLower(c.Name),
			Name:        c.Name,
			DisplayName: display,
			IsActive:    c.IsActive,
			Icon:        icon,
		})
	}
	return responses, nil
}

func (s *ConfigService) CreateCity(name, icon string, isActive bool) error {
	if name == "" {
		return fmt.Errorf("city name cannot be empty")
	}
	if icon == "" {
		icon = "🏙️"
	}
	return s.cityRepo.Create(name, icon, isActive)
}

func (s *ConfigService) UpdateCity(oldName, newName, icon string, isActive bool) error {
	if newName == "" {
		newName = oldName
	}
	if icon == "" {
		icon = "🏙️"
	}
	return s.cityRepo.Update(oldName, newName, icon, isActive)
}

func (s *ConfigService) UpdateCityStatuses(cities []db.City) error {
	for _, c := range cities {
		icon := c.Icon
		if icon == "" {
			icon = "🏙️"
		}
		if err := s.cityRepo.UpdateStatus(c.Name, icon, c.IsActive); err != nil {
			return err
		}
	}
	return nil
}

func (s *ConfigService) DeleteCity(name string) error {
	return s.cityRepo.Delete(name)
}

func (s *ConfigService) ActiveCityNames() ([]string, error) {
	return s.cityRepo.ListActiveNames()
}

// Stored JSON shapes. These mirror what the admin dashboard writes;
// the engine types stay independent of them.

type areaRatesDoc struct {
	WithVehicle struct {
		BaseRate            decimal.Decimal `json:"baseRate"`
		AdditionalPersonFee decimal.Decimal `json:"additionalPersonFee"`
	} `json:"withVehicle"`
	WithoutVehicle struct {
		BaseRate decimal.Decimal `json:"baseRate"`
	} `json:"withoutVehicle"`
}

type localSettingsDoc struct {
	MinimumHours    int              `json:"minimumHours"`
	DepositRequired int              `json:"depositRequired"`
	DepositCAD      *decimal.Decimal `json:"depositCAD"`
	DepositRMB      *decimal.Decimal `json:"depositRMB"`
}

type storageItemDoc struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	Billing     string          `json:"billing,omitempty"`
}

// settingText is a string that also accepts bare JSON numbers and
// bools. Settings coercion turns numeric-looking leaves into numbers
// on read, so a fee named "24" must still parse as text.
type settingText string

func (t *settingText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = settingText(s)
		return nil
	}
	*t = settingText(bytes.Trim(data, `"`))
	return nil
}

type dynamicFeeDoc struct {
	ID      settingText     `json:"id"`
	NameZh  settingText     `json:"nameZh"`
	NameEn  settingText     `json:"nameEn"`
	Mode    settingText     `json:"mode"`
	Amount  decimal.Decimal `json:"amount"`
	Enabled bool            `json:"enabled"`
	Scope   settingText     `json:"scope,omitempty"`
	Order   int             `json:"order,omitempty"`
}

type taxFeesDoc struct {
	GstRate              decimal.Decimal          `json:"gstRate"`
	PstRate              decimal.Decimal          `json:"pstRate"`
	GstEnabled           bool                     `json:"gstEnabled"`
	PstEnabled           bool                     `json:"pstEnabled"`
	FuelSurcharge        decimal.Decimal          `json:"fuelSurcharge"`
	FuelSurchargeEnabled bool                     `json:"fuelSurchargeEnabled"`
	InsuranceRate        decimal.Decimal          `json:"insuranceRate"`
	InsuranceEnabled     bool                     `json:"insuranceEnabled"`
	PackagingFee         decimal.Decimal          `json:"packagingFee"`
	PackagingEnabled     bool                     `json:"packagingEnabled"`
	DynamicFees          map[string]dynamicFeeDoc `json:"dynamicFees,omitempty"`
}

// EngineConfig assembles the full pricing.Config for one pricing
// session from the stored configuration.
func (s *ConfigService) EngineConfig() (pricing.Config, error) {
	stored, err := s.pricingRepo.GetAll()
	if err != nil {
		return pricing.Config{}, err
	}

	var cfg pricing.Config

	if raw, ok := stored["intercityPricing"]; ok {
		if err := json.Unmarshal([]byte(raw), &cfg.Intercity); err != nil {
			return pricing.Config{}, fmt.Errorf("parsing intercityPricing: %w", err)
		}
	} else {
		return pricing.Config{}, fmt.Errorf("intercityPricing: %w", pricing.ErrConfigMissing)
	}

	if raw, ok := stored["intercityLocalServiceRate"]; ok {
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return pricing.Config{}, fmt.Errorf("parsing intercityLocalServiceRate: %w", err)
		}
		cfg.LocalServiceRate = rate
	} else {
		return pricing.Config{}, fmt.Errorf("intercityLocalServiceRate: %w", pricing.ErrConfigMissing)
	}

	local, err := localRatesFromConfig(stored)
	if err != nil {
		return pricing.Config{}, err
	}
	cfg.Local = local

	catalog, err := catalogFromConfig(stored)
	if err != nil {
		return pricing.Config{}, err
	}
	cfg.Storage = catalog

	taxAndFees, err := s.taxFeeConfig()
	if err != nil {
		return pricing.Config{}, err
	}
	cfg.TaxAndFees = taxAndFees

	return cfg, nil
}

func localRatesFromConfig(stored map[string]string) (pricing.LocalMovingRates, error) {
	rates := pricing.LocalMovingRates{Areas: make(map[pricing.AreaTier]pricing.AreaRates, 2)}

	areas := map[pricing.AreaTier]string{
		pricing.AreaStandard: "localMovingStandardArea",
		pricing.AreaPremium:  "localMovingPremiumArea",
	}
	for tier, key := range areas {
		raw, ok := stored[key]
		if !ok {
			return pricing.LocalMovingRates{}, fmt.Errorf("%s: %w", key, pricing.ErrConfigMissing)
		}
		var doc areaRatesDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return pricing.LocalMovingRates{}, fmt.Errorf("parsing %s: %w", key, err)
		}
		rates.Areas[tier] = pricing.AreaRates{
			WithVehicle: pricing.VehicleRates{
				BaseRatePerHour:            doc.WithVehicle.BaseRate,
				AdditionalPersonFeePerHour: doc.WithVehicle.AdditionalPersonFee,
			},
			WithoutVehicle: pricing.CrewRates{
				BaseRatePerPersonPerHour: doc.WithoutVehicle.BaseRate,
			},
		}
	}

	raw, ok := stored["localMovingSettings"]
	if !ok {
		return pricing.LocalMovingRates{}, fmt.Errorf("localMovingSettings: %w", pricing.ErrConfigMissing)
	}
	var doc localSettingsDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return pricing.LocalMovingRates{}, fmt.Errorf("parsing localMovingSettings: %w", err)
	}
	rates.Settings = pricing.LocalMovingSettings{
		MinimumHours:           doc.MinimumHours,
		DepositPersonThreshold: doc.DepositRequired,
	}
	switch {
	case doc.DepositCAD != nil:
		rates.Settings.DepositCAD = *doc.DepositCAD
	case doc.DepositRMB != nil:
		// Older snapshots stored the RMB figure; CAD is RMB/5.
		rates.Settings.DepositCAD = doc.DepositRMB.Div(decimal.NewFromInt(5))
	}
	return rates, nil
}

func catalogFromConfig(stored map[string]string) (pricing.StorageCatalog, error) {
	raw, ok := stored["storageItems"]
	if !ok {
		return nil, fmt.Errorf("storageItems: %w", pricing.ErrConfigMissing)
	}
	var docs map[string]storageItemDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("parsing storageItems: %w", err)
	}

	catalog := make(pricing.StorageCatalog, len(docs))
	for key, doc := range docs {
		billing := pricing.BillingKind(doc.Billing)
		if billing != pricing.BillingRecurring && billing != pricing.BillingOneTime {
			// Legacy configs have no billing field; the old
			// convention keyed one-time services on "Pickup".
			if strings.Contains(key, "Pickup") {
				billing = pricing.BillingOneTime
			} else {
				billing = pricing.BillingRecurring
			}
		}
		catalog[key] = pricing.StorageItem{
			Name:        doc.Name,
			Price:       doc.Price,
			Icon:        doc.Icon,
			Description: doc.Description,
			Billing:     billing,
		}
	}
	return catalog, nil
}

func (s *ConfigService) taxFeeConfig() (pricing.TaxFeeConfig, error) {
	tree, err := s.SettingsTree()
	if err != nil {
		return pricing.TaxFeeConfig{}, err
	}
	return taxFeeConfigFromTree(tree)
}

func taxFeeConfigFromTree(tree map[string]interface{}) (pricing.TaxFeeConfig, error) {
	subtree, ok := tree["taxAndFees"]
	if !ok {
		return pricing.TaxFeeConfig{}, fmt.Errorf("taxAndFees settings: %w", pricing.ErrConfigMissing)
	}

	// Round-trip the coerced subtree through JSON to get typed fields.
	encoded, err := json.Marshal(subtree)
	if err != nil {
		return pricing.TaxFeeConfig{}, err
	}
	var doc taxFeesDoc
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return pricing.TaxFeeConfig{}, fmt.Errorf("parsing taxAndFees settings: %w", err)
	}

	cfg := pricing.TaxFeeConfig{
		GSTRate:              doc.GstRate,
		GSTEnabled:           doc.GstEnabled,
		PSTRate:              doc.PstRate,
		PSTEnabled:           doc.PstEnabled,
		FuelSurchargeRate:    doc.FuelSurcharge,
		FuelSurchargeEnabled: doc.FuelSurchargeEnabled,
		InsuranceRate:        doc.InsuranceRate,
		InsuranceEnabled:     doc.InsuranceEnabled,
		PackagingFee:         doc.PackagingFee,
		PackagingEnabled:     doc.PackagingEnabled,
	}
	if len(doc.DynamicFees) > 0 {
		cfg.DynamicFees = make(map[string]pricing.DynamicFee, len(doc.DynamicFees))
		for id, fee := range doc.DynamicFees {
			if fee.ID == "" {
				fee.ID = settingText(id)
			}
			cfg.DynamicFees[id] = pricing.DynamicFee{
				ID:      string(fee.ID),
				NameZh:  string(fee.NameZh),
				NameEn:  string(fee.NameEn),
				Mode:    pricing.FeeMode(fee.Mode),
				Amount:  fee.Amount,
				Enabled: fee.Enabled,
				Scope:   pricing.ServiceScope(fee.Scope),
				Order:   fee.Order,
			}
		}
	}
	return cfg, nil
}

// flattenSettings turns a nested settings document into dotted keys
// with stringified leaf values, matching the storage format.
func flattenSettings(tree map[string]interface{}, prefix string) map[string]string {
	flat := make(map[string]string)
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			for k, v := range flattenSettings(nested, full) {
				flat[k] = v
			}
			continue
		}
		flat[full] = settingString(value)
	}
	return flat
}

func settingString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

// nestSettings rebuilds the nested document from dotted keys and
// coerces "true"/"false" to bools and numeric strings to numbers.
func nestSettings(flat map[string]string) map[string]interface{} {
	tree := make(map[string]interface{})
	for key, value := range flat {
		parts := strings.Split(key, ".")
		current := tree
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = coerceSetting(value)
	}
	return tree
}

func coerceSetting(value string) interface{} {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if number, err := strconv.ParseFloat(value, 64); err == nil {
		return number
	}
	return value
}
