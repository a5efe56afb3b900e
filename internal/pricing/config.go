package pricing

import "github.com/shopspring/decimal"

// AreaTier is the local-moving pricing zone.
type AreaTier string

const (
	AreaStandard AreaTier = "standard"
	AreaPremium  AreaTier = "premium"
)

// ServiceScope restricts a dynamic fee to one service type. The empty
// scope means "no context": every enabled fee applies.
type ServiceScope string

const (
	ScopeNone      ServiceScope = ""
	ScopeAll       ServiceScope = "all"
	ScopeLocal     ServiceScope = "local"
	ScopeIntercity ServiceScope = "intercity"
	ScopeStorage   ServiceScope = "storage"
)

// RateTable maps origin city -> destination city -> price per pallet.
// Entries are direction-sensitive; A->B and B->A are stored independently.
type RateTable map[string]map[string]decimal.Decimal

// VehicleRates prices the with-vehicle local moving mode.
type VehicleRates struct {
	BaseRatePerHour            decimal.Decimal
	AdditionalPersonFeePerHour decimal.Decimal
}

// CrewRates prices the labour-only local moving mode.
type CrewRates struct {
	BaseRatePerPersonPerHour decimal.Decimal
}

// AreaRates holds both service modes for one area tier.
type AreaRates struct {
	WithVehicle    VehicleRates
	WithoutVehicle CrewRates
}

// LocalMovingSettings are shared across both area tiers.
//
// The deposit is stored in CAD; the RMB figure shown to customers is
// always CAD * 5. That direction is a policy decision, the two must
// never be stored independently.
type LocalMovingSettings struct {
	MinimumHours           int
	DepositPersonThreshold int
	DepositCAD             decimal.Decimal
}

var rmbPerCAD = decimal.NewFromInt(5)

func (s LocalMovingSettings) DepositRMB() decimal.Decimal {
	return s.DepositCAD.Mul(rmbPerCAD)
}

// LocalMovingRates is the full local-moving rate set.
type LocalMovingRates struct {
	Areas    map[AreaTier]AreaRates
	Settings LocalMovingSettings
}

// BillingKind distinguishes monthly storage items from one-time
// pickup/assembly service fees.
type BillingKind string

const (
	BillingRecurring BillingKind = "recurring"
	BillingOneTime   BillingKind = "oneTime"
)

// StorageItem is one entry of the storage catalog.
type StorageItem struct {
	Name        string
	Price       decimal.Decimal
	Icon        string
	Description string
	Billing     BillingKind
}

// StorageCatalog maps stable item keys (e.g. "queenBed") to items.
type StorageCatalog map[string]StorageItem

// FeeMode is how a dynamic fee amount is interpreted.
type FeeMode string

const (
	FeePercentage FeeMode = "percentage"
	FeeFixed      FeeMode = "fixed"
)

// DynamicFee is one configurable additional fee.
type DynamicFee struct {
	ID      string
	NameZh  string
	NameEn  string
	Mode    FeeMode
	Amount  decimal.Decimal
	Enabled bool
	Scope   ServiceScope
	Order   int
}

// Compute returns the fee amount for the given subtotal. Negative
// configured amounts are treated as zero.
func (f DynamicFee) Compute(subtotal decimal.Decimal) decimal.Decimal {
	amount := f.Amount
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	if f.Mode == FeePercentage {
		return subtotal.Mul(amount).Div(oneHundred)
	}
	return amount
}

// Name returns the localized display name, falling back to the other
// locale when one is empty.
func (f DynamicFee) Name(lang string) string {
	if lang == "zh" {
		if f.NameZh != "" {
			return f.NameZh
		}
		return f.NameEn
	}
	if f.NameEn != "" {
		return f.NameEn
	}
	return f.NameZh
}

// TaxFeeConfig carries tax rates plus the two additional-fee formats.
// When DynamicFees is non-empty it is authoritative and the three
// legacy fields are ignored.
type TaxFeeConfig struct {
	GSTRate    decimal.Decimal
	GSTEnabled bool
	PSTRate    decimal.Decimal
	PSTEnabled bool

	FuelSurchargeRate    decimal.Decimal
	FuelSurchargeEnabled bool
	InsuranceRate        decimal.Decimal
	InsuranceEnabled     bool
	PackagingFee         decimal.Decimal
	PackagingEnabled     bool

	DynamicFees map[string]DynamicFee
}

// Config bundles everything the engine needs for one pricing session.
// It is read from the configuration store once and never mutated here.
type Config struct {
	Intercity        RateTable
	LocalServiceRate decimal.Decimal
	Local            LocalMovingRates
	Storage          StorageCatalog
	TaxAndFees       TaxFeeConfig
}
