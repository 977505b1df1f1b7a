package pricing

import "villaweb/internal/domain/entities"

// Package display names, also used as the storage grouping prefix
// ("[Pro] ..." on persisted item names).
const (
	PackageBasic   = "Basic"
	PackagePro     = "Pro"
	PackagePremium = "Premium"
)

// Addon is one priced optional service. Recurring add-ons are listed to the
// client but never priced into the one-time total.
type Addon struct {
	Label     string
	Price     int64
	Recurring bool
}

// ForcedItem is an ADDON line a package always includes, regardless of what
// the client selected.
type ForcedItem struct {
	Label  string
	Amount int64
}

// PackageConfig describes one of the three offered tiers.
type PackageConfig struct {
	Name        string
	Description string

	// PriceMultiplier scales the project base price for this tier.
	PriceMultiplier float64

	// ExtraFeatures is static marketing copy appended after the
	// answer-derived feature list.
	ExtraFeatures []string

	// ForcedItems are always included as ADDON lines.
	ForcedItems []ForcedItem

	// IncludeSelectedAddons echoes the client's selected non-recurring
	// add-ons as ADDON lines (Premium only in the default tables).
	IncludeSelectedAddons bool

	IsRecommended bool
}

// Config holds the immutable pricing tables. The engine takes it by value so
// tests can substitute alternate tables without touching the algorithm.
type Config struct {
	BasePrices       map[entities.ProjectType]int64
	DefaultBasePrice int64

	TimelineMultipliers map[entities.Timeline]float64
	TimelineLabels      map[entities.Timeline]string

	LanguageMultiplier float64
	ExtraSectionPrice  int64

	Addons map[entities.AddonKey]Addon

	Basic   PackageConfig
	Pro     PackageConfig
	Premium PackageConfig
}

// DefaultConfig returns the production pricing tables (whole CLP units).
func DefaultConfig() Config {
	return Config{
		BasePrices: map[entities.ProjectType]int64{
			entities.ProjectTypeLanding:   250000,
			entities.ProjectTypeCorporate: 500000,
			entities.ProjectTypeEcommerce: 900000,
			entities.ProjectTypeIntranet:  2500000,
		},
		DefaultBasePrice: 250000,

		TimelineMultipliers: map[entities.Timeline]float64{
			entities.TimelineRush:     1.4,
			entities.TimelineSoon:     1.2,
			entities.TimelineFlexible: 1.0,
		},
		TimelineLabels: map[entities.Timeline]string{
			entities.TimelineRush:     "7-10 días",
			entities.TimelineSoon:     "2-3 semanas",
			entities.TimelineFlexible: "4+ semanas",
		},

		LanguageMultiplier: 1.2,
		ExtraSectionPrice:  25000,

		Addons: map[entities.AddonKey]Addon{
			entities.AddonSEOInicial:      {Label: "SEO inicial", Price: 120000},
			entities.AddonCopywriting:     {Label: "Copywriting profesional", Price: 80000},
			entities.AddonIntegracionPago: {Label: "Integración de pagos", Price: 180000},
			entities.AddonMantenimiento:   {Label: "Mantenimiento mensual", Price: 49000, Recurring: true},
			entities.AddonDominioCorreos:  {Label: "Dominio + correos corporativos", Price: 50000},
			entities.AddonGoogleAnalytics: {Label: "Google Analytics", Price: 30000},
		},

		Basic: PackageConfig{
			Name:            PackageBasic,
			Description:     "Lo esencial para comenzar",
			PriceMultiplier: 0.8,
			ExtraFeatures: []string{
				"Diseño responsive básico",
				"Hasta 3 secciones",
				"Formulario de contacto",
				"Entrega estándar",
			},
		},
		Pro: PackageConfig{
			Name:            PackagePro,
			Description:     "La mejor relación calidad-precio",
			PriceMultiplier: 1.0,
			ExtraFeatures: []string{
				"Diseño responsive premium",
				"Hasta 7 secciones",
				"Formulario de contacto avanzado",
				"Optimización de velocidad",
				"Google Analytics incluido",
				"Soporte 30 días",
			},
			ForcedItems: []ForcedItem{
				{Label: "Google Analytics", Amount: 30000},
			},
			IsRecommended: true,
		},
		Premium: PackageConfig{
			Name:            PackagePremium,
			Description:     "Todo incluido, sin preocupaciones",
			PriceMultiplier: 1.3,
			ExtraFeatures: []string{
				"Diseño responsive premium personalizado",
				"Secciones ilimitadas",
				"SEO avanzado incluido",
				"Copywriting profesional",
				"Google Analytics avanzado",
				"Optimización de velocidad",
				"2 meses de mantenimiento",
				"Soporte prioritario 60 días",
				"Todas las integraciones",
			},
			ForcedItems: []ForcedItem{
				{Label: "SEO avanzado", Amount: 120000},
				{Label: "Copywriting profesional", Amount: 80000},
			},
			IncludeSelectedAddons: true,
		},
	}
}
