package pricing

import (
	"math"
	"strconv"
	"strings"

	"villaweb/internal/domain/entities"
)

// LineItem is one priced component of a package breakdown.
type LineItem struct {
	Type   entities.ItemType `json:"type"`
	Name   string            `json:"name"`
	Amount int64             `json:"amount"`
}

// PackageOffer is one priced tier. Total equals the sum of the item amounts;
// MinPrice/MaxPrice apply the ±5% presentation band on top of it.
type PackageOffer struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Total         int64      `json:"total"`
	MinPrice      int64      `json:"min_price"`
	MaxPrice      int64      `json:"max_price"`
	Features      []string   `json:"features"`
	Items         []LineItem `json:"items"`
	IsRecommended bool       `json:"is_recommended"`
}

// Result carries the three tiered offers computed for one questionnaire.
type Result struct {
	Basic   PackageOffer `json:"basic"`
	Pro     PackageOffer `json:"pro"`
	Premium PackageOffer `json:"premium"`
}

// Engine converts questionnaire answers into the three package offers.
//
// Compute is pure and deterministic: no I/O, no clock, no randomness.
// Unrecognized project types or timelines fall back to defaults instead of
// failing, so quote generation never blocks on unknown enum values.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine over the given pricing tables.
func NewEngine(cfg Config) Engine {
	return Engine{cfg: cfg}
}

// selectedAddon pairs an add-on key with its priced catalog entry.
type selectedAddon struct {
	key   entities.AddonKey
	addon Addon
}

// Compute maps answers into the Basic/Pro/Premium breakdowns.
func (e Engine) Compute(a entities.QuestionnaireAnswers) Result {
	basePrice := e.cfg.DefaultBasePrice
	if p, ok := e.cfg.BasePrices[a.ProjectType]; ok {
		basePrice = p
	}

	timelineMultiplier := 1.0
	if m, ok := e.cfg.TimelineMultipliers[a.Timeline]; ok {
		timelineMultiplier = m
	}

	languageMultiplier := 1.0
	if a.MultiLanguage {
		languageMultiplier = e.cfg.LanguageMultiplier
	}

	extraSections := a.Sections.Count() - 1
	if extraSections < 0 {
		extraSections = 0
	}
	extraCost := int64(extraSections) * e.cfg.ExtraSectionPrice

	// Non-recurring add-ons the client selected, in presentation order.
	var selected []selectedAddon
	for _, key := range entities.AddonKeys() {
		if !a.Addons[key] {
			continue
		}
		addon, ok := e.cfg.Addons[key]
		if !ok || addon.Recurring {
			continue
		}
		selected = append(selected, selectedAddon{key: key, addon: addon})
	}

	in := packageInput{
		answers:            a,
		basePrice:          basePrice,
		timelineMultiplier: timelineMultiplier,
		languageMultiplier: languageMultiplier,
		extraSections:      extraSections,
		extraCost:          extraCost,
		selectedAddons:     selected,
	}

	return Result{
		Basic:   e.buildPackage(e.cfg.Basic, in),
		Pro:     e.buildPackage(e.cfg.Pro, in),
		Premium: e.buildPackage(e.cfg.Premium, in),
	}
}

type packageInput struct {
	answers            entities.QuestionnaireAnswers
	basePrice          int64
	timelineMultiplier float64
	languageMultiplier float64
	extraSections      int
	extraCost          int64
	selectedAddons     []selectedAddon
}

func (e Engine) buildPackage(pkg PackageConfig, in packageInput) PackageOffer {
	// Rounding happens after each multiplication stage; the itemized
	// MULTIPLIER deltas are derived from the staged values, so the item sum
	// can differ from a single-stage total by a few units. Accepted.
	packageBase := round(float64(in.basePrice) * pkg.PriceMultiplier)
	packageWithTime := round(float64(packageBase) * in.timelineMultiplier)

	items := []LineItem{
		{
			Type:   entities.ItemTypeBase,
			Name:   "Desarrollo web " + strings.ToLower(string(in.answers.ProjectType)),
			Amount: packageBase,
		},
	}

	if in.timelineMultiplier > 1 {
		items = append(items, LineItem{
			Type:   entities.ItemTypeMultiplier,
			Name:   "Urgencia (" + e.timelineLabel(in.answers.Timeline) + ")",
			Amount: round(float64(packageBase) * (in.timelineMultiplier - 1)),
		})
	}

	if in.languageMultiplier > 1 {
		items = append(items, LineItem{
			Type:   entities.ItemTypeMultiplier,
			Name:   "Multi-idioma (+20%)",
			Amount: round(float64(packageWithTime) * (in.languageMultiplier - 1)),
		})
	}

	if in.extraSections > 0 {
		items = append(items, LineItem{
			Type:   entities.ItemTypeExtra,
			Name:   strconv.Itoa(in.extraSections) + " sección(es) adicional(es)",
			Amount: in.extraCost,
		})
	}

	for _, forced := range pkg.ForcedItems {
		items = append(items, LineItem{
			Type:   entities.ItemTypeAddon,
			Name:   forced.Label,
			Amount: forced.Amount,
		})
	}

	if pkg.IncludeSelectedAddons {
		for _, sel := range in.selectedAddons {
			items = append(items, LineItem{
				Type:   entities.ItemTypeAddon,
				Name:   sel.addon.Label,
				Amount: sel.addon.Price,
			})
		}
	}

	var total int64
	for _, it := range items {
		total += it.Amount
	}

	features := append(baseFeatures(in.answers), pkg.ExtraFeatures...)

	return PackageOffer{
		Name:          pkg.Name,
		Description:   pkg.Description,
		Total:         total,
		MinPrice:      round(float64(total) * 0.95),
		MaxPrice:      round(float64(total) * 1.05),
		Features:      features,
		Items:         items,
		IsRecommended: pkg.IsRecommended,
	}
}

func (e Engine) timelineLabel(t entities.Timeline) string {
	if label, ok := e.cfg.TimelineLabels[t]; ok {
		return label
	}
	return string(t)
}

// baseFeatures derives the answer-dependent feature strings shared by all
// three packages.
func baseFeatures(a entities.QuestionnaireAnswers) []string {
	var features []string

	switch a.ProjectType {
	case entities.ProjectTypeLanding:
		features = append(features, "Landing page profesional")
	case entities.ProjectTypeCorporate:
		features = append(features, "Sitio web corporativo completo")
	case entities.ProjectTypeEcommerce:
		features = append(features,
			"Tienda online completa",
			"Carrito de compras",
			"Gestión de inventario",
		)
	case entities.ProjectTypeIntranet:
		features = append(features,
			"Sistema intranet empresarial",
			"Panel de administración",
			"Gestión de usuarios",
		)
	}

	if a.NeedsBlog {
		features = append(features, "Blog integrado")
	}
	if a.MultiLanguage {
		features = append(features, "Soporte multi-idioma")
	}
	if a.NeedsLogin {
		features = append(features, "Sistema de login/usuarios")
	}
	if a.NeedsPaymentGateway {
		features = append(features, "Pasarela de pagos")
	}
	if a.ExternalIntegrations {
		features = append(features, "Integraciones externas")
	}

	return features
}

// round applies half-up rounding to the nearest whole currency unit.
func round(v float64) int64 {
	return int64(math.Round(v))
}
