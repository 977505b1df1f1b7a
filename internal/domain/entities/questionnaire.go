package entities

// AddonKey identifies one optional add-on service in the questionnaire.
type AddonKey string

const (
	AddonSEOInicial      AddonKey = "seoInicial"
	AddonCopywriting     AddonKey = "copywriting"
	AddonIntegracionPago AddonKey = "integracionPagos"
	AddonMantenimiento   AddonKey = "mantenimientoMensual"
	AddonDominioCorreos  AddonKey = "dominioCorreos"
	AddonGoogleAnalytics AddonKey = "googleAnalytics"
)

// AddonKeys lists the questionnaire add-ons in presentation order.
func AddonKeys() []AddonKey {
	return []AddonKey{
		AddonSEOInicial,
		AddonCopywriting,
		AddonIntegracionPago,
		AddonMantenimiento,
		AddonDominioCorreos,
		AddonGoogleAnalytics,
	}
}

// SectionSelection is the tagged site-size answer: either an explicit set of
// requested section identifiers, or the legacy numeric page count used by
// older questionnaire submissions. It is resolved once at the HTTP boundary;
// the rest of the system only ever calls Count.
type SectionSelection struct {
	Sections        []string
	LegacyPageCount int
}

// Count returns the effective number of requested sections (minimum 1).
func (s SectionSelection) Count() int {
	if len(s.Sections) > 0 {
		return len(s.Sections)
	}
	if s.LegacyPageCount > 1 {
		return s.LegacyPageCount
	}
	return 1
}

// QuestionnaireAnswers is the structured questionnaire response, immutable
// once submitted. It is the sole input of the pricing engine and is flattened
// into QuoteAnswer rows at the persistence edge.
type QuestionnaireAnswers struct {
	ClientName     string
	ClientEmail    string
	ClientWhatsapp string

	ProjectType ProjectType
	Industry    string
	Timeline    Timeline

	Sections SectionSelection

	NeedsBlog            bool
	MultiLanguage        bool
	NeedsLogin           bool
	ExternalIntegrations bool
	NeedsPaymentGateway  bool

	Addons map[AddonKey]bool
}
