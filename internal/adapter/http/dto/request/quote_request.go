package request

import (
	"villaweb/internal/domain/entities"
)

// CreateQuoteRequest is the questionnaire wizard payload. Field names follow
// the wizard's JSON contract; older clients send numPages instead of
// siteSections.
type CreateQuoteRequest struct {
	ClientName     string `json:"clientName"`
	ClientEmail    string `json:"clientEmail"`
	ClientWhatsapp string `json:"clientWhatsapp"`

	ProjectType string `json:"projectType"`
	Industry    string `json:"industry"`
	Timeline    string `json:"timeline"`

	SiteSections []string `json:"siteSections"`
	NumPages     int      `json:"numPages"`

	NeedsBlog            bool `json:"needsBlog"`
	MultiLanguage        bool `json:"multiLanguage"`
	NeedsLogin           bool `json:"needsLogin"`
	ExternalIntegrations bool `json:"externalIntegrations"`
	NeedsPaymentGateway  bool `json:"needsPaymentGateway"`

	Addons map[string]bool `json:"addons"`
}

// ToAnswers converts the wire payload into the domain questionnaire. Unknown
// addon keys are carried through; the pricing engine ignores what it does not
// recognize.
func (r CreateQuoteRequest) ToAnswers() entities.QuestionnaireAnswers {
	addons := make(map[entities.AddonKey]bool, len(r.Addons))
	for key, selected := range r.Addons {
		addons[entities.AddonKey(key)] = selected
	}

	return entities.QuestionnaireAnswers{
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientWhatsapp: r.ClientWhatsapp,
		ProjectType:    entities.ProjectType(r.ProjectType),
		Industry:       r.Industry,
		Timeline:       entities.Timeline(r.Timeline),
		Sections: entities.SectionSelection{
			Sections:        r.SiteSections,
			LegacyPageCount: r.NumPages,
		},
		NeedsBlog:            r.NeedsBlog,
		MultiLanguage:        r.MultiLanguage,
		NeedsLogin:           r.NeedsLogin,
		ExternalIntegrations: r.ExternalIntegrations,
		NeedsPaymentGateway:  r.NeedsPaymentGateway,
		Addons:               addons,
	}
}

// QuoteEventRequest is the payload for client-side action logging.
type QuoteEventRequest struct {
	Event    string            `json:"event" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

// UpdateQuoteStatusRequest is the admin status-change payload.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
