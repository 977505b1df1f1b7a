package usecase

import (
	"encoding/json"
	"html/template"
	"strconv"
	"strings"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/domain/pricing"
)

var projectTypeLabels = map[entities.ProjectType]string{
	entities.ProjectTypeLanding:   "Landing Page",
	entities.ProjectTypeCorporate: "Sitio Corporativo",
	entities.ProjectTypeEcommerce: "E-commerce",
	entities.ProjectTypeIntranet:  "Intranet/Sistema",
}

var timelineDescriptions = map[entities.Timeline]string{
	entities.TimelineRush:     "Prioridad máxima",
	entities.TimelineSoon:     "Lo necesito pronto",
	entities.TimelineFlexible: "Tengo tiempo para planificar",
}

var sectionLabels = map[string]string{
	"hero":          "Hero / Portada principal",
	"quienes_somos": "Quiénes somos / Empresa",
	"servicios":     "Servicios o soluciones",
	"productos":     "Productos o catálogo",
	"casos_exito":   "Casos de éxito / Portafolio",
	"testimonios":   "Testimonios",
	"faq":           "Preguntas frecuentes",
	"blog_noticias": "Blog o noticias",
	"contacto":      "Contacto / formulario",
	"agenda":        "Agenda / reservas",
}

var answerFeatureLabels = [][2]string{
	{"needsBlog", "Blog integrado"},
	{"multiLanguage", "Multi-idioma"},
	{"needsLogin", "Sistema de login"},
	{"externalIntegrations", "Integraciones externas"},
	{"needsPaymentGateway", "Pasarela de pagos"},
}

var answerAddonLabels = [][2]string{
	{"addon_seoInicial", "SEO inicial"},
	{"addon_copywriting", "Copywriting profesional"},
	{"addon_integracionPagos", "Integración de pagos"},
	{"addon_mantenimientoMensual", "Mantenimiento mensual"},
	{"addon_dominioCorreos", "Dominio + correos"},
	{"addon_googleAnalytics", "Google Analytics"},
}

type pdfItemView struct {
	Name   string
	Amount string
}

type pdfPackageView struct {
	Name        string
	Recommended bool
	Total       string
	Items       []pdfItemView
}

type pdfView struct {
	Folio          string
	Date           string
	ValidUntil     string
	ClientName     string
	ClientEmail    string
	ClientWhatsapp string
	ProjectLabel   string
	TimelineLabel  string
	SectionsLine   string
	Features       []string
	Addons         []string
	Packages       []pdfPackageView
}

// buildQuoteHTML renders the printable quote document handed to the external
// HTML-to-PDF service.
func buildQuoteHTML(detail QuoteDetail) (string, error) {
	answerMap := make(map[string]string, len(detail.Answers))
	for _, a := range detail.Answers {
		answerMap[a.Key] = a.Value
	}

	var features []string
	for _, kv := range answerFeatureLabels {
		if answerMap[kv[0]] == "true" {
			features = append(features, kv[1])
		}
	}
	var addons []string
	for _, kv := range answerAddonLabels {
		if answerMap[kv[0]] == "true" {
			addons = append(addons, kv[1])
		}
	}

	quote := detail.Quote
	projectLabel, ok := projectTypeLabels[quote.ProjectType]
	if !ok {
		projectLabel = string(quote.ProjectType)
	}
	if quote.Industry != "" {
		projectLabel += " (" + quote.Industry + ")"
	}
	timelineLabel, ok := timelineDescriptions[quote.Timeline]
	if !ok {
		timelineLabel = string(quote.Timeline)
	}

	view := pdfView{
		Folio:          quote.Folio,
		Date:           quote.CreatedAt.Format("02-01-2006"),
		ValidUntil:     quote.CreatedAt.Add(7 * 24 * time.Hour).Format("02-01-2006"),
		ClientName:     quote.ClientName,
		ClientEmail:    quote.ClientEmail,
		ClientWhatsapp: quote.ClientWhatsapp,
		ProjectLabel:   projectLabel,
		TimelineLabel:  timelineLabel,
		SectionsLine:   strings.Join(sectionLines(answerMap), ", "),
		Features:       features,
		Addons:         addons,
		Packages:       packageViews(detail.Items),
	}

	var sb strings.Builder
	if err := pdfTemplate.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// sectionLines reconstructs the requested sections from the flattened
// answers, falling back to the legacy page count.
func sectionLines(answerMap map[string]string) []string {
	if raw := answerMap["siteSections"]; raw != "" {
		var keys []string
		if err := json.Unmarshal([]byte(raw), &keys); err == nil && len(keys) > 0 {
			lines := make([]string, 0, len(keys))
			for _, key := range keys {
				if label, ok := sectionLabels[key]; ok {
					lines = append(lines, label)
				} else {
					lines = append(lines, key)
				}
			}
			return lines
		}
	}

	pages := 1
	if n, err := strconv.Atoi(answerMap["numPages"]); err == nil && n > 0 {
		pages = n
	}
	return []string{strconv.Itoa(pages) + " sección(es) registradas"}
}

// packageViews regroups the flat item rows by their package name prefix,
// keeping the Basic/Pro/Premium presentation order.
func packageViews(items []entities.QuoteItem) []pdfPackageView {
	names := []string{pricing.PackageBasic, pricing.PackagePro, pricing.PackagePremium}

	views := make([]pdfPackageView, 0, len(names))
	for _, name := range names {
		prefix := "[" + name + "] "

		var rows []pdfItemView
		var total int64
		for _, item := range items {
			if !strings.HasPrefix(item.Name, prefix) {
				continue
			}
			rows = append(rows, pdfItemView{
				Name:   strings.TrimPrefix(item.Name, prefix),
				Amount: formatCLP(item.Amount),
			})
			total += item.Amount
		}

		views = append(views, pdfPackageView{
			Name:        name,
			Recommended: name == pricing.PackagePro,
			Total:       formatCLP(total),
			Items:       rows,
		})
	}
	return views
}

// formatCLP renders a whole-peso amount the Chilean way: $1.008.000.
func formatCLP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}

	if neg {
		return "-$" + sb.String()
	}
	return "$" + sb.String()
}

var pdfTemplate = template.Must(template.New("quote-pdf").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #1f2937; line-height: 1.5; padding: 40px; }
    .header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 40px; padding-bottom: 20px; border-bottom: 2px solid #10b981; }
    .company-name { font-size: 24px; font-weight: bold; color: #059669; }
    .company-tagline { font-size: 12px; color: #6b7280; }
    .folio-section { text-align: right; }
    .folio { font-size: 20px; font-weight: bold; color: #059669; }
    .date { font-size: 12px; color: #6b7280; }
    .section { margin-bottom: 30px; }
    .section-title { font-size: 16px; font-weight: bold; color: #059669; margin-bottom: 12px; padding-bottom: 8px; border-bottom: 1px solid #e5e7eb; }
    .client-info { display: grid; grid-template-columns: 1fr 1fr; gap: 10px; }
    .info-item { font-size: 14px; }
    .info-label { color: #6b7280; }
    .info-value { font-weight: 500; }
    .packages { display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 20px; margin-bottom: 30px; }
    .package { border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px; }
    .package.recommended { border-color: #10b981; background: #f0fdf4; }
    .package-name { font-size: 18px; font-weight: bold; margin-bottom: 8px; }
    .package-price { font-size: 20px; font-weight: bold; color: #059669; margin-bottom: 12px; }
    .package-items { font-size: 12px; }
    .package-item { padding: 4px 0; border-bottom: 1px solid #f3f4f6; }
    .features { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 20px; }
    .feature-tag { background: #f0fdf4; color: #059669; padding: 4px 12px; border-radius: 20px; font-size: 12px; }
    .terms { background: #f9fafb; padding: 20px; border-radius: 8px; font-size: 12px; color: #6b7280; }
    .terms-title { font-weight: bold; color: #374151; margin-bottom: 8px; }
    .terms-list { margin-left: 16px; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e7eb; text-align: center; font-size: 12px; color: #6b7280; }
    .contact-info { margin-top: 10px; }
  </style>
</head>
<body>
  <div class="header">
    <div class="logo-section">
      <div class="company-name">VillaWeb</div>
      <div class="company-tagline">Desarrollo de Software</div>
    </div>
    <div class="folio-section">
      <div class="folio">{{.Folio}}</div>
      <div class="date">Fecha: {{.Date}}</div>
      <div class="date">Válido hasta: {{.ValidUntil}}</div>
    </div>
  </div>

  <div class="section">
    <div class="section-title">Datos del Cliente</div>
    <div class="client-info">
      <div class="info-item"><span class="info-label">Nombre:</span> <span class="info-value">{{.ClientName}}</span></div>
      <div class="info-item"><span class="info-label">Email:</span> <span class="info-value">{{.ClientEmail}}</span></div>
      <div class="info-item"><span class="info-label">WhatsApp:</span> <span class="info-value">{{.ClientWhatsapp}}</span></div>
      <div class="info-item"><span class="info-label">Tipo:</span> <span class="info-value">{{.ProjectLabel}}</span></div>
      <div class="info-item"><span class="info-label">Plazo:</span> <span class="info-value">{{.TimelineLabel}}</span></div>
      <div class="info-item"><span class="info-label">Secciones:</span> <span class="info-value">{{.SectionsLine}}</span></div>
    </div>
  </div>

  {{if or .Features .Addons}}
  <div class="section">
    <div class="section-title">Funcionalidades y Extras</div>
    <div class="features">
      {{range .Features}}<span class="feature-tag">{{.}}</span>{{end}}
      {{range .Addons}}<span class="feature-tag">{{.}}</span>{{end}}
    </div>
  </div>
  {{end}}

  <div class="section">
    <div class="section-title">Opciones de Paquetes</div>
    <div class="packages">
      {{range .Packages}}
      <div class="package{{if .Recommended}} recommended{{end}}">
        <div class="package-name">{{.Name}}{{if .Recommended}} ⭐{{end}}</div>
        <div class="package-price">{{.Total}}</div>
        <div class="package-items">
          {{range .Items}}<div class="package-item">{{.Name}}: {{.Amount}}</div>{{end}}
        </div>
      </div>
      {{end}}
    </div>
  </div>

  <div class="section">
    <div class="terms">
      <div class="terms-title">Términos y Condiciones</div>
      <ul class="terms-list">
        <li>Esta cotización tiene una validez de 7 días desde su emisión.</li>
        <li>Los precios están expresados en pesos chilenos (CLP) e incluyen IVA.</li>
        <li>Forma de pago sugerida: 50% al inicio del proyecto, 50% a la entrega.</li>
        <li>Los tiempos de entrega comienzan a contar desde la recepción del primer pago y el material necesario.</li>
        <li>Incluye hasta 2 rondas de revisiones. Cambios adicionales pueden generar costos extra.</li>
      </ul>
    </div>
  </div>

  <div class="footer">
    <strong>VillaWeb - Desarrollo de Software</strong>
    <div class="contact-info">
      Email: contacto@villaweb.cl | WhatsApp: +56 9 7328 3737
    </div>
  </div>
</body>
</html>
`))
