package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"codecard/internal/logging"
	"codecard/internal/payload"
	"codecard/internal/startup"
)

//go:embed templates/*.html
var templateFS embed.FS

var landingTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderTemplate executes one of the embedded pages. Template errors
// after headers are written cannot be reported to the client, only
// logged.
func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTemplates.ExecuteTemplate(w, name, data); err != nil {
		logging.Error("failed to render %s: %v", name, err)
	}
}

// Landing serves the root page. With a view query parameter it renders
// one of the shareable landing views; otherwise the service index.
func (h *Handlers) Landing(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch query.Get("view") {
	case payload.ViewContact:
		renderTemplate(w, "landing_contact.html", payload.ContactLanding{
			Name:     query.Get("name"),
			VCardURL: query.Get("vcf"),
			WhatsApp: query.Get("wa"),
			Website:  query.Get("site"),
			MailTo:   query.Get("mailto"),
			Tel:      query.Get("tel"),
		})

	case payload.ViewLinks:
		links, err := payload.DecodeLinks(query.Get("links"))
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		renderTemplate(w, "landing_links.html", struct {
			Title string
			Links []payload.Link
		}{
			Title: query.Get("title"),
			Links: links,
		})

	case payload.ViewEvent:
		renderTemplate(w, "landing_event.html", payload.EventLanding{
			Title:       query.Get("title"),
			Date:        query.Get("date"),
			Location:    query.Get("loc"),
			Description: query.Get("desc"),
		})

	case "":
		renderTemplate(w, "index.html", struct{ Version string }{Version: startup.Version})

	default:
		writeJSONError(w, "unknown view", http.StatusNotFound)
	}
}

// GenerateContactLandingQR builds a shareable contact card URL from
// the form and returns it as a QR image.
func (h *Handlers) GenerateContactLandingQR(w http.ResponseWriter, r *http.Request) {
	landing := payload.ContactLanding{
		Name:     r.FormValue("name"),
		VCardURL: r.FormValue("vcf"),
		WhatsApp: r.FormValue("wa"),
		Website:  r.FormValue("site"),
		MailTo:   r.FormValue("mailto"),
		Tel:      r.FormValue("tel"),
	}

	h.serveQR(w, r, "qr", payload.ContactLandingURL(h.config.LandingBaseURL, landing))
}

// GenerateLinksLandingQR builds a link hub URL and returns its QR
// image. Links arrive as the same JSON pair array the landing page
// decodes.
func (h *Handlers) GenerateLinksLandingQR(w http.ResponseWriter, r *http.Request) {
	links, err := payload.DecodeLinks(r.FormValue("links"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(links) == 0 {
		writeJSONError(w, "at least one link is required", http.StatusBadRequest)
		return
	}

	landingURL, err := payload.LinksLandingURL(h.config.LandingBaseURL, r.FormValue("title"), links)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", landingURL)
}

// GenerateEventLandingQR builds an event info URL and returns its QR
// image.
func (h *Handlers) GenerateEventLandingQR(w http.ResponseWriter, r *http.Request) {
	event := payload.EventLanding{
		Title:       r.FormValue("title"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("loc"),
		Description: r.FormValue("desc"),
	}
	if event.Title == "" {
		writeJSONError(w, "title is required", http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", payload.EventLandingURL(h.config.LandingBaseURL, event))
}
