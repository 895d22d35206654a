package handlers

import (
	"errors"
	"net/http"
	"time"

	"codecard/internal/formats"
	"codecard/internal/logging"
	"codecard/internal/vcard"
)

// contactFromRequest builds a contact from the request form. Multipart
// requests may carry a photo part that gets resized and embedded.
func (h *Handlers) contactFromRequest(r *http.Request) (*vcard.Contact, error) {
	// ParseMultipartForm also handles urlencoded bodies; the limit
	// bounds the in-memory photo buffer.
	if err := r.ParseMultipartForm(h.config.MaxUploadBytes); err != nil &&
		!errors.Is(err, http.ErrNotMultipart) {
		return nil, errors.New("invalid form body")
	}

	contact := &vcard.Contact{
		FirstName:    r.FormValue("first_name"),
		LastName:     r.FormValue("last_name"),
		Organization: r.FormValue("organization"),
		Title:        r.FormValue("title"),
		Department:   r.FormValue("department"),
		Phone:        r.FormValue("phone"),
		Mobile:       r.FormValue("mobile"),
		Email:        r.FormValue("email"),
		Website:      r.FormValue("website"),
		Notes:        r.FormValue("notes"),
	}

	if r.MultipartForm != nil {
		file, _, err := r.FormFile("photo")
		switch {
		case err == nil:
			defer func() {
				if closeErr := file.Close(); closeErr != nil {
					logging.Warn("failed to close photo upload: %v", closeErr)
				}
			}()
			if err := contact.AttachPhoto(file); err != nil {
				return nil, errors.New("photo could not be decoded as an image")
			}
		case errors.Is(err, http.ErrMissingFile):
			// No photo, fine.
		default:
			return nil, errors.New("invalid photo upload")
		}
	}

	if contact.IsEmpty() {
		return nil, errors.New("at least one contact field is required")
	}
	return contact, nil
}

// GenerateVCard serializes the submitted contact as a .vcf download.
func (h *Handlers) GenerateVCard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	contact, err := h.contactFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	version, ok := vcard.ParseVersion(r.FormValue("version"))
	if !ok {
		writeJSONError(w, "version must be 3.0 or 4.0", http.StatusBadRequest)
		return
	}

	card := vcard.Build(contact, version)
	filename := formats.SanitizeFilename(contact.DisplayName(), "contact") + ".vcf"

	h.recordGeneration(r.Context(), "vcard", "vcf", len(card), start)
	serveArtifact(w, []byte(card), formats.ContentTypeVCard, filename)
}

// GenerateVCardQR encodes the submitted contact's vCard as a QR image,
// the scannable business card flow. Photos usually push the payload
// past QR capacity, so they are rejected up front here.
func (h *Handlers) GenerateVCardQR(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(contact.Photo) > 0 {
		writeJSONError(w, "embedded photos do not fit in a QR code", http.StatusBadRequest)
		return
	}

	version, ok := vcard.ParseVersion(r.FormValue("version"))
	if !ok {
		writeJSONError(w, "version must be 3.0 or 4.0", http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "vcard", vcard.Build(contact, version))
}
