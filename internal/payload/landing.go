package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Landing view names, matched by the landing page handler.
const (
	ViewContact = "landing_contact"
	ViewLinks   = "landing_links"
	ViewEvent   = "landing_event"
)

// ContactLanding describes the contact card landing view: a name plus
// up to five action links, each omitted when empty.
type ContactLanding struct {
	Name     string
	VCardURL string
	WhatsApp string
	Website  string
	MailTo   string
	Tel      string
}

// Link is one entry of a link hub landing page.
type Link struct {
	Text string
	URL  string
}

// EventLanding describes the event landing view.
type EventLanding struct {
	Title       string
	Date        string
	Location    string
	Description string
}

// ContactLandingURL builds the shareable URL for a contact card
// landing page hosted at base. Empty fields are left out of the query
// so the page renders only the buttons that have targets.
func ContactLandingURL(base string, c ContactLanding) string {
	params := url.Values{}
	params.Set("view", ViewContact)
	setIfPresent(params, "name", c.Name)
	setIfPresent(params, "vcf", c.VCardURL)
	setIfPresent(params, "wa", c.WhatsApp)
	setIfPresent(params, "site", c.Website)
	setIfPresent(params, "mailto", c.MailTo)
	setIfPresent(params, "tel", c.Tel)
	return base + "?" + params.Encode()
}

// LinksLandingURL builds the shareable URL for a link hub page. Links
// travel as a JSON array of [text, url] pairs in a single parameter.
func LinksLandingURL(base, title string, links []Link) (string, error) {
	pairs := make([][2]string, 0, len(links))
	for _, l := range links {
		if l.URL == "" {
			continue
		}
		text := l.Text
		if text == "" {
			text = l.URL
		}
		pairs = append(pairs, [2]string{text, l.URL})
	}

	encoded, err := json.Marshal(pairs)
	if err != nil {
		return "", fmt.Errorf("failed to encode links: %w", err)
	}

	params := url.Values{}
	params.Set("view", ViewLinks)
	setIfPresent(params, "title", title)
	params.Set("links", string(encoded))
	return base + "?" + params.Encode(), nil
}

// EventLandingURL builds the shareable URL for an event info page.
func EventLandingURL(base string, e EventLanding) string {
	params := url.Values{}
	params.Set("view", ViewEvent)
	setIfPresent(params, "title", e.Title)
	setIfPresent(params, "date", e.Date)
	setIfPresent(params, "loc", e.Location)
	setIfPresent(params, "desc", e.Description)
	return base + "?" + params.Encode()
}

// DecodeLinks parses the JSON link list from a link hub query param.
func DecodeLinks(raw string) ([]Link, error) {
	if raw == "" {
		return nil, nil
	}
	var pairs [][2]string
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("invalid links parameter: %w", err)
	}
	links := make([]Link, 0, len(pairs))
	for _, p := range pairs {
		links = append(links, Link{Text: p[0], URL: p[1]})
	}
	return links, nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
