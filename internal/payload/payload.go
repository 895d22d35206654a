package payload

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Errors returned by the payload builders. These are presence checks
// only: the builders never validate that a phone number or address is
// well-formed, per the malformed-in/malformed-out contract.
var (
	ErrEmptySSID    = errors.New("wifi network name is required")
	ErrEmptyAddress = errors.New("email address is required")
	ErrEmptyNumber  = errors.New("phone number is required")
	ErrEmptyURL     = errors.New("url is required")
	ErrBadWifiAuth  = errors.New("wifi auth must be WPA, WEP, or nopass")
)

// WifiAuth is the authentication mode encoded into a WIFI: payload.
type WifiAuth string

const (
	// AuthWPA covers WPA and WPA2 personal networks.
	AuthWPA WifiAuth = "WPA"
	// AuthWEP is legacy WEP.
	AuthWEP WifiAuth = "WEP"
	// AuthNone is an open network.
	AuthNone WifiAuth = "nopass"
)

// ParseWifiAuth maps a user-supplied auth name to a WifiAuth.
// Empty input defaults to WPA.
func ParseWifiAuth(s string) (WifiAuth, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "WPA", "WPA2", "WPA3":
		return AuthWPA, nil
	case "WEP":
		return AuthWEP, nil
	case "NOPASS", "NONE", "OPEN":
		return AuthNone, nil
	default:
		return "", ErrBadWifiAuth
	}
}

// Wifi builds a WIFI: network join payload:
//
//	WIFI:T:WPA;S:ssid;P:password;H:true;;
//
// The password is omitted for open networks and the H flag only
// appears for hidden networks.
func Wifi(ssid, password string, auth WifiAuth, hidden bool) (string, error) {
	if ssid == "" {
		return "", ErrEmptySSID
	}

	var b strings.Builder
	b.WriteString("WIFI:")
	fmt.Fprintf(&b, "T:%s;", auth)
	fmt.Fprintf(&b, "S:%s;", escapeWifi(ssid))
	if auth != AuthNone && password != "" {
		fmt.Fprintf(&b, "P:%s;", escapeWifi(password))
	}
	if hidden {
		b.WriteString("H:true;")
	}
	b.WriteString(";")
	return b.String(), nil
}

// escapeWifi backslash-escapes the characters the WIFI: scheme
// reserves: backslash, semicolon, comma, double quote, and colon.
func escapeWifi(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', ';', ',', '"', ':':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// MailTo builds a mailto: payload with optional subject and body query
// parameters.
func MailTo(address, subject, body string) (string, error) {
	if address == "" {
		return "", ErrEmptyAddress
	}

	out := "mailto:" + address

	params := url.Values{}
	if subject != "" {
		params.Set("subject", subject)
	}
	if body != "" {
		params.Set("body", body)
	}
	if len(params) > 0 {
		// mailto bodies conventionally use %20, not + for spaces.
		out += "?" + strings.ReplaceAll(params.Encode(), "+", "%20")
	}
	return out, nil
}

// Tel builds a tel: payload. Spaces are stripped so dialers treat the
// number as a single token; everything else passes through untouched.
func Tel(number string) (string, error) {
	if number == "" {
		return "", ErrEmptyNumber
	}
	return "tel:" + strings.ReplaceAll(number, " ", ""), nil
}

// SMS builds an sms: payload with an optional prefilled body.
func SMS(number, body string) (string, error) {
	if number == "" {
		return "", ErrEmptyNumber
	}
	out := "sms:" + strings.ReplaceAll(number, " ", "")
	if body != "" {
		out += "?body=" + url.QueryEscape(body)
	}
	return out, nil
}

// Geo builds a geo: payload from decimal coordinates.
func Geo(lat, lon float64) string {
	return fmt.Sprintf("geo:%g,%g", lat, lon)
}

// URL normalizes a user-entered link for QR encoding. A missing scheme
// defaults to https since form users rarely type one.
func URL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}
	if !strings.Contains(raw, "://") && !strings.HasPrefix(strings.ToLower(raw), "mailto:") {
		raw = "https://" + raw
	}
	return raw, nil
}
