package payload

import (
	"errors"
	"testing"
)

func TestParseWifiAuth(t *testing.T) {
	tests := []struct {
		input    string
		expected WifiAuth
		wantErr  bool
	}{
		{"", AuthWPA, false},
		{"wpa", AuthWPA, false},
		{"WPA2", AuthWPA, false},
		{"wpa3", AuthWPA, false},
		{"wep", AuthWEP, false},
		{"nopass", AuthNone, false},
		{"open", AuthNone, false},
		{"none", AuthNone, false},
		{"rot13", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWifiAuth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWifiAuth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseWifiAuth(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWifi(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		password string
		auth     WifiAuth
		hidden   bool
		expected string
	}{
		{
			name:     "wpa network",
			ssid:     "HomeNet",
			password: "hunter2",
			auth:     AuthWPA,
			expected: "WIFI:T:WPA;S:HomeNet;P:hunter2;;",
		},
		{
			name:     "hidden network",
			ssid:     "Lab",
			password: "pw",
			auth:     AuthWPA,
			hidden:   true,
			expected: "WIFI:T:WPA;S:Lab;P:pw;H:true;;",
		},
		{
			name:     "open network drops password",
			ssid:     "Cafe",
			password: "ignored",
			auth:     AuthNone,
			expected: "WIFI:T:nopass;S:Cafe;;",
		},
		{
			name:     "reserved characters escaped",
			ssid:     `Net;One:"A,B"`,
			password: `p\ss`,
			auth:     AuthWPA,
			expected: `WIFI:T:WPA;S:Net\;One\:\"A\,B\";P:p\\ss;;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wifi(tt.ssid, tt.password, tt.auth, tt.hidden)
			if err != nil {
				t.Fatalf("Wifi() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Wifi() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWifiRequiresSSID(t *testing.T) {
	_, err := Wifi("", "pw", AuthWPA, false)
	if !errors.Is(err, ErrEmptySSID) {
		t.Errorf("expected ErrEmptySSID, got %v", err)
	}
}

func TestMailTo(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		subject  string
		body     string
		expected string
	}{
		{
			name:     "bare address",
			address:  "a@b.c",
			expected: "mailto:a@b.c",
		},
		{
			name:     "subject only",
			address:  "a@b.c",
			subject:  "Hello there",
			expected: "mailto:a@b.c?subject=Hello%20there",
		},
		{
			name:     "subject and body",
			address:  "a@b.c",
			subject:  "Hi",
			body:     "line one",
			expected: "mailto:a@b.c?body=line%20one&subject=Hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MailTo(tt.address, tt.subject, tt.body)
			if err != nil {
				t.Fatalf("MailTo() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("MailTo() = %q, want %q", got, tt.expected)
			}
		})
	}

	if _, err := MailTo("", "", ""); !errors.Is(err, ErrEmptyAddress) {
		t.Errorf("expected ErrEmptyAddress, got %v", err)
	}
}

func TestTel(t *testing.T) {
	got, err := Tel("+1 555 010 0000")
	if err != nil {
		t.Fatalf("Tel() error: %v", err)
	}
	if got != "tel:+15550100000" {
		t.Errorf("Tel() = %q", got)
	}

	if _, err := Tel(""); !errors.Is(err, ErrEmptyNumber) {
		t.Errorf("expected ErrEmptyNumber, got %v", err)
	}
}

func TestSMS(t *testing.T) {
	got, err := SMS("+1 555 0100", "see you at 5")
	if err != nil {
		t.Fatalf("SMS() error: %v", err)
	}
	if got != "sms:+15550100?body=see+you+at+5" {
		t.Errorf("SMS() = %q", got)
	}

	got, err = SMS("+15550100", "")
	if err != nil {
		t.Fatalf("SMS() error: %v", err)
	}
	if got != "sms:+15550100" {
		t.Errorf("SMS() without body = %q", got)
	}
}

func TestGeo(t *testing.T) {
	got := Geo(48.8584, 2.2945)
	if got != "geo:48.8584,2.2945" {
		t.Errorf("Geo() = %q", got)
	}

	if got := Geo(-33.9, 151.2); got != "geo:-33.9,151.2" {
		t.Errorf("Geo() negative = %q", got)
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"http://example.com/x", "http://example.com/x"},
		{"example.com", "https://example.com"},
		{"  example.com/path  ", "https://example.com/path"},
		{"mailto:a@b.c", "mailto:a@b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := URL(tt.input)
			if err != nil {
				t.Fatalf("URL() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("URL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := URL("   "); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("expected ErrEmptyURL, got %v", err)
	}
}
