package vcard

import (
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
		ok       bool
	}{
		{"", Version3, true},
		{"3", Version3, true},
		{"3.0", Version3, true},
		{"4", Version4, true},
		{"4.0", Version4, true},
		{"2.1", "", false},
		{"latest", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVersion(tt.input)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ParseVersion(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestBuildEnvelope(t *testing.T) {
	c := &Contact{FirstName: "Ada", LastName: "Lovelace"}
	out := Build(c, Version3)

	if !strings.HasPrefix(out, "BEGIN:VCARD\r\n") {
		t.Errorf("missing BEGIN envelope: %q", out)
	}
	if !strings.HasSuffix(out, "END:VCARD\r\n") {
		t.Errorf("missing END envelope: %q", out)
	}
	if !strings.Contains(out, "VERSION:3.0\r\n") {
		t.Errorf("missing version line: %q", out)
	}
}

// Non-empty fields must produce their tagged line; empty fields must not.
func TestBuildFieldPresence(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    []string
		absent  []string
	}{
		{
			name: "full record",
			contact: Contact{
				FirstName:    "Grace",
				LastName:     "Hopper",
				Organization: "US Navy",
				Department:   "Research",
				Title:        "Rear Admiral",
				Phone:        "+1 555 0100",
				Mobile:       "+1 555 0101",
				Email:        "grace@example.com",
				Website:      "https://example.com",
				Notes:        "COBOL",
			},
			want: []string{
				"N:Hopper;Grace;;;",
				"FN:Grace Hopper",
				"ORG:US Navy;Research",
				"TITLE:Rear Admiral",
				"TEL;TYPE=WORK,VOICE:+1 555 0100",
				"TEL;TYPE=CELL,VOICE:+1 555 0101",
				"EMAIL;TYPE=INTERNET:grace@example.com",
				"URL:https://example.com",
				"NOTE:COBOL",
			},
		},
		{
			name:    "name only",
			contact: Contact{FirstName: "Ada"},
			want:    []string{"N:;Ada;;;", "FN:Ada"},
			absent:  []string{"ORG", "TITLE", "TEL", "EMAIL", "URL", "NOTE", "PHOTO"},
		},
		{
			name:    "org without department",
			contact: Contact{Organization: "Initech"},
			want:    []string{"ORG:Initech", "FN:Initech"},
			absent:  []string{"\r\nN:", "ORG:Initech;"},
		},
		{
			name:    "empty record still has fallback FN",
			contact: Contact{},
			want:    []string{"FN:Unknown"},
			absent:  []string{"\r\nN:", "ORG", "TEL", "EMAIL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Build(&tt.contact, Version3)
			for _, line := range tt.want {
				if !strings.Contains(out, line) {
					t.Errorf("expected %q in output:\n%s", line, out)
				}
			}
			for _, tag := range tt.absent {
				if strings.Contains(out, tag) {
					t.Errorf("did not expect %q in output:\n%s", tag, out)
				}
			}
		})
	}
}

func TestBuildVersion4Lines(t *testing.T) {
	c := &Contact{
		FirstName: "Ada",
		Mobile:    "+44 20 0000",
		Email:     "ada@example.org",
	}
	out := Build(c, Version4)

	if !strings.Contains(out, "VERSION:4.0\r\n") {
		t.Errorf("missing 4.0 version line:\n%s", out)
	}
	if !strings.Contains(out, "TEL;TYPE=cell:+44 20 0000") {
		t.Errorf("missing 4.0 TEL line:\n%s", out)
	}
	if !strings.Contains(out, "EMAIL:ada@example.org") {
		t.Errorf("missing bare EMAIL line:\n%s", out)
	}
	if strings.Contains(out, "TYPE=INTERNET") {
		t.Errorf("3.0 EMAIL parameter leaked into 4.0 output:\n%s", out)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"backslash", `a\b`, `a\\b`},
		{"semicolon", "a;b", `a\;b`},
		{"comma", "a,b", `a\,b`},
		{"newline", "a\nb", `a\nb`},
		{"crlf", "a\r\nb", `a\nb`},
		{"clean", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := escape(tt.input)
			if got != tt.expected {
				t.Errorf("escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapedFieldsInOutput(t *testing.T) {
	c := &Contact{
		LastName: "Smith; Jones",
		Notes:    "line one\nline two",
	}
	out := Build(c, Version3)

	if !strings.Contains(out, `N:Smith\; Jones;;;;`) {
		t.Errorf("semicolon not escaped in N:\n%s", out)
	}
	if !strings.Contains(out, `NOTE:line one\nline two`) {
		t.Errorf("newline not escaped in NOTE:\n%s", out)
	}
}

func TestFold(t *testing.T) {
	long := "NOTE:" + strings.Repeat("x", 200)
	folded := fold(long)

	for i, line := range strings.Split(folded, "\r\n") {
		if len(line) > maxLineOctets {
			t.Errorf("line %d is %d octets, over the %d limit", i, len(line), maxLineOctets)
		}
		if i > 0 && !strings.HasPrefix(line, " ") {
			t.Errorf("continuation line %d missing leading space: %q", i, line)
		}
	}

	// Unfolding (drop CRLF + space) must restore the original.
	unfolded := strings.ReplaceAll(folded, "\r\n ", "")
	if unfolded != long {
		t.Errorf("unfolded line differs from original")
	}
}

func TestFoldShortLineUntouched(t *testing.T) {
	if got := fold("FN:Ada"); got != "FN:Ada" {
		t.Errorf("fold changed a short line: %q", got)
	}
}

func TestFoldMultibyte(t *testing.T) {
	long := "NOTE:" + strings.Repeat("ü", 100)
	folded := fold(long)

	unfolded := strings.ReplaceAll(folded, "\r\n ", "")
	if unfolded != long {
		t.Errorf("multibyte rune split across fold boundary")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		contact  Contact
		expected string
	}{
		{"both names", Contact{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Contact{FirstName: "Ada"}, "Ada"},
		{"last only", Contact{LastName: "Lovelace"}, "Lovelace"},
		{"org fallback", Contact{Organization: "Initech"}, "Initech"},
		{"empty fallback", Contact{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.contact.DisplayName()
			if got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !(&Contact{}).IsEmpty() {
		t.Error("zero contact should be empty")
	}
	if (&Contact{Notes: "x"}).IsEmpty() {
		t.Error("contact with notes should not be empty")
	}
}
