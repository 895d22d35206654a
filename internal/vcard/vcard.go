package vcard

import (
	"fmt"
	"strings"
)

// Version selects the vCard format version to emit.
type Version string

const (
	// Version3 emits vCard 3.0 (RFC 2426 style envelope).
	Version3 Version = "3.0"
	// Version4 emits vCard 4.0 (RFC 6350).
	Version4 Version = "4.0"
)

// ParseVersion maps a user-supplied version string to a Version.
// Empty input defaults to 3.0 since it has the widest phone support.
func ParseVersion(s string) (Version, bool) {
	switch strings.TrimSpace(s) {
	case "", "3", "3.0":
		return Version3, true
	case "4", "4.0":
		return Version4, true
	default:
		return "", false
	}
}

// Contact holds the optional fields of a single contact record.
// Every field may be empty; empty fields are omitted from the output.
// Field contents are not validated - a malformed email produces a
// malformed EMAIL line, which is acceptable for a transport format.
type Contact struct {
	FirstName    string
	LastName     string
	Organization string
	Title        string
	Department   string
	Phone        string
	Mobile       string
	Email        string
	Website      string
	Notes        string

	// Photo is a pre-encoded JPEG, set via AttachPhoto. Nil means no
	// PHOTO line is emitted.
	Photo []byte
}

// IsEmpty reports whether every text field of the contact is blank.
func (c *Contact) IsEmpty() bool {
	return c.FirstName == "" && c.LastName == "" && c.Organization == "" &&
		c.Title == "" && c.Department == "" && c.Phone == "" &&
		c.Mobile == "" && c.Email == "" && c.Website == "" && c.Notes == "" &&
		len(c.Photo) == 0
}

// DisplayName derives the formatted name (FN) for the contact. FN is
// mandatory in both vCard versions, so this falls back through name
// parts, organization, and finally a constant.
func (c *Contact) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name != "" {
		return name
	}
	if c.Organization != "" {
		return c.Organization
	}
	return "Unknown"
}

// Build serializes the contact into a vCard text block. Lines whose
// source field is empty are omitted; all emitted values are escaped per
// RFC 6350 and long lines are folded at 75 octets. Output lines are
// CRLF-terminated, including the last.
func Build(c *Contact, version Version) string {
	var lines []string

	lines = append(lines, "BEGIN:VCARD")
	lines = append(lines, "VERSION:"+string(version))

	// N is family;given;additional;prefix;suffix with components
	// escaped individually.
	if c.FirstName != "" || c.LastName != "" {
		lines = append(lines, fmt.Sprintf("N:%s;%s;;;", escape(c.LastName), escape(c.FirstName)))
	}

	lines = append(lines, "FN:"+escape(c.DisplayName()))

	if c.Organization != "" || c.Department != "" {
		if c.Department != "" {
			lines = append(lines, fmt.Sprintf("ORG:%s;%s", escape(c.Organization), escape(c.Department)))
		} else {
			lines = append(lines, "ORG:"+escape(c.Organization))
		}
	}

	if c.Title != "" {
		lines = append(lines, "TITLE:"+escape(c.Title))
	}

	if c.Phone != "" {
		lines = append(lines, telLine(c.Phone, "work", version))
	}
	if c.Mobile != "" {
		lines = append(lines, telLine(c.Mobile, "cell", version))
	}

	if c.Email != "" {
		if version == Version4 {
			lines = append(lines, "EMAIL:"+escape(c.Email))
		} else {
			lines = append(lines, "EMAIL;TYPE=INTERNET:"+escape(c.Email))
		}
	}

	if c.Website != "" {
		lines = append(lines, "URL:"+escape(c.Website))
	}

	if c.Notes != "" {
		lines = append(lines, "NOTE:"+escape(c.Notes))
	}

	if len(c.Photo) > 0 {
		lines = append(lines, photoLine(c.Photo, version))
	}

	lines = append(lines, "END:VCARD")

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fold(line))
		b.WriteString("\r\n")
	}
	return b.String()
}

func telLine(number, kind string, version Version) string {
	if version == Version4 {
		return fmt.Sprintf("TEL;TYPE=%s:%s", kind, escape(number))
	}
	// 3.0 uses upper-case type parameters by convention.
	return fmt.Sprintf("TEL;TYPE=%s,VOICE:%s", strings.ToUpper(kind), escape(number))
}

// escape applies RFC 6350 text escaping: backslash, semicolon, comma,
// and newlines. Carriage returns are folded into the newline escape.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case ';':
			b.WriteString(`\;`)
		case ',':
			b.WriteString(`\,`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			// Swallow; a following \n produces the escape.
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// maxLineOctets is the RFC 6350 content line limit before folding.
const maxLineOctets = 75

// fold breaks a content line at 75 octets, continuing on the next line
// with a single leading space. Folds land on byte boundaries; multi-byte
// runes are kept intact by backing off to the rune start.
func fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var b strings.Builder
	width := maxLineOctets
	for len(line) > width {
		cut := width
		// Don't split a UTF-8 sequence.
		for cut > 0 && line[cut]&0xc0 == 0x80 {
			cut--
		}
		if cut == 0 {
			cut = width
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// Continuation lines lose one octet to the leading space.
		width = maxLineOctets - 1
	}
	b.WriteString(line)
	return b.String()
}
