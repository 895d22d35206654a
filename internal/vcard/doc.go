// Package vcard builds vCard 3.0 and 4.0 text payloads from contact
// records.
//
// A Contact is an unordered set of optional string fields. Build emits
// a BEGIN:VCARD/END:VCARD envelope where every line whose source field
// is empty is omitted; FN is the one mandatory line and is derived
// from the name parts, then the organization, then a constant
// fallback.
//
// Values are escaped per RFC 6350 (backslash, semicolon, comma,
// newline) and content lines are folded at 75 octets with a leading
// space on continuation lines. Field contents are deliberately not
// validated: this is a transport convenience, not a contacts database,
// so a malformed phone number simply produces a malformed TEL line.
package vcard
