// Package payload builds the text payloads that get encoded into QR
// codes: WIFI: network join strings, mailto:, tel:, sms:, geo:, plain
// URLs, and the query-string URLs for the hosted landing pages.
//
// Builders perform presence checks only; field contents are passed
// through with scheme-level escaping but no semantic validation.
package payload
