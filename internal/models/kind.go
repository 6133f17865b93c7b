// Package models defines the QR content types persisted by qrkeeper:
// history entries, saved catalog items and their content-kind tags.
package models

import "strings"

// ContentKind classifies the payload of a history entry.
type ContentKind string

const (
	ContentKindURL   ContentKind = "url"
	ContentKindEmail ContentKind = "email"
	ContentKindPhone ContentKind = "phone"
	ContentKindText  ContentKind = "text"
)

// CatalogKind classifies the payload of a saved catalog item. It is a
// superset of ContentKind: wifi and contact records carry structured text
// payloads and only exist for created codes.
type CatalogKind string

const (
	CatalogKindText    CatalogKind = "text"
	CatalogKindURL     CatalogKind = "url"
	CatalogKindEmail   CatalogKind = "email"
	CatalogKindPhone   CatalogKind = "phone"
	CatalogKindWifi    CatalogKind = "wifi"
	CatalogKindContact CatalogKind = "contact"
)

// CatalogKinds lists all catalog kinds in display order.
var CatalogKinds = []CatalogKind{
	CatalogKindText, CatalogKindURL, CatalogKindEmail,
	CatalogKindPhone, CatalogKindWifi, CatalogKindContact,
}

// ContentKind collapses the six-way catalog tag down to the four-way history
// tag. Wi-Fi and contact records are plain text as far as history is concerned.
func (k CatalogKind) ContentKind() ContentKind {
	switch k {
	case CatalogKindURL:
		return ContentKindURL
	case CatalogKindEmail:
		return ContentKindEmail
	case CatalogKindPhone:
		return ContentKindPhone
	default:
		return ContentKindText
	}
}

// DetectKind classifies a scanned payload by its URI scheme. Anything that is
// not an http(s) link, a mailto or a tel record is treated as free text.
func DetectKind(content string) ContentKind {
	lower := strings.ToLower(content)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return ContentKindURL
	case strings.HasPrefix(lower, "mailto:"):
		return ContentKindEmail
	case strings.HasPrefix(lower, "tel:"):
		return ContentKindPhone
	default:
		return ContentKindText
	}
}

// ParseCatalogKind maps a user-supplied tag to a CatalogKind.
func ParseCatalogKind(s string) (CatalogKind, bool) {
	k := CatalogKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CatalogKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}
