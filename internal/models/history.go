package models

import (
	"strings"
	"time"
)

// ActionKind records how a history entry came to exist.
type ActionKind string

const (
	ActionScanned ActionKind = "scanned"
	ActionCreated ActionKind = "created"
)

// HistoryEntry is one element of the activity ledger. Entries are immutable
// once created; the ledger only ever deletes them.
type HistoryEntry struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Kind    ContentKind `json:"type"`
	Action  ActionKind  `json:"action_type"`
	Date    time.Time   `json:"date"`
}

// DeriveTitle picks a human label for a scanned payload. URL, email and phone
// payloads get fixed labels; text payloads are sniffed for Wi-Fi and vCard
// structural markers.
func DeriveTitle(content string, kind ContentKind) string {
	switch kind {
	case ContentKindURL:
		return "Website Link"
	case ContentKindEmail:
		return "Email Address"
	case ContentKindPhone:
		return "Phone Number"
	default:
		if strings.Contains(content, "WIFI:") {
			return "WiFi Network"
		}
		if strings.Contains(content, "VCARD") {
			return "Contact Info"
		}
		return "Text Message"
	}
}
