package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    ContentKind
		want    string
	}{
		{"url", "https://example.com", ContentKindURL, "Website Link"},
		{"email", "mailto:a@b.c", ContentKindEmail, "Email Address"},
		{"phone", "tel:+123", ContentKindPhone, "Phone Number"},
		{"wifi record", "WIFI:T:WPA;S:home;P:secret;;", ContentKindText, "WiFi Network"},
		{"vcard record", "BEGIN:VCARD\nVERSION:3.0\nFN:Jo\nTEL:123\nEND:VCARD", ContentKindText, "Contact Info"},
		{"bare vcard marker", "some VCARD dump", ContentKindText, "Contact Info"},
		{"plain text", "just a note", ContentKindText, "Text Message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.content, tt.kind))
		})
	}
}

func TestBuildWifiPayload(t *testing.T) {
	got := BuildWifiPayload("home", "secret", WifiSecurityWPA)
	assert.Equal(t, "WIFI:T:WPA;S:home;P:secret;;", got)

	open := BuildWifiPayload("cafe", "", WifiSecurityNone)
	assert.Equal(t, "WIFI:T:nopass;S:cafe;P:;;", open)
}

func TestBuildContactPayload(t *testing.T) {
	got := BuildContactPayload("Jane Doe", "+1234567890")
	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nTEL:+1234567890\nEND:VCARD", got)

	// A built contact payload must be recognized by the title heuristic.
	assert.Equal(t, "Contact Info", DeriveTitle(got, ContentKindText))
}

func TestCatalogItem_Matches(t *testing.T) {
	item := CatalogItem{Name: "Shop Link", Content: "https://shop.example.com"}

	assert.True(t, item.Matches(""))
	assert.True(t, item.Matches("shop"))
	assert.True(t, item.Matches("SHOP"))
	assert.True(t, item.Matches("example.com"))
	assert.False(t, item.Matches("wifi"))
}
