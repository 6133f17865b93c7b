package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ContentKind
	}{
		{"http url", "http://example.com", ContentKindURL},
		{"https url", "https://example.com/page", ContentKindURL},
		{"uppercase scheme", "HTTPS://EXAMPLE.COM", ContentKindURL},
		{"mailto", "mailto:test@example.com", ContentKindEmail},
		{"tel", "tel:+1234567890", ContentKindPhone},
		{"wifi record is text", "WIFI:T:WPA;S:home;P:secret;;", ContentKindText},
		{"plain text", "hello world", ContentKindText},
		{"bare domain is text", "example.com", ContentKindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectKind(tt.content))
		})
	}
}

func TestCatalogKind_ContentKind_Collapse(t *testing.T) {
	tests := []struct {
		in   CatalogKind
		want ContentKind
	}{
		{CatalogKindURL, ContentKindURL},
		{CatalogKindEmail, ContentKindEmail},
		{CatalogKindPhone, ContentKindPhone},
		{CatalogKindText, ContentKindText},
		{CatalogKindWifi, ContentKindText},
		{CatalogKindContact, ContentKindText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.ContentKind(), "kind %s", tt.in)
	}
}

func TestParseCatalogKind(t *testing.T) {
	k, ok := ParseCatalogKind("WiFi")
	assert.True(t, ok)
	assert.Equal(t, CatalogKindWifi, k)

	k, ok = ParseCatalogKind(" url ")
	assert.True(t, ok)
	assert.Equal(t, CatalogKindURL, k)

	_, ok = ParseCatalogKind("barcode")
	assert.False(t, ok)
}
