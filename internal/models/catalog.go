package models

import (
	"strings"
	"time"
)

// CatalogItem is a user-generated QR artifact. The rendered PNG is stored
// inline; items are immutable once created and may only be deleted.
type CatalogItem struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Content   string      `json:"content"`
	ImagePNG  []byte      `json:"qr_image_data"`
	CreatedAt time.Time   `json:"created_date"`
	Kind      CatalogKind `json:"type"`
}

// Matches reports whether the item satisfies a case-insensitive substring
// query against its name or content. An empty query matches everything.
func (i CatalogItem) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Content), q)
}
