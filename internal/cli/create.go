package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/analytics"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
)

// Create builds a QR payload for the chosen kind, renders the image and saves
// the result into the catalog (which mirrors it into history).
func (a *App) Create(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: create <text|url|email|phone|wifi|contact>")
		return
	}

	kind, ok := models.ParseCatalogKind(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Unknown kind: %s\n", args[0])
		return
	}

	name, err := GetSimpleText(a.reader, "Name for this code", a.out)
	if err != nil || name == "" {
		fmt.Fprintln(a.out, "A name is required.")
		return
	}

	content, err := a.promptContent(kind)
	if err != nil || content == "" {
		fmt.Fprintln(a.out, "No content entered.")
		return
	}

	image, err := a.generator.Render(content)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to render QR code: %v\n", err)
		return
	}

	item, err := a.catalog.Save(name, content, image, kind)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to save: %v\n", err)
		return
	}

	a.tracker.Track(ctx, analytics.EventCodeCreated, "type", string(kind))
	fmt.Fprintf(a.out, "Saved %q (%s), %d bytes of image data\n", item.Name, item.Kind, len(item.ImagePNG))
}

// promptContent collects the payload for a kind. Wi-Fi and contact kinds are
// assembled from their parts; the rest are entered as-is.
func (a *App) promptContent(kind models.CatalogKind) (string, error) {
	switch kind {
	case models.CatalogKindWifi:
		ssid, err := GetSimpleText(a.reader, "Network name (SSID)", a.out)
		if err != nil {
			return "", err
		}
		security, err := GetSimpleText(a.reader, "Security (WPA/WEP/nopass)", a.out)
		if err != nil {
			return "", err
		}
		sec := models.WifiSecurity(security)
		if sec != models.WifiSecurityWPA && sec != models.WifiSecurityWEP && sec != models.WifiSecurityNone {
			sec = models.WifiSecurityWPA
		}
		password := ""
		if sec != models.WifiSecurityNone {
			password, err = GetSecret("Password", a.out)
			if err != nil {
				return "", err
			}
		}
		return models.BuildWifiPayload(ssid, password, sec), nil

	case models.CatalogKindContact:
		name, err := GetSimpleText(a.reader, "Contact name", a.out)
		if err != nil {
			return "", err
		}
		phone, err := GetSimpleText(a.reader, "Phone number", a.out)
		if err != nil {
			return "", err
		}
		return models.BuildContactPayload(name, phone), nil

	default:
		return GetSimpleText(a.reader, "Content", a.out)
	}
}
