package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/services"
)

// Codes prints saved catalog items, optionally filtered by kind and a free
// text query.
//
// Usage: codes [all|text|url|email|phone|wifi|contact] [query...]
func (a *App) Codes(ctx context.Context, args []string) {
	filter := services.FilterAllKinds()
	query := ""

	if len(args) > 0 {
		if args[0] != "all" {
			kind, ok := models.ParseCatalogKind(args[0])
			if !ok {
				fmt.Fprintf(a.out, "Unknown kind: %s\n", args[0])
				return
			}
			filter = services.FilterKind(kind)
		}
		query = strings.Join(args[1:], " ")
	}

	items := a.catalog.Find(filter, query)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No saved codes.")
		return
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "%s  %s  (%s)  %s\n",
			item.CreatedAt.Format("2006-01-02 15:04"), item.Name, item.Kind, item.ID)
	}
}

// Show prints the details of one saved code by id.
func (a *App) Show(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: show <id>")
		return
	}

	item, err := a.catalog.GetByID(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Not found: %s\n", args[0])
		return
	}

	fmt.Fprintf(a.out, "Name:    %s\n", item.Name)
	fmt.Fprintf(a.out, "Kind:    %s\n", item.Kind)
	fmt.Fprintf(a.out, "Content: %s\n", item.Content)
	fmt.Fprintf(a.out, "Created: %s\n", item.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(a.out, "Image:   %d bytes (PNG)\n", len(item.ImagePNG))
}
