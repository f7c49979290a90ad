package parser

import (
	"context"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

// RawMenu is the structured result of menu image recognition, before
// synthetic ids are assigned.
type RawMenu struct {
	Categories []RawMenuCategory `json:"categories"`
}

type RawMenuCategory struct {
	Name  string        `json:"name"`
	Items []RawMenuItem `json:"items"`
}

type RawMenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Recommended bool    `json:"recommended,omitempty"`
}

// MenuRecognizer is the external image-recognition capability: given a
// menu photo it returns a structured menu or fails. This repo consumes
// the interface and does not ship a real implementation.
type MenuRecognizer interface {
	RecognizeMenu(ctx context.Context, image []byte) (*RawMenu, error)
}

// MenuFromRaw assigns stable synthetic ids to a recognized menu on
// receipt.
func MenuFromRaw(raw *RawMenu) domain.Menu {
	builder := newMenuBuilder()
	for _, category := range raw.Categories {
		for _, item := range category.Items {
			builder.add(domain.MenuItem{
				ID:          newItemID(),
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
				Category:    category.Name,
				Recommended: item.Recommended,
			})
		}
	}
	return builder.menu()
}
