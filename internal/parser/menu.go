// Package parser turns external menu sources (CSV files, Google Sheets,
// recognized menu images) into menu snapshots.
package parser

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

// Column order shared by CSV and spreadsheet sources:
// category, name, price, description (optional), recommended (optional).
const (
	colCategory = iota
	colName
	colPrice
	colDescription
	colRecommended
)

func newItemID() string {
	return uuid.NewString()
}

// isHeaderRow detects a header heuristically: the first cell mentions
// "category", case-insensitively.
func isHeaderRow(fields []string) bool {
	return len(fields) > 0 && strings.Contains(strings.ToLower(fields[colCategory]), "category")
}

// itemFromRow converts one row into a menu item with a fresh synthetic
// id. Rows with a missing category or name, or an unparsable price, are
// rejected; callers skip them without failing the whole import.
func itemFromRow(fields []string) (domain.MenuItem, bool) {
	if len(fields) <= colPrice {
		return domain.MenuItem{}, false
	}

	category := strings.TrimSpace(fields[colCategory])
	name := strings.TrimSpace(fields[colName])
	priceStr := strings.TrimSpace(fields[colPrice])
	if category == "" || name == "" || priceStr == "" {
		return domain.MenuItem{}, false
	}

	price, err := strconv.ParseFloat(stripNonNumeric(priceStr), 64)
	if err != nil || price < 0 {
		return domain.MenuItem{}, false
	}

	item := domain.MenuItem{
		ID:       newItemID(),
		Name:     name,
		Price:    price,
		Category: category,
	}
	if len(fields) > colDescription {
		item.Description = strings.TrimSpace(fields[colDescription])
	}
	if len(fields) > colRecommended {
		item.Recommended = strings.EqualFold(strings.TrimSpace(fields[colRecommended]), "true")
	}
	return item, true
}

// stripNonNumeric drops currency symbols and separators so prices like
// "$120" or "NT 120" still parse.
func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// menuBuilder groups items into categories preserving the order of
// first appearance.
type menuBuilder struct {
	order []string
	items map[string][]domain.MenuItem
}

func newMenuBuilder() *menuBuilder {
	return &menuBuilder{items: make(map[string][]domain.MenuItem)}
}

func (b *menuBuilder) add(item domain.MenuItem) {
	if _, seen := b.items[item.Category]; !seen {
		b.order = append(b.order, item.Category)
	}
	b.items[item.Category] = append(b.items[item.Category], item)
}

func (b *menuBuilder) menu() domain.Menu {
	menu := make(domain.Menu, 0, len(b.order))
	for _, name := range b.order {
		menu = append(menu, domain.MenuCategory{Name: name, Items: b.items[name]})
	}
	return menu
}
