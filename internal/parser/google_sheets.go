package parser

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

// GoogleSheetsImporter reads a menu from a spreadsheet laid out with the
// same columns as the CSV format.
type GoogleSheetsImporter struct {
	service *sheets.Service
}

type SheetsConfig struct {
	CredentialsJSON []byte
}

func NewGoogleSheetsImporter(cfg SheetsConfig) (*GoogleSheetsImporter, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsImporter{
		service: service,
	}, nil
}

func (p *GoogleSheetsImporter) ImportMenu(ctx context.Context, spreadsheetID string) (domain.Menu, error) {
	readRange := "A:E" // category, name, price, description, recommended
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	builder := newMenuBuilder()
	for i, row := range resp.Values {
		fields := make([]string, len(row))
		for j, cell := range row {
			fields[j] = fmt.Sprintf("%v", cell)
		}
		if i == 0 && isHeaderRow(fields) {
			continue
		}
		if item, ok := itemFromRow(fields); ok {
			builder.add(item)
		}
	}

	menu := builder.menu()
	if len(menu) == 0 {
		return nil, ErrNoValidRows
	}
	return menu, nil
}
