package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

var ErrNoValidRows = errors.New("no valid menu rows found")

const utf8BOM = "\xef\xbb\xbf"

var csvHeader = []string{"Category", "Name", "Price", "Description", "Recommended"}

// ParseCSV reads a menu snapshot from CSV. Malformed rows are skipped
// per row; the import as a whole fails only when zero rows survive.
func ParseCSV(r io.Reader) (domain.Menu, error) {
	buffered := bufio.NewReader(r)
	skipBOM(buffered)

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	builder := newMenuBuilder()
	first := true
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// skip the malformed row, keep importing the rest
			continue
		}
		if err != nil {
			// an underlying read error is persistent, give up
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if first {
			first = false
			if isHeaderRow(fields) {
				continue
			}
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

// ExportCSV writes the menu in the same column order the importer
// reads, UTF-8 with a BOM so spreadsheet apps open it correctly.
func ExportCSV(w io.Writer, menu domain.Menu) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, category := range menu {
		for _, item := range category.Items {
			recommended := "FALSE"
			if item.Recommended {
				recommended = "TRUE"
			}
			row := []string{
				category.Name,
				item.Name,
				strconv.FormatFloat(item.Price, 'f', -1, 64),
				item.Description,
				recommended,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func skipBOM(r *bufio.Reader) {
	head, err := r.Peek(len(utf8BOM))
	if err == nil && string(head) == utf8BOM {
		_, _ = r.Discard(len(utf8BOM))
	}
}
