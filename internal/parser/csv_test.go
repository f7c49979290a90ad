package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

// failingReader yields its buffered data, then the same error on every
// subsequent read, like a client aborting an upload mid-stream.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	return 0, r.err
}

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Category,Name,Price,Description,Recommended",
		`"Noodles","Beef Noodle","120","Signature dish","TRUE"`,
		`"Noodles","Dumplings","60","",""`,
		`"Drinks","Tea","20","Iced or hot","false"`,
	}, "\n")

	menu, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, menu, 2)
	assert.Equal(t, "Noodles", menu[0].Name)
	assert.Equal(t, "Drinks", menu[1].Name)
	require.Len(t, menu[0].Items, 2)

	beef := menu[0].Items[0]
	assert.Equal(t, "Beef Noodle", beef.Name)
	assert.Equal(t, 120.0, beef.Price)
	assert.Equal(t, "Signature dish", beef.Description)
	assert.True(t, beef.Recommended)
	assert.NotEmpty(t, beef.ID)

	assert.False(t, menu[0].Items[1].Recommended)
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		`"Noodles","Beef Noodle","120","Signature dish","TRUE"`,
		`"Noodles","","abc",""`,
		`"","Orphan","50"`,
		`"Drinks","Tea","20"`,
	}, "\n")

	menu, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, menu.ItemCount())
}

func TestParseCSVQuotedFields(t *testing.T) {
	input := `"Noodles","Beef, extra spicy","120","He said ""hot""","TRUE"`

	menu, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 1, menu.ItemCount())
	item := menu[0].Items[0]
	assert.Equal(t, "Beef, extra spicy", item.Name)
	assert.Equal(t, `He said "hot"`, item.Description)
}

func TestParseCSVCurrencyPrice(t *testing.T) {
	input := `"Noodles","Beef Noodle","$120"`

	menu, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 120.0, menu[0].Items[0].Price)
}

func TestParseCSVNoValidRows(t *testing.T) {
	input := strings.Join([]string{
		"Category,Name,Price",
		`"Noodles","","abc"`,
		"",
	}, "\n")

	_, err := ParseCSV(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestParseCSVAbortedUpload(t *testing.T) {
	readErr := errors.New("unexpected network error")
	r := &failingReader{
		data: []byte(`"Noodles","Beef Noodle","120"` + "\n"),
		err:  readErr,
	}

	_, err := ParseCSV(r)
	assert.ErrorIs(t, err, readErr)
}

func TestParseCSVStripsBOM(t *testing.T) {
	input := utf8BOM + `"Noodles","Beef Noodle","120"`

	menu, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, menu.ItemCount())
}

func TestCSVRoundTrip(t *testing.T) {
	original := domain.Menu{
		{Name: "Noodles", Items: []domain.MenuItem{
			{ID: "1", Name: "Beef Noodle", Price: 120, Description: "Signature dish", Category: "Noodles", Recommended: true},
			{ID: "2", Name: "Dumplings, 8pc", Price: 60.5, Category: "Noodles"},
		}},
		{Name: "Drinks", Items: []domain.MenuItem{
			{ID: "3", Name: "Tea", Price: 20, Description: `"Iced" only`, Category: "Drinks"},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, original))

	imported, err := ParseCSV(&buf)
	require.NoError(t, err)

	require.Len(t, imported, len(original))
	for i, category := range original {
		assert.Equal(t, category.Name, imported[i].Name)
		require.Len(t, imported[i].Items, len(category.Items))
		for j, item := range category.Items {
			got := imported[i].Items[j]
			assert.Equal(t, item.Name, got.Name)
			assert.Equal(t, item.Price, got.Price)
			assert.Equal(t, item.Description, got.Description)
			assert.Equal(t, item.Category, got.Category)
			assert.Equal(t, item.Recommended, got.Recommended)
			// ids are freshly assigned on import
			assert.NotEqual(t, item.ID, got.ID)
		}
	}
}

func TestIsHeaderRow(t *testing.T) {
	assert.True(t, isHeaderRow([]string{"Category", "Name", "Price"}))
	assert.True(t, isHeaderRow([]string{"category"}))
	assert.False(t, isHeaderRow([]string{"Noodles", "Beef Noodle", "120"}))
	assert.False(t, isHeaderRow(nil))
}

func TestMenuFromRaw(t *testing.T) {
	raw := &RawMenu{Categories: []RawMenuCategory{
		{Name: "Noodles", Items: []RawMenuItem{
			{Name: "Beef Noodle", Price: 120, Recommended: true},
		}},
	}}

	menu := MenuFromRaw(raw)
	require.Equal(t, 1, menu.ItemCount())
	item := menu[0].Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Noodles", item.Category)
	assert.True(t, item.Recommended)
}
