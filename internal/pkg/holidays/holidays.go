// Package holidays provides the calendar.Provider backed by curated
// holiday reference data. The table ships embedded in the binary and
// can be replaced wholesale with an external JSON file, so adding a
// new year is a data change, not a code change.
package holidays

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lakbayhr/hr-portal-go/internal/domain/calendar"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/validator"
)

//go:embed holidays.json
var embeddedTable []byte

type holidayJSON struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// StaticProvider serves holiday lookups from an in-memory table
// indexed by "YYYY-MM-DD".
type StaticProvider struct {
	byDate map[string]calendar.HolidayEntry
}

// NewStaticProvider loads the embedded holiday table.
func NewStaticProvider() (*StaticProvider, error) {
	return parseTable(embeddedTable)
}

// NewProviderFromFile loads a holiday table from an external JSON
// file, replacing the embedded data entirely.
func NewProviderFromFile(path string) (*StaticProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holiday file: %w", err)
	}
	return parseTable(raw)
}

func parseTable(raw []byte) (*StaticProvider, error) {
	var rows []holidayJSON
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse holiday table: %w", err)
	}

	byDate := make(map[string]calendar.HolidayEntry, len(rows))
	for _, row := range rows {
		date, ok := validator.IsValidDate(row.Date)
		if !ok {
			return nil, fmt.Errorf("holiday table: invalid date %q", row.Date)
		}
		if !validator.IsInSlice(row.Type, calendar.HolidayTypeValues) {
			return nil, fmt.Errorf("holiday table: invalid type %q for %s", row.Type, row.Date)
		}
		byDate[row.Date] = calendar.HolidayEntry{
			Date: date,
			Name: row.Name,
			Type: calendar.HolidayType(row.Type),
		}
	}
	return &StaticProvider{byDate: byDate}, nil
}

// Lookup implements calendar.Provider. Dates outside the table,
// including whole years nobody curated yet, simply miss.
func (p *StaticProvider) Lookup(date time.Time) (calendar.HolidayEntry, bool) {
	entry, ok := p.byDate[date.Format("2006-01-02")]
	return entry, ok
}
