package ingest

import (
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// ExtractSummary resolves every catalog extraction field against a freshly
// parsed table and returns the canonical key→value summary in catalog order.
// A field whose column is missing (or whose cell is blank or "-") is kept
// with a nil value: absence stays a present entry, never an omission.
func ExtractSummary(headers, row []string) []metric.Entry {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	summary := make([]metric.Entry, 0, len(metric.ExtractionFields))
	for _, field := range metric.ExtractionFields {
		var value any
		if col, ok := metric.FindColumn(headers, field.Patterns); ok {
			if i, ok := index[col]; ok && i < len(row) {
				value = cleanCell(row[i])
			}
		}
		summary = append(summary, metric.Entry{Key: field.ID, Value: value})
	}
	return summary
}

func cleanCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || trimmed == "-" {
		return nil
	}
	return cell
}
