package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// Structural failures are fatal for the run and surface immediately; no
// output file is written once either is raised.
var (
	ErrUnsupportedExtension = errors.New("ingest: unsupported file extension")
	ErrUnrecognizedShape    = errors.New("ingest: unrecognized table structure")
)

// LoadMetricPairs reads a summary file into ordered raw-name/value pairs.
// Accepted inputs: a two-column (name, value) CSV, a CSV with a header row
// and one data row, a JSON object, or a JSON list of records keyed
// 項目/metric/name and 數值/value.
func LoadMetricPairs(path string, encodings []string) ([]metric.Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		text, err := DecodeFile(path, encodings)
		if err != nil {
			return nil, err
		}
		return parseCSVPairs(text)
	case ".json":
		text, err := DecodeFile(path, []string{"utf-8-sig"})
		if err != nil {
			return nil, err
		}
		return parseJSONPairs([]byte(text))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

// LoadStore is the summary-file entry point used by the report path.
func LoadStore(path string, encodings []string) (*metric.Store, error) {
	pairs, err := LoadMetricPairs(path, encodings)
	if err != nil {
		return nil, err
	}
	return metric.NewStore(pairs), nil
}

// ReadRawTable parses a raw analyzer export: a header row plus the first
// data row. Raw exports are one-subject-per-file, so further rows are
// ignored.
func ReadRawTable(path string, encodings []string) (headers, row []string, err error) {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}
	text, err := DecodeFile(path, encodings)
	if err != nil {
		return nil, nil, err
	}
	rows, err := readCSVRows(text)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%w: need a header row and a data row", ErrUnrecognizedShape)
	}
	return rows[0], rows[1], nil
}

func readCSVRows(text string) ([][]string, error) {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	r := csv.NewReader(strings.NewReader(strings.Join(kept, "\n")))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}
	return rows, nil
}

func parseCSVPairs(text string) ([]metric.Entry, error) {
	rows, err := readCSVRows(text)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrUnrecognizedShape)
	}
	if len(rows[0]) == 2 {
		pairs := make([]metric.Entry, 0, len(rows))
		for _, row := range rows {
			if len(row) >= 2 {
				pairs = append(pairs, metric.Entry{Key: row[0], Value: row[1]})
			}
		}
		return pairs, nil
	}
	header := rows[0]
	var values []string
	if len(rows) > 1 {
		values = rows[1]
	}
	pairs := make([]metric.Entry, 0, len(header))
	for i, name := range header {
		var v any = ""
		if i < len(values) {
			v = values[i]
		}
		pairs = append(pairs, metric.Entry{Key: name, Value: v})
	}
	return pairs, nil
}

func parseJSONPairs(data []byte) ([]metric.Entry, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil && obj != nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]metric.Entry, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, metric.Entry{Key: k, Value: obj[k]})
		}
		return pairs, nil
	}

	var list []map[string]any
	if err := json.Unmarshal(data, &list); err == nil {
		var pairs []metric.Entry
		for _, rec := range list {
			key := firstRecordValue(rec, "項目", "metric", "name")
			if key == nil {
				continue
			}
			pairs = append(pairs, metric.Entry{
				Key:   fmt.Sprint(key),
				Value: firstRecordValue(rec, "數值", "value"),
			})
		}
		if len(pairs) > 0 {
			return pairs, nil
		}
	}
	return nil, fmt.Errorf("%w: JSON is neither an object nor a record list", ErrUnrecognizedShape)
}

func firstRecordValue(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
