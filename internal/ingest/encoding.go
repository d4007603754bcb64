// Package ingest reads raw analyzer exports: it detects the file encoding,
// recognizes the supported table shapes, resolves canonical columns and
// writes the normalized summary artifacts.
package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// DefaultEncodings is the detection order used by analyzer exports in the
// wild: UTF-8 with an optional BOM first, then the Traditional Chinese
// codepages older firmware writes.
var DefaultEncodings = []string{"utf-8-sig", "big5", "cp950"}

const utf8BOM = "\xef\xbb\xbf"

// DecodeFile reads a file and tries each candidate encoding in order; the
// first clean decode wins. Exhausting the list surfaces the last decode
// error.
func DecodeFile(path string, encodings []string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	var lastErr error
	for _, name := range encodings {
		text, err := decodeBytes(raw, name)
		if err != nil {
			lastErr = err
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("decode %s: %w", path, lastErr)
}

func decodeBytes(raw []byte, name string) (string, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "utf-8-sig":
		text := strings.TrimPrefix(string(raw), utf8BOM)
		if !utf8.ValidString(text) {
			return "", fmt.Errorf("encoding %s: invalid byte sequence", name)
		}
		return text, nil
	case "big5", "cp950":
		// x/text's Big5 tables already cover the CP950 superset, so both
		// candidate names share one decoder.
		decoded, err := traditionalchinese.Big5.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", name, err)
		}
		if strings.ContainsRune(string(decoded), utf8.RuneError) {
			return "", fmt.Errorf("encoding %s: undecodable byte sequence", name)
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", name)
	}
}
