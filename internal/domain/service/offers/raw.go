package offers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RawPayload is one full provider response. The provider owns its shape; we
// only read from it defensively.
type RawPayload = map[string]any

// RawRecord is one result record inside a payload.
type RawRecord = map[string]any

// recordListKeys is the fixed probe order for locating the result list inside
// a payload. The first key whose value is array-shaped wins.
var recordListKeys = []string{"flights", "itineraries", "offers", "data", "items"}

func findRecordList(payload RawPayload) ([]any, bool) {
	for _, key := range recordListKeys {
		if list, ok := payload[key].([]any); ok {
			return list, true
		}
	}

	return nil, false
}

// dig walks a nested key path, failing on the first missing or non-map hop.
func dig(record RawRecord, path ...string) (any, bool) {
	var current any = record

	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = m[key]
		if !ok || current == nil {
			return nil, false
		}
	}

	return current, true
}

// firstValue resolves a field through its ordered fallback paths.
func firstValue(record RawRecord, paths [][]string) (any, bool) {
	for _, path := range paths {
		if v, ok := dig(record, path...); ok {
			return v, true
		}
	}

	return nil, false
}

var nonDigitsPattern = regexp.MustCompile(`[^\d]`)

// coerceInt extracts a non-negative integer from an arbitrary value. String
// values are stripped of every non-digit character first; a value yielding no
// digits counts as absent.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, false
		}

		return int(n), true
	case int:
		if n < 0 {
			return 0, false
		}

		return n, true
	}

	digits := nonDigitsPattern.ReplaceAllString(fmt.Sprint(v), "")
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}

	return n, true
}

var decimalPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// coerceFloat extracts a non-negative decimal, tolerating currency prefixes
// and comma decimal separators.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, false
		}

		return n, true
	case int:
		if n < 0 {
			return 0, false
		}

		return float64(n), true
	}

	match := decimalPattern.FindString(fmt.Sprint(v))
	if match == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
