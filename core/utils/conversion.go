package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFloat converts a raw spreadsheet cell to a float64 using explicit type
// switching. Labels, empty cells and anything non-numeric become 0.0, which
// is the fill value the pipeline expects for missing data.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	case nil:
		return 0
	default:
		return parseFloat(fmt.Sprintf("%v", v))
	}
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	// Exported tables use thousands separators in some editions.
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
