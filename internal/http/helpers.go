package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

// parseDateRange extracts the optional start_date/end_date filter from query
// parameters. The filter only takes effect when both bounds are present.
func parseDateRange(r *http.Request) (core.DateRange, error) {
	dr := core.DateRange{
		Start: strings.TrimSpace(r.URL.Query().Get("start_date")),
		End:   strings.TrimSpace(r.URL.Query().Get("end_date")),
	}
	if err := dr.Validate(); err != nil {
		return core.DateRange{}, err
	}
	return dr, nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// coerceAmount converts a decoded JSON value to a float64 amount. Numbers
// and numeric strings are both accepted.
func coerceAmount(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		return core.ParseAmount(val)
	default:
		return 0, core.ErrInvalidAmount
	}
}

// stringField converts a decoded JSON value to a trimmed string.
func stringField(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
