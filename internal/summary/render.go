package summary

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/vk/tripplanner/internal/trip"
)

// Format selects how a record is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported format, default first.
var Formats = []Format{FormatText, FormatJSON, FormatHCL}

// ParseFormat matches s case-insensitively against the supported formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q: must be 'text', 'json' or 'hcl'", s)
}

// Render writes rec to w in the requested format.
func Render(w io.Writer, rec *trip.Details, format Format) error {
	switch format {
	case FormatText, "":
		return WriteText(w, rec)
	case FormatJSON:
		if err := checkExportable(rec); err != nil {
			return err
		}
		return WriteJSON(w, rec)
	case FormatHCL:
		if err := checkExportable(rec); err != nil {
			return err
		}
		return WriteHCL(w, rec)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// checkExportable rejects values that have no representation in cty numbers.
func checkExportable(rec *trip.Details) error {
	if math.IsNaN(rec.Budget) || math.IsInf(rec.Budget, 0) {
		return fmt.Errorf("budget %s cannot be exported: only finite amounts are supported", trip.FormatBudget(rec.Budget))
	}
	return nil
}
