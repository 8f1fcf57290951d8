package summary

import (
	"fmt"
	"io"

	"github.com/vk/tripplanner/internal/trip"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ToCtyValue converts rec into a cty object keyed by the record's cty tags,
// with the trip ID added as "id".
func ToCtyValue(rec *trip.Details) (cty.Value, error) {
	ty, err := gocty.ImpliedType(*rec)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	val, err := gocty.ToCtyValue(*rec, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to convert trip record: %w", err)
	}

	attrs := val.AsValueMap()
	attrs["id"] = cty.StringVal(rec.ID.String())
	return cty.ObjectVal(attrs), nil
}

// WriteJSON prints rec as a single JSON object followed by a newline.
func WriteJSON(w io.Writer, rec *trip.Details) error {
	val, err := ToCtyValue(rec)
	if err != nil {
		return err
	}
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to marshal trip record: %w", err)
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}
