package summary

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/tripplanner/internal/trip"
	"github.com/zclconf/go-cty/cty"
)

// WriteHCL prints rec as a `trip "<id>"` block with one nested `member`
// block per traveller.
func WriteHCL(w io.Writer, rec *trip.Details) error {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock("trip", []string{rec.ID.String()})
	body := block.Body()

	body.SetAttributeValue("main_contact", cty.StringVal(rec.MainContact))
	body.SetAttributeValue("budget", cty.NumberFloatVal(rec.Budget))
	body.SetAttributeValue("destinations", stringList(rec.Destinations))
	body.SetAttributeValue("food_preference", cty.StringVal(string(rec.FoodPreference)))
	body.SetAttributeValue("accommodation", cty.StringVal(string(rec.Accommodation)))
	body.SetAttributeValue("start_date", cty.StringVal(rec.StartDate))
	body.SetAttributeValue("duration", cty.NumberIntVal(int64(rec.Duration)))
	body.SetAttributeValue("weather_preference", cty.StringVal(string(rec.WeatherPreference)))

	for _, m := range rec.Members {
		body.AppendNewline()
		member := body.AppendNewBlock("member", nil).Body()
		member.SetAttributeValue("name", cty.StringVal(m.Name))
		member.SetAttributeValue("age", cty.NumberIntVal(int64(m.Age)))
	}

	_, err := w.Write(f.Bytes())
	return err
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
