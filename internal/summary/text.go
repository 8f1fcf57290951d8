package summary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vk/tripplanner/internal/trip"
)

// WriteText prints the end-of-session summary block.
func WriteText(w io.Writer, rec *trip.Details) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "\n=== Trip Summary ===")
	fmt.Fprintf(bw, "\nMain Contact: %s\n", rec.MainContact)

	fmt.Fprintln(bw, "\nGroup Members:")
	for _, m := range rec.Members {
		fmt.Fprintf(bw, "- %s (Age: %d)\n", m.Name, m.Age)
	}

	fmt.Fprintf(bw, "\nBudget: $%s\n", trip.FormatBudget(rec.Budget))
	fmt.Fprintf(bw, "Preferred Destinations: %s\n", strings.Join(rec.Destinations, ", "))
	fmt.Fprintf(bw, "Food Preference: %s\n", rec.FoodPreference)
	fmt.Fprintf(bw, "Accommodation: %s\n", rec.Accommodation)
	fmt.Fprintf(bw, "Start Date: %s\n", rec.StartDate)
	fmt.Fprintf(bw, "Duration: %d days\n", rec.Duration)
	fmt.Fprintf(bw, "Weather Preference: %s\n", rec.WeatherPreference)

	return bw.Flush()
}
