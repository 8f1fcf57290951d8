package summary

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/vk/tripplanner/internal/trip"
)

// WritePlan prints the extended trip plan: budget breakdown, itinerary,
// destination kinds and travel tips. It is meant to follow WriteText.
func WritePlan(w io.Writer, rec *trip.Details) error {
	plan := trip.BuildPlan(rec)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "\n=== Trip Plan ===")

	fmt.Fprintln(bw, "\nBudget Breakdown:")
	if plan.Budget.HasDaily {
		fmt.Fprintf(bw, "Daily Budget: $%s\n", wholeAmount(plan.Budget.Daily))
	} else {
		fmt.Fprintln(bw, "Daily Budget: n/a (duration must be at least 1 day)")
	}
	fmt.Fprintf(bw, "Accommodation: $%s\n", wholeAmount(plan.Budget.Accommodation))
	fmt.Fprintf(bw, "Food: $%s\n", wholeAmount(plan.Budget.Food))
	fmt.Fprintf(bw, "Activities: $%s\n", wholeAmount(plan.Budget.Activities))
	fmt.Fprintf(bw, "Emergency Fund: $%s\n", wholeAmount(plan.Budget.Emergency))

	fmt.Fprintln(bw, "\nDaily Itinerary:")
	if len(plan.Days) == 0 {
		fmt.Fprintln(bw, "No days to plan.")
	}
	for _, d := range plan.Days {
		fmt.Fprintf(bw, "Day %d\n", d.Day)
		fmt.Fprintf(bw, "  Morning: %s\n", d.Morning)
		fmt.Fprintf(bw, "  Afternoon: %s\n", d.Afternoon)
		fmt.Fprintf(bw, "  Evening: %s\n", d.Evening)
	}

	fmt.Fprintln(bw, "\nDestinations:")
	for _, d := range plan.Destinations {
		fmt.Fprintf(bw, "- %s (%s)\n", d.Name, d.Kind)
	}

	fmt.Fprintln(bw, "\nTravel Tips:")
	for _, tip := range plan.Tips {
		fmt.Fprintf(bw, "- %s\n", tip)
	}

	return bw.Flush()
}

// wholeAmount prints an already floored amount without a fractional part.
func wholeAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return trip.FormatBudget(v)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
