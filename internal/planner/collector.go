package planner

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/tripplanner/internal/ctxlog"
	"github.com/vk/tripplanner/internal/prompt"
	"github.com/vk/tripplanner/internal/summary"
	"github.com/vk/tripplanner/internal/trip"
)

// Collector fills a trip record from answers read on its input stream.
type Collector struct {
	prompt *prompt.Prompter
	out    io.Writer
	format summary.Format
	plan   bool
}

// New creates a Collector that prompts on out, reads answers from in and
// renders the final summary in the given format.
func New(in io.Reader, out io.Writer, format summary.Format) *Collector {
	return &Collector{
		prompt: prompt.New(in, out),
		out:    out,
		format: format,
	}
}

// EnablePlan makes the text summary end with the extended trip plan.
func (c *Collector) EnablePlan() {
	c.plan = true
}

// Run creates a record and drives it through all three phases. On error the
// partially filled record is returned alongside it and no summary is printed.
func (c *Collector) Run(ctx context.Context) (*trip.Details, error) {
	logger := ctxlog.FromContext(ctx)
	rec := trip.New()
	logger.Debug("Planning session started.", "trip_id", rec.ID)

	if err := c.CollectBasicInfo(ctx, rec); err != nil {
		return rec, fmt.Errorf("collecting basic info: %w", err)
	}
	logger.Debug("Basic info collected.", "members", len(rec.Members))

	if err := c.CollectTripPreferences(ctx, rec); err != nil {
		return rec, fmt.Errorf("collecting trip preferences: %w", err)
	}
	logger.Debug("Trip preferences collected.", "destinations", len(rec.Destinations))

	if err := c.DisplayTripSummary(ctx, rec); err != nil {
		return rec, fmt.Errorf("displaying trip summary: %w", err)
	}
	logger.Debug("Planning session finished.", "format", c.format)
	return rec, nil
}

// CollectBasicInfo asks for the main contact and then for each traveller's
// name and age. Members read before a failure stay on the record.
func (c *Collector) CollectBasicInfo(ctx context.Context, rec *trip.Details) error {
	if err := c.prompt.Say("", "=== Trip Planning System ===", ""); err != nil {
		return err
	}

	name, err := c.prompt.Text(ctx, "Enter your name: ")
	if err != nil {
		return err
	}
	rec.MainContact = name

	count, err := c.prompt.Int(ctx, "member count", "Enter the number of people traveling (including yourself): ")
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if err := c.prompt.Say("", fmt.Sprintf("Member %d details:", i+1)); err != nil {
			return err
		}
		memberName, err := c.prompt.Text(ctx, "Name: ")
		if err != nil {
			return err
		}
		age, err := c.prompt.Int(ctx, "age", "Age: ")
		if err != nil {
			return err
		}
		rec.AddMember(memberName, age)
	}
	return nil
}

// CollectTripPreferences asks for budget, destinations, the three menu
// preferences and the trip dates.
func (c *Collector) CollectTripPreferences(ctx context.Context, rec *trip.Details) error {
	budget, err := c.prompt.Float(ctx, "budget", "\nWhat is your total budget for the trip? $")
	if err != nil {
		return err
	}
	rec.Budget = budget

	if err := c.prompt.Say("", "Enter your preferred destinations (separate multiple places with commas):"); err != nil {
		return err
	}
	places, err := c.prompt.Text(ctx, "")
	if err != nil {
		return err
	}
	rec.Destinations = trip.ParseDestinations(places)

	rec.FoodPreference, err = askMenu(ctx, c.prompt, "food preference", "\nFood preference:", trip.FoodChoices)
	if err != nil {
		return err
	}

	rec.Accommodation, err = askMenu(ctx, c.prompt, "accommodation", "\nAccommodation preference:", trip.AccommodationChoices)
	if err != nil {
		return err
	}

	rec.StartDate, err = c.prompt.Text(ctx, "\nEnter start date (DD/MM/YYYY): ")
	if err != nil {
		return err
	}

	rec.Duration, err = c.prompt.Int(ctx, "duration", "Enter trip duration (in days): ")
	if err != nil {
		return err
	}

	rec.WeatherPreference, err = askMenu(ctx, c.prompt, "weather preference", "\nPreferred weather:", trip.WeatherChoices)
	return err
}

// DisplayTripSummary prints the record in the collector's output format.
func (c *Collector) DisplayTripSummary(ctx context.Context, rec *trip.Details) error {
	ctxlog.FromContext(ctx).Debug("Rendering summary.", "format", c.format)
	if c.format == summary.FormatJSON || c.format == summary.FormatHCL {
		// The last prompt leaves the cursor mid-line; exports start on a fresh one.
		if _, err := io.WriteString(c.out, "\n"); err != nil {
			return err
		}
	}
	if err := summary.Render(c.out, rec, c.format); err != nil {
		return err
	}
	if c.plan {
		return summary.WritePlan(c.out, rec)
	}
	return nil
}

func askMenu[T ~string](ctx context.Context, p *prompt.Prompter, field, title string, choices trip.Choices[T]) (T, error) {
	n, err := p.Menu(ctx, field, title, choices.Labels())
	if err != nil {
		var zero T
		return zero, err
	}
	return choices.Lookup(field, n)
}
