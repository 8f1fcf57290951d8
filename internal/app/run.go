package app

import (
	"context"
	"fmt"

	"github.com/vk/tripplanner/internal/ctxlog"
	"github.com/vk/tripplanner/internal/planner"
)

// Run executes one planning session. A failed answer ends the session: the
// error is reported once on the output stream and Run still returns nil, so
// the process exits normally. Only a failure to write that report is returned.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "output", a.config.Output)

	collector := planner.New(a.in, a.outW, a.config.Output)
	if a.config.Plan {
		collector.EnablePlan()
	}
	rec, err := collector.Run(ctx)
	if err != nil {
		a.logger.Error("Planning session aborted.", "trip_id", rec.ID, "error", err)
		if _, werr := fmt.Fprintf(a.outW, "\nAn error occurred: %s\nPlease try again with valid inputs.\n", err); werr != nil {
			return fmt.Errorf("failed to report error: %w", werr)
		}
		return nil
	}

	a.logger.Info("Planning session completed.", "trip_id", rec.ID, "members", len(rec.Members))
	a.logger.Debug("App.Run method finished.")
	return nil
}
