package cli

import (
	"context"
	"fmt"

	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/models"
	"github.com/veriscan/veriscan-go/internal/client/stats"
)

// Dashboard prints the aggregate verification counts and usage insights.
func (a *App) Dashboard(ctx context.Context) error {
	return a.protected(a.dashboard)(ctx)
}

func (a *App) dashboard(ctx context.Context) error {
	s, err := a.stats.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, api.Detail(err, "Could not load statistics. Please try again."))
		return err
	}

	fmt.Fprintf(a.out, "Hello, %s!\n\n", a.displayName())

	if s.Total == 0 {
		fmt.Fprintln(a.out, "No verifications yet. Try 'verifytext' to get started.")
		return nil
	}

	fmt.Fprintf(a.out, "Total verifications: %d\n", s.Total)
	fmt.Fprintf(a.out, "AI detected:         %d (%d%%)\n", s.AIDetected, stats.Percent(s.AIDetected, s.Total))
	fmt.Fprintf(a.out, "Human created:       %d (%d%%)\n", s.HumanDetected, stats.Percent(s.HumanDetected, s.Total))
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, "Usage by content type:")
	for _, kind := range models.Kinds() {
		fmt.Fprintf(a.out, "  %-6s %s\n", kind.String()+":", stats.UsageLine(*s, kind))
	}
	fmt.Fprintln(a.out)

	fmt.Fprintf(a.out, "AI detection rate: %d%%\n", stats.AIDetectionRate(*s))
	return nil
}
