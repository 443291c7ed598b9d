package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/veriscan/veriscan-go/internal/client/activity"
	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/models"
)

// Activity prints the current page of past verifications, fetching the
// snapshot first if none is cached yet.
func (a *App) Activity(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		if !a.engine.HasRecords() {
			if err := a.refreshSnapshot(ctx); err != nil {
				return err
			}
		}
		a.renderActivity()
		return nil
	})(ctx)
}

// Filter restricts the activity view to one content kind, or "all".
func (a *App) Filter(ctx context.Context, kind string) error {
	return a.protected(func(ctx context.Context) error {
		if kind != activity.FilterAll {
			if _, err := models.ParseContentKind(kind); err != nil {
				fmt.Fprintln(a.out, "Usage: filter <all|text|image|video>")
				return err
			}
		}
		a.engine.SetFilter(kind)
		a.renderActivity()
		return nil
	})(ctx)
}

// Search matches activity records against term. An empty term clears the
// search.
func (a *App) Search(ctx context.Context, term string) error {
	return a.protected(func(ctx context.Context) error {
		a.engine.SetSearch(term)
		a.renderActivity()
		return nil
	})(ctx)
}

// Page jumps to the given one-based page of the activity view.
func (a *App) Page(ctx context.Context, arg string) error {
	return a.protected(func(ctx context.Context) error {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Usage: page <number>")
			return err
		}
		// jumps past the end land on the last page
		if v := a.engine.View(); v.TotalPages > 0 && n > v.TotalPages {
			fmt.Fprintf(a.out, "Only %d page(s), showing the last.\n", v.TotalPages)
			n = v.TotalPages
		}
		if err := a.engine.SetPage(n - 1); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		a.renderActivity()
		return nil
	})(ctx)
}

// PageSize switches the number of records shown per page.
func (a *App) PageSize(ctx context.Context, arg string) error {
	return a.protected(func(ctx context.Context) error {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: pagesize <10|20|50|100>")
			return err
		}
		if err := a.engine.SetPageSize(n); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		a.renderActivity()
		return nil
	})(ctx)
}

// Refresh re-fetches the activity snapshot from the server.
func (a *App) Refresh(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		if err := a.refreshSnapshot(ctx); err != nil {
			return err
		}
		a.renderActivity()
		return nil
	})(ctx)
}

func (a *App) refreshSnapshot(ctx context.Context) error {
	if err := a.engine.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, api.Detail(err, "Could not load activity. Please try again."))
		return err
	}
	return nil
}

// renderActivity prints the current page. Two empty states are
// distinguished: nothing verified yet, and filters that match nothing.
func (a *App) renderActivity() {
	if !a.engine.HasRecords() {
		fmt.Fprintln(a.out, "No verifications yet. Try 'verifytext' to get started.")
		return
	}

	q := a.engine.Query()
	v := a.engine.View()

	if v.TotalCount == 0 {
		fmt.Fprintln(a.out, "No records match the current filter and search.")
		return
	}

	fmt.Fprintf(a.out, "Activity (filter: %s, search: %q, page %d/%d, %d records)\n",
		q.Filter, q.Search, q.PageIndex+1, v.TotalPages, v.TotalCount)
	for _, r := range v.Visible {
		fmt.Fprintf(a.out, "  %s  %-5s  %-5s  %3d%%  %s\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.Type, r.Label(),
			r.ConfidencePercent(), snippet(r.Content, 40))
	}
}

// snippet shortens s for a single list row.
func snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
