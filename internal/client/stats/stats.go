// Package stats fetches the aggregate verification counts and derives the
// dashboard insight figures. Counts come from the remote service wholesale;
// they are never recomputed from the activity snapshot, which is bounded and
// may not cover the true totals.
package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/models"
)

// Aggregator loads and exposes the remote stats.
type Aggregator struct {
	client api.Client
}

func NewAggregator(client api.Client) *Aggregator {
	return &Aggregator{client: client}
}

// Load fetches the aggregate counts. Called once per authenticated dashboard
// visit.
func (a *Aggregator) Load(ctx context.Context) (*models.Stats, error) {
	s, err := a.client.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return s, nil
}

// Percent returns round(part/total*100). A zero total always yields 0,
// never NaN or an infinity.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// AIDetectionRate is the percentage of all verifications classified as
// AI-generated.
func AIDetectionRate(s models.Stats) int {
	return Percent(s.AIDetected, s.Total)
}

// UsageLine renders the per-kind usage hint shown on the verification
// panels, e.g. "Used 3 times" or "Never used".
func UsageLine(s models.Stats, kind models.ContentKind) string {
	n := s.CountFor(kind)
	switch n {
	case 0:
		return "Never used"
	case 1:
		return "Used 1 time"
	default:
		return fmt.Sprintf("Used %d times", n)
	}
}
