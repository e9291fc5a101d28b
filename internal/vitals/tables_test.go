package vitals

import (
	"testing"

	"github.com/summit-health/backend/internal/models"
)

// The lookup tables are plain maps, so coverage of every enum member is
// enforced here instead of by a runtime default branch. A newly added
// metric kind or timeframe fails these tests until its display text and
// guidance exist.

func TestMetricLabels_CoverEveryKind(t *testing.T) {
	for _, kind := range models.AllMetricKinds {
		if label, ok := metricLabels[kind]; !ok || label == "" {
			t.Errorf("Missing display label for metric kind %q", kind)
		}
	}
	if len(metricLabels) != len(models.AllMetricKinds) {
		t.Errorf("Label table has %d entries, expected %d", len(metricLabels), len(models.AllMetricKinds))
	}
}

func TestTimeframePhrases_CoverEveryTimeframe(t *testing.T) {
	for _, tf := range models.AllTimeframes {
		if phrase, ok := timeframePhrases[tf]; !ok || phrase == "" {
			t.Errorf("Missing display phrase for timeframe %q", tf)
		}
	}
	if len(timeframePhrases) != len(models.AllTimeframes) {
		t.Errorf("Phrase table has %d entries, expected %d", len(timeframePhrases), len(models.AllTimeframes))
	}
}

func TestTrendGuidance_CoversEveryKindAndDirection(t *testing.T) {
	directions := []models.TrendDirection{models.DirectionImproving, models.DirectionDeclining}

	for _, kind := range models.AllMetricKinds {
		perKind, ok := trendGuidance[kind]
		if !ok {
			t.Errorf("No guidance for metric kind %q", kind)
			continue
		}
		for _, dir := range directions {
			g, ok := perKind[dir]
			if !ok {
				t.Errorf("No %s guidance for metric kind %q", dir, kind)
				continue
			}
			if g.Rationale == "" {
				t.Errorf("%s/%s: empty rationale", kind, dir)
			}
			if len(g.Actions) < 3 || len(g.Actions) > 4 {
				t.Errorf("%s/%s: expected 3-4 actions, got %d", kind, dir, len(g.Actions))
			}
			for i, action := range g.Actions {
				if action == "" {
					t.Errorf("%s/%s: empty action at index %d", kind, dir, i)
				}
			}
		}
		// Stable guidance is a shared constant, never a table entry.
		if _, ok := perKind[models.DirectionStable]; ok {
			t.Errorf("%s: stable direction must not appear in the guidance table", kind)
		}
	}

	if len(trendGuidance) != len(models.AllMetricKinds) {
		t.Errorf("Guidance table has %d kinds, expected %d", len(trendGuidance), len(models.AllMetricKinds))
	}
}

func TestTrendGuidance_RationalesAreDistinct(t *testing.T) {
	seen := make(map[string]string)
	for kind, perKind := range trendGuidance {
		for dir, g := range perKind {
			key := string(kind) + "/" + string(dir)
			if prev, ok := seen[g.Rationale]; ok {
				t.Errorf("Rationale shared between %s and %s", prev, key)
			}
			seen[g.Rationale] = key
		}
	}
}
