package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"ecaretag/internal/models"
	"ecaretag/internal/store"
)

func TestUsageCollectorExportsStoreCounters(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	st.IncrementCodeMatch(ctx, "E1")
	st.IncrementCodeMatch(ctx, "E1")
	st.IncrementCodeMatch(ctx, "C2")
	st.IncrementClassification(ctx, models.OutcomeMatched)
	st.IncrementClassification(ctx, models.OutcomeNoMatch)

	collector := &UsageCollector{store: st}

	expected := `
# HELP ecaretag_classifications_total Total classification requests by outcome
# TYPE ecaretag_classifications_total counter
ecaretag_classifications_total{outcome="matched"} 1
ecaretag_classifications_total{outcome="no_match"} 1
# HELP ecaretag_code_matches_total Total classification matches by taxonomy code
# TYPE ecaretag_code_matches_total counter
ecaretag_code_matches_total{code="C2"} 1
ecaretag_code_matches_total{code="E1"} 2
`
	if err := testutil.CollectAndCompare(collector, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics output: %v", err)
	}
}

func TestUsageCollectorEmptyStore(t *testing.T) {
	collector := &UsageCollector{store: store.NewMemory()}
	if count := testutil.CollectAndCount(collector); count != 0 {
		t.Errorf("empty store exported %d metrics", count)
	}
}
