package gen

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExplainConcept(t *testing.T) {
	text, ok := ExplainConcept(ConceptEquivalencePrinciple)
	if !ok {
		t.Fatal("equivalence_principle should be a known concept")
	}
	if !strings.Contains(text, "eq_principle_strict_eq") {
		t.Error("explanation should name the strict equality wrapper")
	}

	if _, ok := ExplainConcept("unknown_concept"); ok {
		t.Error("unknown concepts should report ok=false")
	}
}

func TestConceptsSortedAndComplete(t *testing.T) {
	got := Concepts()
	if !sort.StringsAreSorted(got) {
		t.Error("Concepts() should be sorted")
	}

	want := []string{
		ConceptDeployment,
		ConceptEquivalencePrinciple,
		ConceptLLMIntegration,
		ConceptOptimisticDemocracy,
		ConceptPredictionMarkets,
		ConceptStorage,
		ConceptVectorStores,
		ConceptWebAccess,
	}
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("concept set mismatch (-want +got):\n%s", diff)
	}

	for _, concept := range got {
		text, ok := ExplainConcept(concept)
		if !ok || text == "" {
			t.Errorf("concept %s has no explanation", concept)
		}
	}
}
