package dataset

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
)

func TestBuildQuery(t *testing.T) {
	got, err := BuildQuery([]string{"https://example.org/d/1"}, domain.LocaleEnglish)
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	for _, want := range []string{
		"(<https://schema.org/Dataset> <https://example.org/Dataset>)",
		"?s <https://schema.org/publisher> ?o",
		"?s <https://schema.org/license> ?o",
		"<https://example.org/publisher>",
		"<https://example.org/keyword>",
		"<https://example.org/datePublished>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("query missing %q:\n%s", want, got)
		}
	}
}
