package result

import (
	"testing"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
)

func TestPage(t *testing.T) {
	name := "Canvas"
	filters := map[string][]domain.SearchResultFilter{
		"materials": {{ID: "Canvas", Name: &name, TotalCount: 3}},
	}
	p := New(42, []string{"https://example.org/o/2", "https://example.org/o/1"}, filters)

	if p.TotalCount() != 42 {
		t.Errorf("TotalCount() = %d", p.TotalCount())
	}
	if len(p.IDs()) != 2 || p.IDs()[0] != "https://example.org/o/2" {
		t.Errorf("IDs() = %v", p.IDs())
	}
	if p.Filters()["materials"][0].TotalCount != 3 {
		t.Errorf("Filters() = %v", p.Filters())
	}
}
