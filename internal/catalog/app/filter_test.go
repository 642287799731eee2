package app

import (
	"reflect"
	"testing"

	"github.com/stonique/storefront/internal/catalog/domain"
)

var fixture = []domain.Product{
	{ID: 1, Title: "Fjallraven Backpack", Description: "Fits 15 inch laptops", Price: 30, Category: "a"},
	{ID: 2, Title: "Mens Casual Shirt", Description: "Slim fit", Price: 100, Category: "b"},
	{ID: 3, Title: "Gold Ring", Description: "Classic created wedding ring", Price: 300, Category: "a"},
}

func TestApplyFilters(t *testing.T) {
	t.Run("default spec is identity", func(t *testing.T) {
		got := ApplyFilters(fixture, FilterSpec{Category: "all", Price: BracketAll, Search: ""})
		if !reflect.DeepEqual(got, fixture) {
			t.Fatalf("expected input unchanged, got %+v", got)
		}
	})

	t.Run("zero spec is identity", func(t *testing.T) {
		got := ApplyFilters(fixture, FilterSpec{})
		if !reflect.DeepEqual(got, fixture) {
			t.Fatalf("expected input unchanged, got %+v", got)
		}
	})

	t.Run("filters are idempotent", func(t *testing.T) {
		spec := FilterSpec{Category: "a", Price: BracketLow}
		once := ApplyFilters(fixture, spec)
		twice := ApplyFilters(once, spec)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("expected idempotence, got %+v then %+v", once, twice)
		}
	})

	t.Run("category and bracket must both match", func(t *testing.T) {
		// category a holds prices 30 and 300; neither is in the medium bracket
		got := ApplyFilters(fixture, FilterSpec{Category: "a", Price: BracketMedium})
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %+v", got)
		}
	})

	t.Run("price brackets", func(t *testing.T) {
		cases := []struct {
			bracket Bracket
			wantIDs []int
		}{
			{BracketLow, []int{1}},
			{BracketMedium, []int{2}},
			{BracketHigh, []int{3}},
			{BracketAll, []int{1, 2, 3}},
		}
		for _, tc := range cases {
			got := ApplyFilters(fixture, FilterSpec{Price: tc.bracket})
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if !reflect.DeepEqual(ids, tc.wantIDs) {
				t.Fatalf("bracket %q: expected %v, got %v", tc.bracket, tc.wantIDs, ids)
			}
		}
	})

	t.Run("bracket boundaries", func(t *testing.T) {
		edge := []domain.Product{{ID: 1, Price: 50}, {ID: 2, Price: 200}}
		if got := ApplyFilters(edge, FilterSpec{Price: BracketLow}); len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("expected price 50 in low bracket, got %+v", got)
		}
		if got := ApplyFilters(edge, FilterSpec{Price: BracketMedium}); len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("expected price 200 in medium bracket, got %+v", got)
		}
	})

	t.Run("search is case-insensitive over title and description", func(t *testing.T) {
		got := ApplyFilters(fixture, FilterSpec{Search: "LAPTOPS"})
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("expected title/description match for id 1, got %+v", got)
		}

		got = ApplyFilters(fixture, FilterSpec{Search: "wedding"})
		if len(got) != 1 || got[0].ID != 3 {
			t.Fatalf("expected description match for id 3, got %+v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ApplyFilters(nil, FilterSpec{}); len(got) != 0 {
			t.Fatalf("expected empty result, got %+v", got)
		}
	})
}

func TestDeriveCategories(t *testing.T) {
	t.Run("all sentinel plus first-seen order", func(t *testing.T) {
		got := DeriveCategories(fixture)
		want := []string{"all", "a", "b"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty input keeps only the sentinel", func(t *testing.T) {
		got := DeriveCategories(nil)
		if !reflect.DeepEqual(got, []string{"all"}) {
			t.Fatalf("expected [all], got %v", got)
		}
	})
}

func TestParseBracket(t *testing.T) {
	if got := ParseBracket("medium"); got != BracketMedium {
		t.Fatalf("expected medium, got %q", got)
	}
	if got := ParseBracket("bogus"); got != BracketAll {
		t.Fatalf("expected fallback to all, got %q", got)
	}
	if got := ParseBracket(""); got != BracketAll {
		t.Fatalf("expected fallback to all, got %q", got)
	}
}
