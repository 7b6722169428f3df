package filter

import (
	"math/rand"
	"testing"

	"github.com/cruzr/cruzr/internal/catalog"
)

func names(vs []catalog.Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

func equalNames(t *testing.T, got []catalog.Vehicle, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestApplySUVUnderHundredAvailable(t *testing.T) {
	c := Criteria{
		Types:        NewTypeSet(catalog.SUV),
		MaxPrice:     100,
		MinRating:    4.5,
		Availability: AvailableOnly,
	}
	equalNames(t, Apply(catalog.Default(), c), "Honda CR-V Comfort")
}

func TestApplyLuxuryIncludesUnavailableWhenAll(t *testing.T) {
	c := Criteria{Types: NewTypeSet(catalog.Luxury), MaxPrice: 300, Availability: All}
	got := Apply(catalog.Default(), c)
	equalNames(t, got, "Mercedes S-Class Chauffeur")
	if got[0].Status != catalog.StatusUnavailable {
		t.Fatalf("expected unavailable record, got %s", got[0].Status)
	}

	c.Availability = AvailableOnly
	equalNames(t, Apply(catalog.Default(), c))
}

func TestApplyEmptyTypesMatchesNothing(t *testing.T) {
	c := Criteria{Types: TypeSet{}, MaxPrice: 1e9, MinRating: 0, Availability: All}
	if got := Apply(catalog.Default(), c); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", names(got))
	}
	c.Types = nil
	if got := Apply(catalog.Default(), c); len(got) != 0 {
		t.Fatalf("expected no matches for nil set, got %v", names(got))
	}
}

func TestApplyBoundsAreInclusive(t *testing.T) {
	c := Criteria{
		Types:        NewTypeSet(catalog.KnownTypes...),
		MaxPrice:     92,
		MinRating:    4.6,
		Availability: All,
	}
	equalNames(t, Apply(catalog.Default(), c), "Toyota Prius Hybrid", "Honda CR-V Comfort")
}

func TestApplyFullCatalogPreservesOrder(t *testing.T) {
	c := Criteria{Types: NewTypeSet(catalog.KnownTypes...), MaxPrice: 300, Availability: All}
	equalNames(t, Apply(catalog.Default(), c),
		"Tesla Model Y Performance",
		"BMW X5 M Sport",
		"Toyota Prius Hybrid",
		"Mercedes S-Class Chauffeur",
		"Honda CR-V Comfort",
	)
}

func TestApplyMatchesPredicateForRandomCriteria(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vehicles := catalog.Default()
	for i := 0; i < 500; i++ {
		types := TypeSet{}
		for _, tp := range catalog.KnownTypes {
			if rng.Intn(2) == 0 {
				types[tp] = struct{}{}
			}
		}
		c := Criteria{
			Types:        types,
			MaxPrice:     float64(rng.Intn(320)),
			MinRating:    float64(rng.Intn(51)) / 10,
			Availability: Mode(rng.Intn(2)),
		}
		got := Apply(vehicles, c)

		var want []string
		for _, v := range vehicles {
			_, typeOK := types[v.Type]
			if typeOK && v.PricePerDay <= c.MaxPrice && v.Rating >= c.MinRating &&
				(c.Availability == All || v.Status == catalog.StatusAvailable) {
				want = append(want, v.Name)
			}
		}
		equalNames(t, got, want...)
	}
}
