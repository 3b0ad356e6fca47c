package repos

import "agroconnect/internal/domain"

// RegionRepo lists the states offered in the shipping form and the cities
// known for some of them.
type RegionRepo struct {
	states []domain.State
	cities map[string][]string
}

func NewRegionRepo() *RegionRepo { return &RegionRepo{states: seedStates, cities: seedCities} }

func (r *RegionRepo) States() []domain.State {
	return append([]domain.State(nil), r.states...)
}

// Cities returns the cities of a state, or an empty list when none are known.
func (r *RegionRepo) Cities(state string) []string {
	return append([]string{}, r.cities[state]...)
}

// KnownState reports whether value or label names a state.
func (r *RegionRepo) KnownState(s string) bool {
	for _, st := range r.states {
		if st.Value == s || st.Label == s {
			return true
		}
	}
	return false
}
