package seed

import "github.com/goodnatureofminers/tainttrace-backend/internal/model"

// Set is an immutable address membership view of the seed set. It is built
// once at startup and injected into the scanner; NewSet builds one from an
// explicit address list.
type Set struct {
	addresses map[string]struct{}
}

// NewSet builds a Set from the given addresses.
func NewSet(addresses []string) *Set {
	m := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		m[a] = struct{}{}
	}
	return &Set{addresses: m}
}

// LoadSet reads every degree-0 address from the store.
func LoadSet(st TaintStore) (*Set, error) {
	s := &Set{addresses: make(map[string]struct{})}
	err := st.ScanTainted(func(rec model.TaintRecord) error {
		if rec.IsSeed() {
			s.addresses[rec.Address] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Contains reports seed membership.
func (s *Set) Contains(address string) bool {
	_, ok := s.addresses[address]
	return ok
}

// Len returns the number of seed addresses.
func (s *Set) Len() int {
	return len(s.addresses)
}
