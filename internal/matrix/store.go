package matrix

import (
	"fmt"
	"sort"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// requiredConcepts is the closed set of concepts the engine can classify
// into. A store missing any of them fails validation at load time.
var requiredConcepts = []types.Concept{
	types.ConceptQuickGame,
	types.ConceptIntermediate,
	types.ConceptVertical,
	types.ConceptScreens,
	types.ConceptPlayAction,
	types.ConceptDeepPunt,
	types.ConceptMidfieldPunt,
	types.ConceptShortPunt,
	types.ConceptEmergencyPunt,
}

// Store is the process-wide, read-only concept matrix. It is constructed
// once at startup, validated, and then safe to share across goroutines
// without locking.
type Store struct {
	entries map[types.Concept]*Entry
}

// NewStore builds a store from the built-in defaults.
func NewStore() (*Store, error) {
	s := &Store{entries: defaultEntries()}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("concept matrix validation failed: %w", err)
	}
	return s, nil
}

// Entry returns the matrix row for a concept. A miss is a configuration
// error surfaced at startup, never a per-play condition: the classifier only
// emits concepts the validated store contains.
func (s *Store) Entry(c types.Concept) (*Entry, error) {
	e, ok := s.entries[c]
	if !ok {
		return nil, fmt.Errorf("concept %s not present in matrix store", c)
	}
	return e, nil
}

// Concepts returns the stored concept names in stable order.
func (s *Store) Concepts() []types.Concept {
	out := make([]types.Concept, 0, len(s.entries))
	for c := range s.entries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks the store is complete and internally consistent. Any
// failure here is fatal: the engine refuses to simulate until corrected.
func (s *Store) Validate() error {
	for _, c := range requiredConcepts {
		e, ok := s.entries[c]
		if !ok {
			return fmt.Errorf("missing required concept %s", c)
		}
		if e.Concept != c {
			return fmt.Errorf("concept %s stored under key %s", e.Concept, c)
		}
		if err := e.validate(); err != nil {
			return err
		}
	}
	for c := range s.entries {
		if c.Family() != types.FamilyPass && c.Family() != types.FamilyPunt {
			return fmt.Errorf("concept %s has unknown family", c)
		}
	}
	return nil
}
