package matrix

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// LoadStore builds the concept matrix from built-in defaults, applies the
// optional YAML override file, and validates the result. Overrides may tune
// base rates and posture modifiers per concept; they cannot introduce new
// concepts. Any malformed override is fatal.
func LoadStore(path string, log *logrus.Logger) (*Store, error) {
	s := &Store{entries: defaultEntries()}

	if path != "" {
		if err := s.applyOverrides(path, log); err != nil {
			return nil, fmt.Errorf("failed to load concept matrix overrides from %s: %w", path, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("concept matrix validation failed: %w", err)
	}
	return s, nil
}

func (s *Store) applyOverrides(path string, log *logrus.Logger) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	declared := v.GetStringMap("concepts")
	for name := range declared {
		if _, ok := s.entries[types.Concept(name)]; !ok {
			return fmt.Errorf("override declares unknown concept %q", name)
		}
	}

	for concept, entry := range s.entries {
		key := "concepts." + string(concept)
		if !v.IsSet(key) {
			continue
		}

		if entry.Pass != nil && v.IsSet(key+".pass") {
			if err := v.UnmarshalKey(key+".pass", entry.Pass); err != nil {
				return fmt.Errorf("concept %s: bad pass params: %w", concept, err)
			}
		}
		if entry.Punt != nil && v.IsSet(key+".punt") {
			if err := v.UnmarshalKey(key+".punt", entry.Punt); err != nil {
				return fmt.Errorf("concept %s: bad punt params: %w", concept, err)
			}
		}
		if v.IsSet(key + ".posture_modifiers") {
			for _, posture := range types.Postures() {
				pKey := key + ".posture_modifiers." + string(posture)
				if v.IsSet(pKey) {
					entry.PostureModifiers[posture] = v.GetFloat64(pKey)
				}
			}
		}

		if log != nil {
			log.WithFields(logrus.Fields{
				"concept": concept,
				"source":  path,
			}).Debug("Applied concept matrix override")
		}
	}
	return nil
}
