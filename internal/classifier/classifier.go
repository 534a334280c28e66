// Package classifier maps the pre-snap picture onto a play concept and a
// defensive posture. Both mappings are pure lookups with documented defaults,
// so classification is idempotent and never errors.
package classifier

import (
	"strings"

	"github.com/stitts-dev/gridiron-sim/internal/types"
)

// formationConcepts is the fixed formation-to-concept table. Unrecognized
// formations fall back to the intermediate baseline.
var formationConcepts = map[string]types.Concept{
	"spread":           types.ConceptQuickGame,
	"empty":            types.ConceptQuickGame,
	"five_wide":        types.ConceptQuickGame,
	"pro_set":          types.ConceptIntermediate,
	"singleback":       types.ConceptIntermediate,
	"shotgun":          types.ConceptIntermediate,
	"four_verts":       types.ConceptVertical,
	"trips_deep":       types.ConceptVertical,
	"bunch":            types.ConceptScreens,
	"swing":            types.ConceptScreens,
	"i_form":           types.ConceptPlayAction,
	"heavy":            types.ConceptPlayAction,
	"play_action":      types.ConceptPlayAction,
	"punt":             types.ConceptMidfieldPunt,
	"punt_spread":      types.ConceptMidfieldPunt,
	"punt_tight":       types.ConceptMidfieldPunt,
	"pooch_punt":       types.ConceptShortPunt,
	"rugby_punt":       types.ConceptShortPunt,
	"max_protect_punt": types.ConceptDeepPunt,
}

// defensivePostures is the fixed call-to-posture table. Unrecognized calls
// resolve to zone, the league's modal coverage.
var defensivePostures = map[string]types.Posture{
	"man":          types.PostureMan,
	"press_man":    types.PostureMan,
	"cover_1":      types.PostureMan,
	"zone":         types.PostureZone,
	"cover_2":      types.PostureZone,
	"cover_3":      types.PostureZone,
	"cover_4":      types.PostureZone,
	"blitz":        types.PostureBlitz,
	"fire_zone":    types.PostureBlitz,
	"corner_blitz": types.PostureBlitz,
	"safety_blitz": types.PostureSafetyBlitz,
	"zero_blitz":   types.PostureSafetyBlitz,
	"prevent":      types.PosturePrevent,
	"punt_safe":    types.PosturePrevent,
	"punt_return":  types.PostureZone,
	"punt_block":   types.PostureBlitz,
}

// IsPuntFormation reports whether a formation belongs to the punt family.
func IsPuntFormation(formation string) bool {
	c, ok := formationConcepts[normalize(formation)]
	return ok && c.Family() == types.FamilyPunt
}

// Classify resolves a formation and field state to a play concept.
//
// Situational overrides beat the formation table, in this precedence order
// (highest first): punt emergency distance, punt deep territory, punt short
// territory, pass goal line, pass late-down long yardage, pass late-down
// short yardage. Goal line therefore beats 3rd-and-long when both apply.
func Classify(formation string, field types.FieldState) types.Concept {
	base := lookupConcept(formation)

	if base.Family() == types.FamilyPunt {
		switch {
		case field.YardsToGo >= types.EmergencyPuntToGo:
			return types.ConceptEmergencyPunt
		case field.FieldPosition <= types.DeepPuntPosition:
			return types.ConceptDeepPunt
		case field.FieldPosition >= types.ShortPuntPosition:
			return types.ConceptShortPunt
		default:
			return base
		}
	}

	switch {
	case field.IsGoalLine():
		return types.ConceptQuickGame
	case field.IsLateDown() && field.IsLongYardage():
		return types.ConceptVertical
	case field.IsLateDown() && field.IsShortYardage():
		return types.ConceptQuickGame
	default:
		return base
	}
}

// ClassifyPosture resolves a defensive call to a posture.
func ClassifyPosture(defensiveCall string) types.Posture {
	if p, ok := defensivePostures[normalize(defensiveCall)]; ok {
		return p
	}
	return types.PostureZone
}

func lookupConcept(formation string) types.Concept {
	if c, ok := formationConcepts[normalize(formation)]; ok {
		return c
	}
	return types.ConceptIntermediate
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
