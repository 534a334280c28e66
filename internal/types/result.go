package types

import "github.com/google/uuid"

// Concept is a named play archetype with its own base rates and weighting.
type Concept string

const (
	ConceptQuickGame    Concept = "quick_game"
	ConceptIntermediate Concept = "intermediate"
	ConceptVertical     Concept = "vertical"
	ConceptScreens      Concept = "screens"
	ConceptPlayAction   Concept = "play_action"

	ConceptDeepPunt      Concept = "deep_punt"
	ConceptMidfieldPunt  Concept = "midfield_punt"
	ConceptShortPunt     Concept = "short_punt"
	ConceptEmergencyPunt Concept = "emergency_punt"
)

// Family distinguishes the two play families the engine resolves.
type Family string

const (
	FamilyPass Family = "pass"
	FamilyPunt Family = "punt"
)

// Family returns the play family a concept belongs to.
func (c Concept) Family() Family {
	switch c {
	case ConceptDeepPunt, ConceptMidfieldPunt, ConceptShortPunt, ConceptEmergencyPunt:
		return FamilyPunt
	default:
		return FamilyPass
	}
}

// Posture is the defensive approach in effect for a play.
type Posture string

const (
	PostureMan         Posture = "man"
	PostureZone        Posture = "zone"
	PostureBlitz       Posture = "blitz"
	PostureSafetyBlitz Posture = "safety_blitz"
	PosturePrevent     Posture = "prevent"
)

// Postures lists every posture; concept matrix entries must carry a modifier
// for each one.
func Postures() []Posture {
	return []Posture{PostureMan, PostureZone, PostureBlitz, PostureSafetyBlitz, PosturePrevent}
}

// IsBlitz reports whether extra rushers are coming.
func (p Posture) IsBlitz() bool {
	return p == PostureBlitz || p == PostureSafetyBlitz
}

// Outcome is the terminal tag of a resolved play.
type Outcome string

const (
	OutcomeComplete          Outcome = "complete"
	OutcomeCompleteTouchdown Outcome = "complete_touchdown"
	OutcomeIncomplete        Outcome = "incomplete"
	OutcomeSack              Outcome = "sack"
	OutcomeInterception      Outcome = "interception"

	OutcomePuntBlocked     Outcome = "punt_blocked"
	OutcomeTouchback       Outcome = "touchback"
	OutcomeOutOfBounds     Outcome = "out_of_bounds"
	OutcomeCoffinCorner    Outcome = "coffin_corner"
	OutcomeIllegalTouching Outcome = "illegal_touching"
	OutcomePuntMuffed      Outcome = "punt_muffed"
	OutcomePuntDowned      Outcome = "punt_downed"
	OutcomeFairCatch       Outcome = "fair_catch"
	OutcomeReturned        Outcome = "punt_returned"
	OutcomeReturnTouchdown Outcome = "punt_return_touchdown"
)

// PlayResult is the immutable output of a single simulated play. Yards are
// signed net yards from the offense's perspective (gross punt distance minus
// return for punts). The caller applies it to game state; the engine does not
// advance clock or possession.
type PlayResult struct {
	ID       uuid.UUID `json:"id"`
	Family   Family    `json:"family"`
	Concept  Concept   `json:"concept"`
	Posture  Posture   `json:"posture"`
	Outcome  Outcome   `json:"outcome"`
	Yards    int       `json:"yards"`
	Elapsed  float64   `json:"elapsed_seconds"`
	Turnover bool      `json:"turnover"`
	Score    bool      `json:"score"`
}
