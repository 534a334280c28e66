package types

// Rating is a bounded 1-99 attribute value. 50 is league average and the
// neutral fallback for missing data.
type Rating int

const (
	RatingMin     Rating = 1
	RatingMax     Rating = 99
	RatingNeutral Rating = 50
)

// Clamp returns the rating pulled back to the valid 1-99 scale.
func (r Rating) Clamp() Rating {
	if r < RatingMin {
		return RatingMin
	}
	if r > RatingMax {
		return RatingMax
	}
	return r
}

// Norm maps the rating onto [0,1] with 50 landing exactly on 0.5.
func (r Rating) Norm() float64 {
	return float64(r.Clamp()-RatingMin) / float64(RatingMax-RatingMin)
}

// Attribute names used by concept weight tables.
const (
	AttrAccuracy       = "accuracy"
	AttrArmStrength    = "arm_strength"
	AttrDecisionMaking = "decision_making"
	AttrReleaseTime    = "release_time"
	AttrMobility       = "mobility"

	AttrRouteRunning = "route_running"
	AttrHands        = "hands"
	AttrSpeed        = "speed"
	AttrVision       = "vision"

	AttrLegStrength = "leg_strength"
	AttrHangTime    = "hang_time"
	AttrPlacement   = "placement"
	AttrComposure   = "composure"

	AttrPassProtection = "pass_protection"
)

// Participant exposes attribute lookup for the effectiveness calculator.
// Each role implements it with an exhaustive switch over its own attributes
// and an explicit unknown branch, so there is no duck-typed bag access.
type Participant interface {
	Attribute(name string) (Rating, bool)
}

// Thrower is the passer on a pass-family play.
type Thrower struct {
	Name           string
	Accuracy       Rating
	ArmStrength    Rating
	DecisionMaking Rating
	ReleaseTime    Rating
	Mobility       Rating
}

func (t *Thrower) Attribute(name string) (Rating, bool) {
	switch name {
	case AttrAccuracy:
		return t.Accuracy, true
	case AttrArmStrength:
		return t.ArmStrength, true
	case AttrDecisionMaking:
		return t.DecisionMaking, true
	case AttrReleaseTime:
		return t.ReleaseTime, true
	case AttrMobility:
		return t.Mobility, true
	default:
		return 0, false
	}
}

// Receiver is the primary target, or the return man on a punt.
type Receiver struct {
	Name         string
	RouteRunning Rating
	Hands        Rating
	Speed        Rating
	Vision       Rating
}

func (r *Receiver) Attribute(name string) (Rating, bool) {
	switch name {
	case AttrRouteRunning:
		return r.RouteRunning, true
	case AttrHands:
		return r.Hands, true
	case AttrSpeed:
		return r.Speed, true
	case AttrVision:
		return r.Vision, true
	default:
		return 0, false
	}
}

// Kicker covers both punters and placekickers.
type Kicker struct {
	Name        string
	LegStrength Rating
	HangTime    Rating
	Placement   Rating
	Composure   Rating
}

func (k *Kicker) Attribute(name string) (Rating, bool) {
	switch name {
	case AttrLegStrength:
		return k.LegStrength, true
	case AttrHangTime:
		return k.HangTime, true
	case AttrPlacement:
		return k.Placement, true
	case AttrComposure:
		return k.Composure, true
	default:
		return 0, false
	}
}

// Blocker is a back or tight end kept in to protect.
type Blocker struct {
	Name           string
	PassProtection Rating
}

func (b *Blocker) Attribute(name string) (Rating, bool) {
	switch name {
	case AttrPassProtection:
		return b.PassProtection, true
	default:
		return 0, false
	}
}

// Rusher is an extra defender sent on a blitz.
type Rusher struct {
	Name     string
	PassRush Rating
}

// PersonnelPackage names the formation and defensive call and references the
// participants relevant to the play. The engine only reads through it.
type PersonnelPackage struct {
	Formation     string
	DefensiveCall string

	// Offense
	Thrower         *Thrower
	PrimaryReceiver *Receiver
	Punter          *Kicker
	OffensiveLine   Rating
	ExtraProtectors []*Blocker

	// Defense
	RushFront     Rating
	Blitzers      []*Rusher
	SecondaryRush Rating
	Coverage      Rating

	// Punt units
	PuntCoverage Rating
	Returner     *Receiver
}

// NewPersonnelPackage returns a package with every unit rated neutral, which
// is the documented fallback for missing personnel data.
func NewPersonnelPackage(formation, defensiveCall string) *PersonnelPackage {
	return &PersonnelPackage{
		Formation:     formation,
		DefensiveCall: defensiveCall,
		OffensiveLine: RatingNeutral,
		RushFront:     RatingNeutral,
		SecondaryRush: RatingNeutral,
		Coverage:      RatingNeutral,
		PuntCoverage:  RatingNeutral,
	}
}
