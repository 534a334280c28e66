package pressure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/types"
)

func passEntry(t *testing.T) *matrix.Entry {
	t.Helper()
	store, err := matrix.NewStore()
	require.NoError(t, err)
	entry, err := store.Entry(types.ConceptIntermediate)
	require.NoError(t, err)
	return entry
}

func puntEntry(t *testing.T) *matrix.Entry {
	t.Helper()
	store, err := matrix.NewStore()
	require.NoError(t, err)
	entry, err := store.Entry(types.ConceptMidfieldPunt)
	require.NoError(t, err)
	return entry
}

func neutralPassPackage() *types.PersonnelPackage {
	pkg := types.NewPersonnelPackage("shotgun", "zone")
	pkg.Thrower = &types.Thrower{Mobility: types.RatingNeutral}
	return pkg
}

func TestSackProbabilityNeutralMatchup(t *testing.T) {
	entry := passEntry(t)
	p := SackProbability(neutralPassPackage(), entry, types.PostureZone)

	// Even protection and rush with exposure 1.0 reproduces the base rate.
	assert.InDelta(t, 0.065, p, 1e-9)
}

func TestSackProbabilityBlitzOrdering(t *testing.T) {
	entry := passEntry(t)
	pkg := neutralPassPackage()

	standard := SackProbability(pkg, entry, types.PostureZone)
	blitz := SackProbability(pkg, entry, types.PostureBlitz)
	safety := SackProbability(pkg, entry, types.PostureSafetyBlitz)

	assert.Greater(t, blitz, standard)
	assert.Greater(t, safety, blitz, "safety blitz adds secondary pressure on top of the blitz step")
}

func TestSackProbabilityMobilityRelief(t *testing.T) {
	entry := passEntry(t)

	scrambler := neutralPassPackage()
	scrambler.Thrower.Mobility = 95

	statue := neutralPassPackage()
	statue.Thrower.Mobility = 10

	assert.Less(t,
		SackProbability(scrambler, entry, types.PostureBlitz),
		SackProbability(statue, entry, types.PostureBlitz))
}

func TestSackProbabilityProtectionHelps(t *testing.T) {
	entry := passEntry(t)

	bare := neutralPassPackage()

	helped := neutralPassPackage()
	helped.ExtraProtectors = []*types.Blocker{
		{PassProtection: 80},
		{PassProtection: 75},
	}

	assert.Less(t,
		SackProbability(helped, entry, types.PostureBlitz),
		SackProbability(bare, entry, types.PostureBlitz))
}

func TestSackProbabilityProtectorContributionIsCapped(t *testing.T) {
	entry := passEntry(t)

	three := neutralPassPackage()
	for i := 0; i < 3; i++ {
		three.ExtraProtectors = append(three.ExtraProtectors, &types.Blocker{PassProtection: 99})
	}

	six := neutralPassPackage()
	for i := 0; i < 6; i++ {
		six.ExtraProtectors = append(six.ExtraProtectors, &types.Blocker{PassProtection: 99})
	}

	// Past the total cap, more bodies kept in buy nothing.
	assert.InDelta(t,
		SackProbability(three, entry, types.PostureZone),
		SackProbability(six, entry, types.PostureZone), 1e-9)
}

func TestSackProbabilityStrongRushRaisesRate(t *testing.T) {
	entry := passEntry(t)

	pkg := neutralPassPackage()
	heavy := neutralPassPackage()
	heavy.RushFront = 95

	assert.Greater(t,
		SackProbability(heavy, entry, types.PostureZone),
		SackProbability(pkg, entry, types.PostureZone))
}

func TestSackProbabilityBounded(t *testing.T) {
	entry := passEntry(t)

	worst := neutralPassPackage()
	worst.OffensiveLine = 1
	worst.RushFront = 99
	worst.SecondaryRush = 99
	worst.Thrower.Mobility = 1
	for i := 0; i < 4; i++ {
		worst.Blitzers = append(worst.Blitzers, &types.Rusher{PassRush: 99})
	}

	p := SackProbability(worst, entry, types.PostureSafetyBlitz)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestBlockProbabilityPostureScaling(t *testing.T) {
	entry := puntEntry(t)
	pkg := types.NewPersonnelPackage("punt", "punt_return")

	standard := BlockProbability(pkg, entry, types.PostureZone)
	rush := BlockProbability(pkg, entry, types.PostureBlitz)
	safe := BlockProbability(pkg, entry, types.PosturePrevent)

	assert.Greater(t, rush, standard, "punt block look raises exposure")
	assert.Less(t, safe, standard, "safe return look suppresses it")

	// Neutral matchup against the standard look reproduces the base rate.
	assert.InDelta(t, 0.012, standard, 1e-9)
}

func TestBlockProbabilityBounded(t *testing.T) {
	entry := puntEntry(t)
	pkg := types.NewPersonnelPackage("punt", "punt_block")
	pkg.OffensiveLine = 1
	pkg.RushFront = 99

	p := BlockProbability(pkg, entry, types.PostureSafetyBlitz)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}
