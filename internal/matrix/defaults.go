package matrix

import "github.com/stitts-dev/gridiron-sim/internal/types"

// defaultEntries is the built-in concept matrix, calibrated against league
// play-by-play aggregates. Rates here are bases before effectiveness and
// posture adjustments; the validation harness guards the end-to-end numbers.
func defaultEntries() map[types.Concept]*Entry {
	return map[types.Concept]*Entry{
		types.ConceptQuickGame: {
			Concept: types.ConceptQuickGame,
			Weights: map[Role]map[string]float64{
				RoleThrower: {
					types.AttrAccuracy:       0.45,
					types.AttrDecisionMaking: 0.35,
					types.AttrReleaseTime:    0.20,
				},
				RoleReceiver: {
					types.AttrRouteRunning: 0.40,
					types.AttrHands:        0.40,
					types.AttrSpeed:        0.20,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         0.98,
				types.PostureZone:        1.04,
				types.PostureBlitz:       1.05,
				types.PostureSafetyBlitz: 1.03,
				types.PosturePrevent:     1.08,
			},
			Pass: &PassParams{
				CompletionRate:   0.68,
				BaseYards:        8.5,
				TimeToThrow:      1.8,
				PressureExposure: 0.45,
				InterceptionBase: 0.06,
				Variance:         5.5,
			},
		},
		types.ConceptIntermediate: {
			Concept: types.ConceptIntermediate,
			Weights: map[Role]map[string]float64{
				RoleThrower: {
					types.AttrAccuracy:       0.40,
					types.AttrDecisionMaking: 0.30,
					types.AttrArmStrength:    0.30,
				},
				RoleReceiver: {
					types.AttrRouteRunning: 0.40,
					types.AttrHands:        0.35,
					types.AttrSpeed:        0.25,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.00,
				types.PostureZone:        1.00,
				types.PostureBlitz:       0.95,
				types.PostureSafetyBlitz: 0.93,
				types.PosturePrevent:     1.06,
			},
			Pass: &PassParams{
				CompletionRate:   0.62,
				BaseYards:        12.0,
				TimeToThrow:      2.5,
				PressureExposure: 1.00,
				InterceptionBase: 0.08,
				Variance:         7.0,
			},
		},
		types.ConceptVertical: {
			Concept: types.ConceptVertical,
			Weights: map[Role]map[string]float64{
				RoleThrower: {
					types.AttrArmStrength:    0.45,
					types.AttrAccuracy:       0.30,
					types.AttrDecisionMaking: 0.25,
				},
				RoleReceiver: {
					types.AttrSpeed:        0.50,
					types.AttrHands:        0.30,
					types.AttrRouteRunning: 0.20,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.02,
				types.PostureZone:        0.95,
				types.PostureBlitz:       1.04,
				types.PostureSafetyBlitz: 0.98,
				types.PosturePrevent:     0.80,
			},
			Pass: &PassParams{
				CompletionRate:   0.44,
				BaseYards:        21.0,
				TimeToThrow:      3.1,
				PressureExposure: 1.45,
				InterceptionBase: 0.11,
				Variance:         10.0,
			},
		},
		types.ConceptScreens: {
			Concept: types.ConceptScreens,
			Weights: map[Role]map[string]float64{
				RoleThrower: {
					types.AttrDecisionMaking: 0.50,
					types.AttrReleaseTime:    0.30,
					types.AttrAccuracy:       0.20,
				},
				RoleReceiver: {
					types.AttrVision: 0.45,
					types.AttrSpeed:  0.35,
					types.AttrHands:  0.20,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.03,
				types.PostureZone:        0.98,
				types.PostureBlitz:       1.10,
				types.PostureSafetyBlitz: 1.08,
				types.PosturePrevent:     0.95,
			},
			Pass: &PassParams{
				CompletionRate:   0.72,
				BaseYards:        7.5,
				TimeToThrow:      1.5,
				PressureExposure: 0.30,
				InterceptionBase: 0.05,
				Variance:         8.0,
			},
		},
		types.ConceptPlayAction: {
			Concept: types.ConceptPlayAction,
			Weights: map[Role]map[string]float64{
				RoleThrower: {
					types.AttrAccuracy:       0.35,
					types.AttrArmStrength:    0.35,
					types.AttrDecisionMaking: 0.30,
				},
				RoleReceiver: {
					types.AttrRouteRunning: 0.35,
					types.AttrHands:        0.35,
					types.AttrSpeed:        0.30,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.04,
				types.PostureZone:        1.00,
				types.PostureBlitz:       0.92,
				types.PostureSafetyBlitz: 0.90,
				types.PosturePrevent:     1.02,
			},
			Pass: &PassParams{
				CompletionRate:   0.60,
				BaseYards:        13.0,
				TimeToThrow:      2.9,
				PressureExposure: 1.25,
				InterceptionBase: 0.08,
				Variance:         8.0,
			},
		},

		types.ConceptDeepPunt: {
			Concept: types.ConceptDeepPunt,
			Weights: map[Role]map[string]float64{
				RoleKicker: {
					types.AttrLegStrength: 0.50,
					types.AttrHangTime:    0.30,
					types.AttrComposure:   0.20,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.00,
				types.PostureZone:        1.00,
				types.PostureBlitz:       1.50,
				types.PostureSafetyBlitz: 1.70,
				types.PosturePrevent:     0.60,
			},
			Punt: &PuntParams{
				GrossDistance:    46.0,
				Variance:         6.0,
				HangTime:         4.5,
				OperationTime:    2.1,
				BlockExposure:    1.00,
				OutOfBoundsBase:  0.04,
				CoffinCornerBase: 0.01,
				IllegalTouchBase: 0.015,
				MuffBase:         0.015,
				DownedBase:       0.08,
				FairCatchBase:    0.22,
				ReturnBase:       7.5,
			},
		},
		types.ConceptMidfieldPunt: {
			Concept: types.ConceptMidfieldPunt,
			Weights: map[Role]map[string]float64{
				RoleKicker: {
					types.AttrLegStrength: 0.40,
					types.AttrHangTime:    0.35,
					types.AttrPlacement:   0.25,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.00,
				types.PostureZone:        1.00,
				types.PostureBlitz:       1.50,
				types.PostureSafetyBlitz: 1.70,
				types.PosturePrevent:     0.60,
			},
			Punt: &PuntParams{
				GrossDistance:    44.0,
				Variance:         6.0,
				HangTime:         4.4,
				OperationTime:    2.1,
				BlockExposure:    1.00,
				OutOfBoundsBase:  0.05,
				CoffinCornerBase: 0.05,
				IllegalTouchBase: 0.02,
				MuffBase:         0.015,
				DownedBase:       0.10,
				FairCatchBase:    0.30,
				ReturnBase:       7.0,
			},
		},
		types.ConceptShortPunt: {
			Concept: types.ConceptShortPunt,
			Weights: map[Role]map[string]float64{
				RoleKicker: {
					types.AttrPlacement: 0.50,
					types.AttrHangTime:  0.30,
					types.AttrComposure: 0.20,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.00,
				types.PostureZone:        1.00,
				types.PostureBlitz:       1.40,
				types.PostureSafetyBlitz: 1.60,
				types.PosturePrevent:     0.60,
			},
			Punt: &PuntParams{
				GrossDistance:    36.0,
				Variance:         5.0,
				HangTime:         4.6,
				OperationTime:    2.1,
				BlockExposure:    0.90,
				OutOfBoundsBase:  0.06,
				CoffinCornerBase: 0.12,
				IllegalTouchBase: 0.03,
				MuffBase:         0.010,
				DownedBase:       0.20,
				FairCatchBase:    0.28,
				ReturnBase:       5.0,
			},
		},
		types.ConceptEmergencyPunt: {
			Concept: types.ConceptEmergencyPunt,
			Weights: map[Role]map[string]float64{
				RoleKicker: {
					types.AttrComposure:   0.40,
					types.AttrLegStrength: 0.35,
					types.AttrHangTime:    0.25,
				},
			},
			PostureModifiers: map[types.Posture]float64{
				types.PostureMan:         1.00,
				types.PostureZone:        1.00,
				types.PostureBlitz:       1.60,
				types.PostureSafetyBlitz: 1.80,
				types.PosturePrevent:     0.70,
			},
			Punt: &PuntParams{
				GrossDistance:    40.0,
				Variance:         8.0,
				HangTime:         4.0,
				OperationTime:    1.7,
				BlockExposure:    1.80,
				OutOfBoundsBase:  0.05,
				CoffinCornerBase: 0.01,
				IllegalTouchBase: 0.02,
				MuffBase:         0.020,
				DownedBase:       0.08,
				FairCatchBase:    0.20,
				ReturnBase:       9.0,
			},
		},
	}
}
