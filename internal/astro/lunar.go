package astro

import (
	"math"
	"time"
)

// LunarPhase names one of the eight synodic phases.
type LunarPhase string

const (
	PhaseNewMoon        LunarPhase = "New Moon"
	PhaseWaxingCrescent LunarPhase = "Waxing Crescent"
	PhaseFirstQuarter   LunarPhase = "First Quarter"
	PhaseWaxingGibbous  LunarPhase = "Waxing Gibbous"
	PhaseFullMoon       LunarPhase = "Full Moon"
	PhaseWaningGibbous  LunarPhase = "Waning Gibbous"
	PhaseLastQuarter    LunarPhase = "Last Quarter"
	PhaseWaningCrescent LunarPhase = "Waning Crescent"
)

// synodicPeriodDays is the mean synodic month length.
const synodicPeriodDays = 29.53058867

// referenceNewMoon is a known new moon epoch (2023-01-21 20:53 UTC).
var referenceNewMoon = time.Date(2023, 1, 21, 20, 53, 0, 0, time.UTC)

// LunarState is the computed phase and illumination at a moment.
type LunarState struct {
	Phase        LunarPhase
	Illumination float64 // [0,1] illuminated fraction
}

// CurrentLunarPhase computes the approximate lunar phase at t from the mean
// synodic period. Accuracy is within a day of the true phase, sufficient for
// affinity modifiers.
func CurrentLunarPhase(t time.Time) LunarState {
	days := t.Sub(referenceNewMoon).Seconds() / 86400
	pos := math.Mod(days/synodicPeriodDays, 1.0)
	if pos < 0 {
		pos += 1.0
	}

	illumination := 0.5 * (1 - math.Cos(2*math.Pi*pos))

	var phase LunarPhase
	switch {
	case pos < 0.03 || pos > 0.97:
		phase = PhaseNewMoon
	case pos > 0.22 && pos < 0.28:
		phase = PhaseFirstQuarter
	case pos > 0.47 && pos < 0.53:
		phase = PhaseFullMoon
	case pos > 0.72 && pos < 0.78:
		phase = PhaseLastQuarter
	case pos < 0.25:
		phase = PhaseWaxingCrescent
	case pos < 0.5:
		phase = PhaseWaxingGibbous
	case pos < 0.75:
		phase = PhaseWaningGibbous
	default:
		phase = PhaseWaningCrescent
	}

	return LunarState{Phase: phase, Illumination: illumination}
}

// LunarModifier returns the affinity multiplier for an ingredient's lunar
// category under the given phase. Categories without a phase affinity get 1.0.
func LunarModifier(phase LunarPhase, lunarTag string) float64 {
	switch {
	case phase == PhaseNewMoon && lunarTag == "Root/Grounding":
		return 1.20
	case phase == PhaseFullMoon && lunarTag == "High-Water/Cooling":
		return 1.20
	case (phase == PhaseWaningGibbous || phase == PhaseWaningCrescent) && lunarTag == "Detoxifying":
		return 1.10
	}
	return 1.0
}
