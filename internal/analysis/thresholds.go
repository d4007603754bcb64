// Package analysis turns a resolved metric store into narrative findings.
// Every topic function is a pure read over the store: a missing input metric
// drops its line, a topic with nothing resolvable falls back to an explicit
// insufficient-data line, and nothing here can fail.
package analysis

// Thresholds collects the clinical cut-offs the narrative rules apply.
// Several of these lack a citable source in the device documentation, so
// they are configuration rather than literals; the defaults reproduce the
// established report behavior.
type Thresholds struct {
	// ECW/TBW: at or above EdemaRatio suggests fluid retention; at or
	// below LowHydrationRatio suggests under-hydration.
	EdemaRatio        float64 `yaml:"edema_ratio"`
	LowHydrationRatio float64 `yaml:"low_hydration_ratio"`
	// Spread across segmental ECW/TBW readings worth flagging.
	SegmentECWSpread float64 `yaml:"segment_ecw_spread"`

	// Visceral fat area bands (cm²), ascending.
	VFAWatch    float64 `yaml:"vfa_watch"`
	VFAElevated float64 `yaml:"vfa_elevated"`
	VFAHigh     float64 `yaml:"vfa_high"`
	VFACritical float64 `yaml:"vfa_critical"`

	// Visceral fat level bands.
	VFLSafe float64 `yaml:"vfl_safe"`
	VFLHigh float64 `yaml:"vfl_high"`

	// Phase angle stability band (degrees) and the left/right spread that
	// warrants a load-balance note.
	PhaseLow    float64 `yaml:"phase_low"`
	PhaseHigh   float64 `yaml:"phase_high"`
	PhaseSpread float64 `yaml:"phase_spread"`

	// Muscle left/right imbalance (percent of the pair average).
	MuscleImbalancePct float64 `yaml:"muscle_imbalance_pct"`

	// Segment lean development percent-of-standard bounds.
	LeanDevLow  float64 `yaml:"lean_dev_low"`
	LeanDevHigh float64 `yaml:"lean_dev_high"`

	// Segment fat percent-of-standard bounds.
	SegmentFatLow  float64 `yaml:"segment_fat_low"`
	SegmentFatHigh float64 `yaml:"segment_fat_high"`

	// Waist-hip ratio bands.
	WHRWatch float64 `yaml:"whr_watch"`
	WHRHigh  float64 `yaml:"whr_high"`

	// SMI sarcopenia cut-offs per gender.
	SMIMale   float64 `yaml:"smi_male"`
	SMIFemale float64 `yaml:"smi_female"`
}

// DefaultThresholds returns the established report cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		EdemaRatio:         0.390,
		LowHydrationRatio:  0.360,
		SegmentECWSpread:   0.015,
		VFAWatch:           50,
		VFAElevated:        70,
		VFAHigh:            100,
		VFACritical:        120,
		VFLSafe:            5,
		VFLHigh:            10,
		PhaseLow:           5.5,
		PhaseHigh:          7.5,
		PhaseSpread:        1.0,
		MuscleImbalancePct: 10,
		LeanDevLow:         90,
		LeanDevHigh:        110,
		SegmentFatLow:      80,
		SegmentFatHigh:     130,
		WHRWatch:           0.8,
		WHRHigh:            0.9,
		SMIMale:            7.0,
		SMIFemale:          5.7,
	}
}

// Engine evaluates the narrative rule set against one metric store at a
// time. It is stateless apart from its thresholds and safe to reuse.
type Engine struct {
	T Thresholds
}

// NewEngine builds an engine; zero-valued thresholds fall back to defaults
// so a partially filled config cannot zero out a cut-off.
func NewEngine(t Thresholds) *Engine {
	d := DefaultThresholds()
	fill := func(dst *float64, def float64) {
		if *dst == 0 {
			*dst = def
		}
	}
	fill(&t.EdemaRatio, d.EdemaRatio)
	fill(&t.LowHydrationRatio, d.LowHydrationRatio)
	fill(&t.SegmentECWSpread, d.SegmentECWSpread)
	fill(&t.VFAWatch, d.VFAWatch)
	fill(&t.VFAElevated, d.VFAElevated)
	fill(&t.VFAHigh, d.VFAHigh)
	fill(&t.VFACritical, d.VFACritical)
	fill(&t.VFLSafe, d.VFLSafe)
	fill(&t.VFLHigh, d.VFLHigh)
	fill(&t.PhaseLow, d.PhaseLow)
	fill(&t.PhaseHigh, d.PhaseHigh)
	fill(&t.PhaseSpread, d.PhaseSpread)
	fill(&t.MuscleImbalancePct, d.MuscleImbalancePct)
	fill(&t.LeanDevLow, d.LeanDevLow)
	fill(&t.LeanDevHigh, d.LeanDevHigh)
	fill(&t.SegmentFatLow, d.SegmentFatLow)
	fill(&t.SegmentFatHigh, d.SegmentFatHigh)
	fill(&t.WHRWatch, d.WHRWatch)
	fill(&t.WHRHigh, d.WHRHigh)
	fill(&t.SMIMale, d.SMIMale)
	fill(&t.SMIFemale, d.SMIFemale)
	return &Engine{T: t}
}
