package main

import (
	"encoding/json"
	"os"
)

// Params are the physics and placement tunables the world recognizes.
// Placement tolerances are part of the contract (tests pin them down), the
// damping block is feel.
type Params struct {
	LinearDamping    float64 // per-step base factor on velocity
	LinearViscosity  float64 // exponential drag rate, 1/s
	AngularDamping   float64
	AngularViscosity float64
	MaxAngularSpeed  float64 // rad/s, spin clamp
	Restitution      float64 // fixed at 1: collisions keep their energy

	BoundsMargin           float64 // placement keeps vertices this far off the walls
	SatDepthTolerance      float64 // max SAT depth still considered touching
	CircleOverlapTolerance float64 // max circle-circle radius deficit
	ContactBand            float64 // relative band around the tangent distance that counts as contact
	IdealGap               float64 // the near-zero gap placement aims for
	NearestPenalty         float64 // score weight on distance to the nearest body

	SettleLinear  float64 // speeds below these on every body auto-pause the scene
	SettleAngular float64
	DragMaxSpeed  float64 // cap on the velocity a released drag can carry
}

func defaultParams() Params {
	return Params{
		LinearDamping:    0.9995,
		LinearViscosity:  0.14,
		AngularDamping:   0.999,
		AngularViscosity: 0.5,
		MaxAngularSpeed:  6.0,
		Restitution:      1.0,

		BoundsMargin:           0.012,
		SatDepthTolerance:      0.002,
		CircleOverlapTolerance: 0.003,
		ContactBand:            0.03,
		IdealGap:               0.001,
		NearestPenalty:         0.02,

		SettleLinear:  0.005,
		SettleAngular: 0.02,
		DragMaxSpeed:  3.0,
	}
}

// Settings are the user-facing knobs persisted between runs. Missing or
// invalid files fall back to defaults and never block startup.
type Settings struct {
	LinearDamping    float64 `json:"linear_damping"`
	LinearViscosity  float64 `json:"linear_viscosity"`
	AngularDamping   float64 `json:"angular_damping"`
	AngularViscosity float64 `json:"angular_viscosity"`
	MaxAngularSpeed  float64 `json:"max_angular_speed"`
	DragMaxSpeed     float64 `json:"drag_max_speed"`
	ColorExchange    bool    `json:"color_exchange"`
}

func defaultSettings() Settings {
	p := defaultParams()
	return Settings{
		LinearDamping:    p.LinearDamping,
		LinearViscosity:  p.LinearViscosity,
		AngularDamping:   p.AngularDamping,
		AngularViscosity: p.AngularViscosity,
		MaxAngularSpeed:  p.MaxAngularSpeed,
		DragMaxSpeed:     p.DragMaxSpeed,
	}
}

// loadSettings reads the JSON settings file. A missing or unreadable file is
// not an error: defaults come back instead.
func loadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultSettings()
	}
	s := defaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return defaultSettings()
	}
	return s
}

// saveSettings writes the settings as indented JSON.
func saveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// apply copies the feel knobs onto the world's parameter set.
func (s Settings) apply(p *Params) {
	if s.LinearDamping > 0 {
		p.LinearDamping = s.LinearDamping
	}
	if s.LinearViscosity > 0 {
		p.LinearViscosity = s.LinearViscosity
	}
	if s.AngularDamping > 0 {
		p.AngularDamping = s.AngularDamping
	}
	if s.AngularViscosity > 0 {
		p.AngularViscosity = s.AngularViscosity
	}
	if s.MaxAngularSpeed > 0 {
		p.MaxAngularSpeed = s.MaxAngularSpeed
	}
	if s.DragMaxSpeed > 0 {
		p.DragMaxSpeed = s.DragMaxSpeed
	}
}
