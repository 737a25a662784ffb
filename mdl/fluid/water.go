// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements property correlations for saline (formation) water
package fluid

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Salinity computes the salt mass fraction [g/g] of water from its relative
// density (gammaWater) with respect to fresh water with 1000 kg/m³. A
// non-positive algebraic result indicates a density below the validity floor
// of 992 kg/m³ and is clamped to zero.
func Salinity(gammaWater float64) float64 {
	ρ := gammaWater * 1000.0
	ws := (1.36545*ρ - math.Sqrt(3838.77*ρ-2.009*ρ*ρ)) / ρ
	if ws > 0 {
		return ws
	}
	return 0
}

// Density computes the density of water [kg/m³] from the salt mass fraction
// ws [g/g] and temperature T [K]. The temperature correction holds roughly
// from 0 to 300 °C; no bounds checking is performed.
func Density(ws, T float64) float64 {
	ρsal := 1000.0 / (1.0009 - 0.7114*ws + 0.2605*ws*ws)
	return ρsal / (1.0 + (T-273.0)*1e-4*(0.269*math.Pow(T-273.0, 0.637)-0.8))
}

// Viscosity computes the dynamic viscosity of water [cP] with the
// Matthews & Russell correlation, from the salt mass fraction ws [g/g],
// temperature T [K] and pressure p [MPa]. The temperature term
// (1.8・T − 460)^(−b) is not guarded: temperatures at or below 255.6 K
// produce NaN.
func Viscosity(ws, T, p float64) float64 {
	a := 109.574 - 0.840564*1000.0*ws + 3.13314*1000.0*ws*ws + 8.72213*1000.0*ws*ws*ws
	b := 1.12166 - 2.63951*ws + 6.79461*ws*ws + 54.7119*ws*ws*ws - 155.586*ws*ws*ws*ws
	pc := p * 0.101325
	return a * math.Pow(1.8*T-460.0, -b) * (0.9994 + 0.0058*pc + 0.6534e-4*pc*pc)
}

// Water implements a model to compute density (ρ) and viscosity (μ) of
// formation water at any temperature/pressure state. The salt mass fraction
// is derived once from the relative density and held fixed.
type Water struct {

	// material data
	GamW float64 // relative density with respect to fresh water (1000 kg/m³)

	// derived
	Ws float64 // salt mass fraction [g/g]
}

// Init initialises this structure
func (o *Water) Init(prms fun.Params) {
	for _, p := range prms {
		switch p.N {
		case "gamw":
			o.GamW = p.V
		}
	}
	o.Ws = Salinity(o.GamW)
}

// GetPrms gets (an example of) parameters
func (o Water) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{ // fresh water
			&fun.P{N: "gamw", V: 1.0}, // [-]
		}
	}
	return fun.Params{
		&fun.P{N: "gamw", V: o.GamW},
	}
}

// State computes density [kg/m³] and viscosity [cP] at temperature T [K]
// and pressure p [MPa]
func (o Water) State(T, p float64) (ρ, μ float64) {
	ρ = Density(o.Ws, T)
	μ = Viscosity(o.Ws, T, p)
	return
}
