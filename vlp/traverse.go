// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vlp computes the vertical lift performance of water-injection
// wells: the bottomhole flowing pressure corresponding to each liquid rate
package vlp

import (
	"math"

	"github.com/daklochko/gowell/inp"
	"github.com/daklochko/gowell/mdl/flow"
	"github.com/daklochko/gowell/mdl/fluid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/ode"
)

// unit conversion constants
const (
	Grav     = 9.81     // gravity acceleration [m/s²]
	AtmToMPa = 0.101325 // atmospheres to MPa
	MPaToAtm = 9.86923  // MPa to atmospheres
	PaToMPa  = 1e-6     // Pa to MPa
	SecInDay = 86400.0  // seconds in a day
)

// Traverse integrates the pressure of a single-phase water column from the
// wellhead down to the top perforation. The gradient combines the
// hydrostatic term (inclination-corrected) with the Darcy-Weisbach friction
// term:
//
//    dp/dl = ξ・( ρ(T,p)・g・cos(α) − 0.815・f・ρ(T,p)/d⁵・q² )      ξ = 10⁻⁶
//
// with ρ from the water model, f from the Churchill correlation, and T
// following the linear geothermal profile. The viscosity (hence f) depends
// on the running pressure, so the gradient couples p with its own derivative
// and the profile must be integrated numerically.
type Traverse struct {
	well  *inp.Well   // well configuration
	water fluid.Water // water model; salinity derived once
	sol   ode.Solver  // ODE solver (explicit, embedded error control)
}

// Init initialises this structure
func (o *Traverse) Init(well *inp.Well) {

	// well and water data
	o.well = well
	o.water.Init(fun.Params{
		&fun.P{N: "gamw", V: well.GamWater},
	})

	// ξ := {p}
	fcn := func(f []float64, dl, l float64, y []float64, args ...interface{}) error {
		qLiq := args[0].(float64)
		f[0] = o.Gradient(l, y[0], qLiq)
		return nil
	}

	silent := true
	o.sol.Init("Dopri5", 1, fcn, nil, nil, nil, silent)
	o.sol.SetTol(1e-8, 1e-6)
	o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
}

// Gradient evaluates the pressure gradient dp/dl [MPa/m] at measured depth
// l [m], pressure p [MPa] and liquid rate qLiq [m³/s]. The adaptive solver
// may call it at arbitrary depths within [0, MdVdp] and arbitrary trial
// pressures, in any order.
func (o *Traverse) Gradient(l, p, qLiq float64) float64 {
	T := o.well.Twh + o.well.TempGrad*l/100.0 + 273.0
	ρ, μ := o.water.State(T, p)
	nRe := flow.ReynoldsNumber(ρ, qLiq, μ, o.well.Dtub)
	f := flow.FrictionFactor(nRe, o.well.Roughness, o.well.Dtub)
	d5 := math.Pow(o.well.Dtub, 5.0)
	α := o.well.Angle * math.Pi / 180.0
	return PaToMPa * (ρ*Grav*math.Cos(α) - 0.815*f*ρ/d5*qLiq*qLiq)
}

// Pwf computes the bottomhole flowing pressure [MPa] at the top perforation
// for liquid rate qLiq [m³/s]. The initial condition is the wellhead
// pressure from the configuration, converted from atmospheres. Zero and
// negative rates are rejected: they would degenerate the Reynolds number.
func (o *Traverse) Pwf(qLiq float64) (pwf float64, err error) {
	if qLiq <= 0 {
		return 0, chk.Err("pressure traverse needs a positive liquid rate; got q=%g m³/s", qLiq)
	}
	y := []float64{o.well.Pwh * AtmToMPa}
	err = o.sol.Solve(y, 0, o.well.MdVdp, o.well.MdVdp, false, qLiq)
	if err != nil {
		return 0, chk.Err("pressure traverse failed when integrating with the ODE solver: %v", err)
	}
	return y[0], nil
}
