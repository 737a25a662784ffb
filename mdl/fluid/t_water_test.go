// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_water01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water01. salinity from relative density")

	// below the 992 kg/m³ validity floor: clamped to zero
	for _, γ := range []float64{0.5, 0.9, 0.99, 0.991} {
		ws := Salinity(γ)
		if ws != 0 {
			tst.Errorf("salinity must be clamped to zero for γ=%g; got %g\n", γ, ws)
			return
		}
	}

	// fresh water or denser: bounded and increasing with relative density
	wsPrev := Salinity(0.992)
	if wsPrev <= 0 {
		tst.Errorf("salinity must be positive just above the validity floor; got %g\n", wsPrev)
		return
	}
	for _, γ := range utl.LinSpace(1.0, 1.2, 21) {
		ws := Salinity(γ)
		io.Pf("γ=%6.3f  ws=%g\n", γ, ws)
		if ws < 0 || ws >= 0.3 {
			tst.Errorf("salinity out of [0, 0.3) for γ=%g: ws=%g\n", γ, ws)
			return
		}
		if ws <= wsPrev {
			tst.Errorf("salinity must increase with relative density: ws(%g)=%g ≤ %g\n", γ, ws, wsPrev)
			return
		}
		wsPrev = ws
	}
}

func Test_water02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water02. density of fresh water")

	// reference point: zero salinity at 0 °C
	ρ := Density(0, 273.0)
	chk.Scalar(tst, "ρ(0, 273K)", 1e-11, ρ, 1000.0/1.0009)
	if math.Abs(ρ-1000.0) > 1.0 {
		tst.Errorf("density of fresh water at 0 °C too far from 1000 kg/m³: %g\n", ρ)
		return
	}

	// density decreases when heating from 20 to 80 °C
	ρ20 := Density(0, 293.0)
	ρ80 := Density(0, 353.0)
	io.Pf("ρ(20°C)=%g  ρ(80°C)=%g\n", ρ20, ρ80)
	if ρ80 >= ρ20 {
		tst.Errorf("density must decrease with temperature: ρ(80°C)=%g ≥ ρ(20°C)=%g\n", ρ80, ρ20)
	}

	// salt increases density
	ws := Salinity(1.1)
	if Density(ws, 293.0) <= ρ20 {
		tst.Errorf("salt water must be denser than fresh water\n")
	}
}

func Test_water03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water03. Matthews & Russell viscosity")

	// fresh water at 20 °C and mild pressure is close to 1 cP
	μ := Viscosity(0, 293.0, 0.5)
	io.Pf("μ(20°C) = %g cP\n", μ)
	if μ < 0.8 || μ > 1.2 {
		tst.Errorf("viscosity of fresh water at 20 °C out of (0.8, 1.2) cP: %g\n", μ)
		return
	}

	// thinner when hot
	if Viscosity(0, 323.0, 0.5) >= μ {
		tst.Errorf("viscosity must decrease with temperature\n")
	}

	// pressure correction is increasing
	if Viscosity(0, 293.0, 30.0) <= μ {
		tst.Errorf("viscosity must increase with pressure\n")
	}
}

func Test_water04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water04. water model")

	var water Water
	water.Init(water.GetPrms(true))
	chk.Scalar(tst, "gamw", 1e-15, water.GamW, 1.0)
	chk.Scalar(tst, "ws", 1e-15, water.Ws, Salinity(1.0))

	ρ, μ := water.State(293.0, 0.5)
	chk.Scalar(tst, "ρ", 1e-15, ρ, Density(water.Ws, 293.0))
	chk.Scalar(tst, "μ", 1e-15, μ, Viscosity(water.Ws, 293.0, 0.5))
}
