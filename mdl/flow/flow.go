// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements correlations for single-phase flow in circular pipes
package flow

import "math"

// ReynoldsNumber computes the Reynolds number from density ρw [kg/m³],
// liquid rate qLiq [m³/s], dynamic viscosity μw [cP] and pipe inner diameter
// dTub [m]. The mean velocity comes from the rate over the pipe
// cross-section; the factor 1000 reconciles centipoise with Pa・s.
func ReynoldsNumber(ρw, qLiq, μw, dTub float64) float64 {
	v := qLiq / (math.Pi * dTub * dTub / 4.0)
	return ρw * v * dTub / μw * 1000.0
}

// FrictionFactor computes the Darcy-Weisbach friction factor with the
// Churchill correlation, from Reynolds number nRe, absolute pipe wall
// roughness [m] and pipe inner diameter dTub [m]. The correlation merges the
// laminar term 8/Re with the transitional/turbulent terms through a 12th
// root and is therefore continuous across all flow regimes; it can be
// evaluated at any Reynolds number the ODE solver asks for.
func FrictionFactor(nRe, roughness, dTub float64) float64 {
	a := math.Pow(-2.457*math.Log(math.Pow(7.0/nRe, 0.9)+0.27*roughness/dTub), 16.0)
	b := math.Pow(37530.0/nRe, 16.0)
	return 8.0 * math.Pow(math.Pow(8.0/nRe, 12.0)+1.0/math.Pow(a+b, 1.5), 1.0/12.0)
}
