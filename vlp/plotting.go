// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlp

import (
	"github.com/cpmech/gosl/plt"
)

// Plot plots the vertical lift performance curve of one table
func Plot(tab *Table, dirout, fnkey string) {
	Q := make([]float64, len(tab.QLiq))
	for i, q := range tab.QLiq {
		Q[i] = float64(q)
	}
	plt.Plot(Q, tab.Pwf, &plt.A{C: "b", Ls: "-", M: "."})
	plt.Gll("$q_{liq}\\;[\\mathrm{m^3/day}]$", "$p_{wf}\\;[\\mathrm{atm}]$", nil)
	plt.SaveD(dirout, fnkey+".eps")
}
