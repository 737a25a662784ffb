// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlp

import (
	"github.com/daklochko/gowell/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Table holds the vertical lift performance of one well: for each liquid
// rate the bottomhole flowing pressure at the top perforation, in matching
// index order.
type Table struct {
	QLiq []int     `json:"q_liq"` // liquid rates [m³/day]
	Pwf  []float64 `json:"p_wf"`  // bottomhole flowing pressures [atm]
}

// RateGrid builds the sweep grid: nq liquid rates [m³/day] linearly spaced
// over the closed interval [qMin, qMax] and truncated to integers
func RateGrid(qMin, qMax float64, nq int) []int {
	Q := utl.LinSpace(qMin, qMax, nq)
	grid := make([]int, nq)
	for i, q := range Q {
		grid[i] = int(q)
	}
	grid[nq-1] = int(qMax)
	return grid
}

// Sweep computes the vertical lift performance table of one well: one
// pressure traverse per rate in the grid, serially and in grid order. A
// failing rate aborts the whole sweep; the error names the offending rate.
func Sweep(well *inp.Well, grid []int) (tab *Table, err error) {
	var trv Traverse
	trv.Init(well)
	tab = &Table{
		QLiq: make([]int, len(grid)),
		Pwf:  make([]float64, len(grid)),
	}
	for i, q := range grid {
		pwf, err := trv.Pwf(float64(q) / SecInDay)
		if err != nil {
			return nil, chk.Err("sweep failed at rate q=%d m³/day:\n%v", q, err)
		}
		tab.QLiq[i] = q
		tab.Pwf[i] = pwf * MPaToAtm
	}
	return tab, nil
}
