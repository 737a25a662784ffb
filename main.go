// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/daklochko/gowell/inp"
	"github.com/daklochko/gowell/out"
	"github.com/daklochko/gowell/vlp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/well8", ".json", true)
	verbose := io.ArgToBool(1, true)
	dirout := io.ArgToString(2, "/tmp/gowell")
	qmin := io.ArgToFloat(3, 1)
	qmax := io.ArgToFloat(4, 400)
	nq := io.ArgToInt(5, 41)

	// message
	if verbose {
		io.PfWhite("\nGowell -- bottomhole pressure of water-injection wells\n")
		io.Pf("Copyright 2016 The Gowell Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"directory for output", "dirout", dirout,
			"first liquid rate [m³/day]", "qmin", qmin,
			"last liquid rate [m³/day]", "qmax", qmax,
			"number of rates", "nq", nq,
		))
	}

	// well data
	well := inp.ReadWell(fnamepath)

	// rate sweep
	tab, err := vlp.Sweep(well, vlp.RateGrid(qmin, qmax, nq))
	if err != nil {
		chk.Panic("sweep failed:\n%v", err)
	}

	// report
	err = out.Save(dirout, fnkey, tab)
	if err != nil {
		chk.Panic("cannot save report:\n%v", err)
	}

	// results
	if verbose {
		io.Pf("\n%15s%15s\n", "q_liq [m³/day]", "p_wf [atm]")
		for i, q := range tab.QLiq {
			io.Pf("%15d%15.4f\n", q, tab.Pwf[i])
		}
		io.Pfblue2("\nreport saved to %s/%s.json\n", dirout, fnkey)
	}
}
