// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the JSON report with computed lift-performance tables
package out

import (
	"encoding/json"

	"github.com/daklochko/gowell/vlp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Save writes the table to dirout/fnkey.json with the two equal-length
// arrays "q_liq" and "p_wf" in matching index order
func Save(dirout, fnkey string, tab *vlp.Table) error {
	b, err := json.MarshalIndent(tab, "", "    ")
	if err != nil {
		return chk.Err("Save: cannot marshal table: %v", err)
	}
	io.WriteFileSD(dirout, fnkey+".json", string(b))
	return nil
}

// Load reads a table back from a JSON report file
func Load(path string) (*vlp.Table, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("Load: cannot read report file %q", path)
	}
	var tab vlp.Table
	err = json.Unmarshal(b, &tab)
	if err != nil {
		return nil, chk.Err("Load: cannot unmarshal report file %q", path)
	}
	return &tab, nil
}
