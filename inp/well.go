// Copyright 2016 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the well input data read from a (.json) file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Well holds the configuration of one water-injection well. No field is
// validated: physically nonsensical values propagate to the computed
// results.
type Well struct {
	Twh       float64 `json:"t_wh"`        // temperature at the wellhead valve [°C]
	TempGrad  float64 `json:"temp_grad"`   // geothermal gradient [°C/100m]
	MdVdp     float64 `json:"md_vdp"`      // measured depth to the top perforation [m]
	GamWater  float64 `json:"gamma_water"` // relative water density with respect to fresh water (1000 kg/m³) [-]
	Roughness float64 `json:"roughness"`   // absolute pipe wall roughness [m]
	Angle     float64 `json:"angle"`       // inclination angle from the horizontal [°]
	Dtub      float64 `json:"d_tub"`       // tubing inner diameter [m]
	Pwh       float64 `json:"p_wh"`        // wellhead pressure [atm]
}

// ReadWell reads a well configuration from a JSON file
func ReadWell(path string) *Well {
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("ReadWell: cannot read well file %q", path)
	}
	var o Well
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadWell: cannot unmarshal well file %q", path)
	}
	return &o
}
