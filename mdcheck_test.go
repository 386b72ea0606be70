/*
 * mdcheck_test.go, part of mdcheck.
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * mdcheck is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package mdcheck

import (
	"math"
	"testing"

	v3 "github.com/rmera/mdcheck/v3"
)

func someAtoms(n int) []*Atom {
	ats := make([]*Atom, 0, n)
	for i := 0; i < n; i++ {
		ats = append(ats, &Atom{Name: "O", Symbol: "O", MolName: "SOL", MolID: i + 1})
	}
	return ats
}

func TestCellOrtho(Te *testing.T) {
	cell, err := NewCell([]float64{10, 20, 30, 90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	if !cell.Ortho() {
		Te.Error("a cell with all angles at 90 should be orthorhombic")
	}
	//across the x face
	if d := cell.MinDist(9.5, 0, 0); math.Abs(d-0.5) > 1e-12 {
		Te.Errorf("wrong minimum-image distance %8.5f", d)
	}
	//inside the cell, no wrapping
	if d := cell.MinDist(3, 4, 0); math.Abs(d-5) > 1e-12 {
		Te.Errorf("wrong in-cell distance %8.5f", d)
	}
	p := cell.Params()
	if p[1] != 20 || p[4] != 90 {
		Te.Errorf("wrong parameters recovered: %v", p)
	}
	x, y, z := cell.Wrap(11, -1, 35)
	if math.Abs(x-1) > 1e-9 || math.Abs(y-19) > 1e-9 || math.Abs(z-5) > 1e-9 {
		Te.Errorf("wrong wrapped point: %5.2f %5.2f %5.2f", x, y, z)
	}
}

func TestCellDegenerate(Te *testing.T) {
	cell, err := NewCell([]float64{0, 0, 0, 0, 0, 0})
	if err != nil || cell != nil {
		Te.Error("an all-zero cell should mean open boundaries, without error")
	}
	if _, err := NewCell([]float64{10, 10, 10, 90, 90, 190}); err == nil {
		Te.Error("an angle outside (0,180) should be rejected")
	}
	if _, err := NewCell([]float64{10, 10}); err == nil {
		Te.Error("less than 6 parameters should be rejected")
	}
	var nocell *Cell
	if d := nocell.MinDist(3, 4, 0); math.Abs(d-5) > 1e-12 {
		Te.Errorf("a nil cell should give plain distances, got %8.5f", d)
	}
}

//The triclinic minimum image is checked against a direct search over the
//neighboring lattice points.
func TestCellTriclinic(Te *testing.T) {
	cell, err := NewCell([]float64{10, 10, 10, 90, 90, 60})
	if err != nil {
		Te.Fatal(err)
	}
	if cell.Ortho() {
		Te.Error("a 60 degree cell flagged as orthorhombic")
	}
	deltas := [][3]float64{
		{9.5, 0.3, 0.1},
		{-4.9, 8.2, 3.3},
		{1.1, 1.2, 9.8},
		{14.0, -7.5, 0.2},
	}
	for _, d := range deltas {
		got := cell.MinDist(d[0], d[1], d[2])
		want := math.Inf(1)
		for n0 := -2.0; n0 <= 2; n0++ {
			for n1 := -2.0; n1 <= 2; n1++ {
				for n2 := -2.0; n2 <= 2; n2++ {
					cx := d[0] + n0*cell.vecs[0][0] + n1*cell.vecs[1][0] + n2*cell.vecs[2][0]
					cy := d[1] + n0*cell.vecs[0][1] + n1*cell.vecs[1][1] + n2*cell.vecs[2][1]
					cz := d[2] + n0*cell.vecs[0][2] + n1*cell.vecs[1][2] + n2*cell.vecs[2][2]
					if v := math.Sqrt(cx*cx + cy*cy + cz*cz); v < want {
						want = v
					}
				}
			}
		}
		if math.Abs(got-want) > 1e-9 {
			Te.Errorf("minimum image for %v: got %8.5f, direct search %8.5f", d, got, want)
		}
	}
}

func TestTopologyBonds(Te *testing.T) {
	top, err := NewTopology(someAtoms(5), 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if top.HasBonds() {
		Te.Error("a fresh topology should not carry bonds")
	}
	if err := top.AddBond(0, 1); err != nil {
		Te.Fatal(err)
	}
	if err := top.AddBond(3, 4); err != nil {
		Te.Fatal(err)
	}
	if err := top.AddBond(2, 2); err == nil {
		Te.Error("an atom bonded to itself should be rejected")
	}
	if !top.HasBonds() || len(top.Bonds()) != 2 {
		Te.Errorf("wrong bond bookkeeping: %v", top.Bonds())
	}
	sel, err := top.SomeAtoms([]int{4, 3, 2})
	if err != nil {
		Te.Fatal(err)
	}
	if !sel.HasBonds() {
		Te.Error("a selection of a bonded system should inherit the capability")
	}
	b := sel.Bonds()
	if len(b) != 1 || b[0].At1.Index != 3 || b[0].At2.Index != 4 {
		Te.Errorf("wrong bonds confined to the selection: %v", b)
	}
	if sel.Atom(0).Index != 4 {
		Te.Error("subselection should keep the original atom indexes")
	}
}

func TestMoleculeTraj(Te *testing.T) {
	top, err := NewTopology(someAtoms(2), 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	f0, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	f1, _ := v3.NewMatrix([]float64{0, 0, 0, 2, 0, 0})
	cell, err := NewCell([]float64{10, 10, 10, 90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule(top, []*v3.Matrix{f0, f1}, []*Cell{nil, cell})
	if err != nil {
		Te.Fatal(err)
	}
	coord := v3.Zeros(2)
	box := make([]float64, 6)
	if err := mol.Next(coord, box); err != nil {
		Te.Fatal(err)
	}
	if box[0] != 0 || coord.At(1, 0) != 1 {
		Te.Errorf("wrong first frame: %v %v", box, coord)
	}
	if err := mol.Next(coord, box); err != nil {
		Te.Fatal(err)
	}
	if box[0] != 10 || box[3] != 90 || coord.At(1, 0) != 2 {
		Te.Errorf("wrong second frame: %v %v", box, coord)
	}
	err = mol.Next(coord)
	if _, ok := err.(LastFrameError); !ok {
		Te.Errorf("expected a LastFrameError after the last frame, got %v", err)
	}
	if err := mol.InitRead(); err != nil {
		Te.Fatal(err)
	}
	if !mol.Readable() {
		Te.Error("molecule should be readable again after InitRead")
	}
}
