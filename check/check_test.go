/*
 * check_test.go, part of mdcheck.
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

package check

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	mdcheck "github.com/rmera/mdcheck"
	v3 "github.com/rmera/mdcheck/v3"
)

//builds a topology of n carbons, one per residue.
func carbons(Te *testing.T, n int) *mdcheck.Topology {
	ats := make([]*mdcheck.Atom, 0, n)
	for i := 0; i < n; i++ {
		ats = append(ats, &mdcheck.Atom{Name: "C1", Symbol: "C", MolName: "LIG", MolID: i + 1, Chain: "A"})
	}
	top, err := mdcheck.NewTopology(ats, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	return top
}

func coords(Te *testing.T, data []float64) *v3.Matrix {
	c, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	return c
}

//A pair of atoms 0.79 A apart, as alternate-location duplicates typically
//are, must be flagged with the default 0.8 A cutoff.
func TestOverlapSingleFrame(Te *testing.T) {
	top := carbons(Te, 4)
	coord := coords(Te, []float64{
		0, 0, 0,
		5, 0, 0,
		5.79, 0, 0,
		0, 5, 0,
	})
	o := DefaultOptions()
	o.BondCutoff(-1)
	checker, err := New(top, o)
	if err != nil {
		Te.Fatal(err)
	}
	rec, err := checker.ProcessFrame(0, coord, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if rec == nil {
		Te.Fatal("the overlapping pair was not flagged")
	}
	bad := checker.BadFrames()
	if len(bad) != 1 {
		Te.Fatalf("expected 1 flagged frame, got %d", len(bad))
	}
	if bad[0].Frame != 0 {
		Te.Errorf("wrong frame number %d", bad[0].Frame)
	}
	if bad[0].Bonds != nil {
		Te.Error("bond checking was disabled but the bond field is not nil")
	}
	if len(bad[0].Overlaps) != 1 {
		Te.Fatalf("expected 1 overlap, got %d", len(bad[0].Overlaps))
	}
	p := bad[0].Overlaps[0]
	if p.At1 != 1 || p.At2 != 2 {
		Te.Errorf("wrong pair flagged: %d-%d", p.At1, p.At2)
	}
	if math.Abs(p.Dist-0.79) > 1e-6 {
		Te.Errorf("wrong distance for the pair: %8.5f", p.Dist)
	}
	fmt.Println("overlaps found:", bad[0].Overlaps)
}

//A synthetic, hugely stretched bond must be flagged, and its reported
//length must match the actual distance.
func TestLongBond(Te *testing.T) {
	top := carbons(Te, 3)
	if err := top.AddBond(0, 1); err != nil {
		Te.Fatal(err)
	}
	coord := coords(Te, []float64{
		0, 0, 0,
		20.49389, 0, 0,
		40, 40, 40,
	})
	o := DefaultOptions()
	o.AtomCutoff(-1)
	checker, err := New(top, o)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := checker.ProcessFrame(0, coord, nil); err != nil {
		Te.Fatal(err)
	}
	bad := checker.BadFrames()
	if len(bad) != 1 {
		Te.Fatalf("expected 1 flagged frame, got %d", len(bad))
	}
	if bad[0].Frame != 0 {
		Te.Errorf("wrong frame number %d", bad[0].Frame)
	}
	if bad[0].Overlaps != nil {
		Te.Error("overlap checking was disabled but the overlap field is not nil")
	}
	if len(bad[0].Bonds) != 1 {
		Te.Fatalf("expected 1 stretched bond, got %d", len(bad[0].Bonds))
	}
	b := bad[0].Bonds[0]
	if b.At1 != 0 || b.At2 != 1 {
		Te.Errorf("wrong bond flagged: %d-%d", b.At1, b.At2)
	}
	if math.Abs(b.Dist-20.49389)/20.49389 > 0.01 {
		Te.Errorf("wrong length for the bond: %8.5f", b.Dist)
	}
}

//Bond checking on a system without bond information must fail at
//construction, before any frame is processed.
func TestMissingTopology(Te *testing.T) {
	top := carbons(Te, 3)
	checker, err := New(top)
	if err == nil {
		Te.Fatal("expected an error for bond checking without bonds")
	}
	if _, ok := err.(*MissingTopologyError); !ok {
		Te.Errorf("wrong error type %T: %s", err, err.Error())
	}
	if checker != nil {
		Te.Error("got a non-nil checker together with an error")
	}
}

//A selection that excludes every bonded atom must warn and produce a nil
//bond field, but not abort, and overlaps must still be reported with the
//identifiers the atoms had in the parent system.
func TestSelectionWithoutBonds(Te *testing.T) {
	top := carbons(Te, 4)
	if err := top.AddBond(0, 1); err != nil {
		Te.Fatal(err)
	}
	sel, err := top.SomeAtoms([]int{2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	checker, err := New(sel)
	if err != nil {
		Te.Fatal(err) //the system does have bonds, just not in the selection
	}
	coord := coords(Te, []float64{
		0, 0, 0,
		1.2, 0, 0,
		7, 7, 7,
		7.5, 7, 7,
	})
	if _, err := checker.ProcessFrame(0, coord, nil); err != nil {
		Te.Fatal(err)
	}
	bad := checker.BadFrames()
	if len(bad) != 1 {
		Te.Fatalf("expected 1 flagged frame, got %d", len(bad))
	}
	if bad[0].Bonds != nil {
		Te.Error("no bonds in the selection, but the bond field is not nil")
	}
	if len(bad[0].Overlaps) != 1 || bad[0].Overlaps[0].At1 != 2 || bad[0].Overlaps[0].At2 != 3 {
		Te.Errorf("wrong overlaps: %v", bad[0].Overlaps)
	}
}

//Clean frames must never appear in the results, and flagged frames must
//come out in increasing order.
func TestScan(Te *testing.T) {
	top := carbons(Te, 3)
	if err := top.AddBond(0, 1); err != nil {
		Te.Fatal(err)
	}
	clean := []float64{0, 0, 0, 1.2, 0, 0, 5, 5, 5}
	overlapping := []float64{0, 0, 0, 0.5, 0, 0, 5, 5, 5}
	stretched := []float64{0, 0, 0, 4, 0, 0, 5, 5, 5}
	frames := []*v3.Matrix{
		coords(Te, overlapping),
		coords(Te, clean),
		coords(Te, stretched),
		coords(Te, clean),
	}
	mol, err := mdcheck.NewMolecule(top, frames, nil)
	if err != nil {
		Te.Fatal(err)
	}
	checker, err := New(top)
	if err != nil {
		Te.Fatal(err)
	}
	if err := checker.Scan(mol); err != nil {
		Te.Fatal(err)
	}
	bad := checker.BadFrames()
	if len(bad) != 2 {
		Te.Fatalf("expected 2 flagged frames, got %d", len(bad))
	}
	if bad[0].Frame != 0 || bad[1].Frame != 2 {
		Te.Errorf("wrong frames flagged: %d and %d", bad[0].Frame, bad[1].Frame)
	}
	if len(bad[0].Overlaps) != 1 || bad[0].Bonds != nil {
		Te.Errorf("wrong record for frame 0: %+v", bad[0])
	}
	if len(bad[1].Bonds) != 1 || bad[1].Overlaps != nil {
		Te.Errorf("wrong record for frame 2: %+v", bad[1])
	}
	if math.Abs(bad[1].Bonds[0].Dist-4) > 1e-6 {
		Te.Errorf("wrong length for the stretched bond: %8.5f", bad[1].Bonds[0].Dist)
	}
}

//An overlap across a periodic face exists only when the cell is taken into
//account.
func TestPeriodicOverlap(Te *testing.T) {
	top := carbons(Te, 2)
	coord := coords(Te, []float64{
		0.3, 5, 5,
		9.8, 5, 5,
	})
	cell, err := mdcheck.NewCell([]float64{10, 10, 10, 90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	o := DefaultOptions()
	o.BondCutoff(-1)
	checker, err := New(top, o)
	if err != nil {
		Te.Fatal(err)
	}
	rec, err := checker.ProcessFrame(0, coord, cell)
	if err != nil {
		Te.Fatal(err)
	}
	if rec == nil || len(rec.Overlaps) != 1 {
		Te.Fatal("the pair across the periodic face was not flagged")
	}
	if math.Abs(rec.Overlaps[0].Dist-0.5) > 1e-6 {
		Te.Errorf("wrong minimum-image distance: %8.5f", rec.Overlaps[0].Dist)
	}
	//Same coordinates, open boundaries: nothing to flag.
	checker2, err := New(top, o)
	if err != nil {
		Te.Fatal(err)
	}
	rec, err = checker2.ProcessFrame(0, coord, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if rec != nil {
		Te.Errorf("a 9.5 A pair was flagged as overlapping: %+v", rec)
	}
}

//The cell list and the brute-force search must find exactly the same pairs.
func TestGridAgainstBruteForce(Te *testing.T) {
	const natoms = 300
	const cutoff = 1.5
	r := rand.New(rand.NewSource(42))
	data := make([]float64, natoms*3)
	for i := range data {
		data[i] = r.Float64() * 30
	}
	coord := coords(Te, data)
	cell, err := mdcheck.NewCell([]float64{30, 30, 30, 90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	for _, c := range []*mdcheck.Cell{cell, nil} {
		got := searchPairs(coord, cutoff, c)
		want := brutePairs(coord, cutoff, c)
		if len(got) != len(want) {
			Te.Fatalf("cell list found %d pairs, brute force %d", len(got), len(want))
		}
		for i := range want {
			if got[i].At1 != want[i].At1 || got[i].At2 != want[i].At2 {
				Te.Fatalf("pair %d differs: %v vs %v", i, got[i], want[i])
			}
			if math.Abs(got[i].Dist-want[i].Dist) > 1e-9 {
				Te.Fatalf("distance differs for pair %d: %v vs %v", i, got[i], want[i])
			}
		}
		fmt.Println("pairs found:", len(got), "periodic:", c != nil)
	}
}

//Fully disabled checks are legal, and produce no records at all.
func TestAllDisabled(Te *testing.T) {
	top := carbons(Te, 2)
	o := DefaultOptions()
	o.AtomCutoff(-1)
	o.BondCutoff(-1)
	checker, err := New(top, o)
	if err != nil {
		Te.Fatal(err)
	}
	coord := coords(Te, []float64{0, 0, 0, 0.1, 0, 0})
	rec, err := checker.ProcessFrame(0, coord, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if rec != nil || len(checker.BadFrames()) != 0 {
		Te.Error("records produced with every check disabled")
	}
}
