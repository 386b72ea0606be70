/*
 * check.go, part of mdcheck.
 *
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
 *
 * mdcheck is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package check scans the frames of a trajectory for two kinds of structural
//defect: pairs of atoms unphysically close together (steric overlaps) and
//covalent bonds stretched beyond a plausible length. Only the frames where
//at least one violation is found are recorded, so a clean trajectory
//produces an empty result.
package check

import (
	"fmt"
	"log"

	mdcheck "github.com/rmera/mdcheck"
	v3 "github.com/rmera/mdcheck/v3"
)

//Options are the settings for a structure check.
type Options struct {
	atomcut float64
	bondcut float64
}

//DefaultOptions returns the default settings: atoms closer than 0.8 A are
//overlapping, and bonds longer than 2.5 A are over-stretched.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.atomcut = 0.8
	ret.bondcut = 2.5
	return ret
}

//AtomCutoff returns the current overlap cutoff and sets it, if a value is
//given. Any value <= 0 disables overlap checking altogether.
func (r *Options) AtomCutoff(cut ...float64) float64 {
	ret := r.atomcut
	if len(cut) > 0 {
		r.atomcut = cut[0]
	}
	return ret
}

//BondCutoff returns the current maximum bond length and sets it, if a value
//is given. Any value <= 0 disables bond checking altogether.
func (r *Options) BondCutoff(cut ...float64) float64 {
	ret := r.bondcut
	if len(cut) > 0 {
		r.bondcut = cut[0]
	}
	return ret
}

//Pair reports one violation: the stable identifiers (Atom.Index) of the two
//atoms involved, and their current distance, which for a bond violation is
//the bond length.
type Pair struct {
	At1  int
	At2  int
	Dist float64
}

//BadFrame is the record for one flagged frame. A nil Overlaps or Bonds
//field means the corresponding check was disabled, found nothing, or (for
//bonds) could not run because the selection carries no bonds: the three
//cases are not distinguished at this level.
type BadFrame struct {
	Frame    int
	Overlaps []Pair
	Bonds    []Pair
}

//Checker accumulates the structure defects found along one pass over a
//trajectory. It is not safe for concurrent use: one frame is processed
//fully before the next.
type Checker struct {
	top     *mdcheck.Topology
	indexes []int //Index of each atom of the group, i.e. its row in a full-system coordinate matrix.
	bonds   []*mdcheck.Bond
	atomcut float64
	bondcut float64
	gcoord  *v3.Matrix
	bad     []*BadFrame
}

//New prepares a structure check for the atoms in top, which can be a whole
//system or a subselection of one. If bond checking is enabled (the default)
//and the system carries no bond information at all, it fails immediately
//with a *MissingTopologyError: silently producing empty results would mask
//a configuration mistake.
func New(top *mdcheck.Topology, opts ...*Options) (*Checker, error) {
	if top == nil || top.Len() == 0 {
		return nil, Error{"nil or empty topology given", []string{"New"}, true}
	}
	var o *Options
	if len(opts) > 0 {
		o = opts[0]
	} else {
		o = DefaultOptions()
	}
	C := new(Checker)
	C.top = top
	C.atomcut = o.atomcut
	C.bondcut = o.bondcut
	if C.bondcut > 0 {
		if !top.HasBonds() {
			return nil, new(MissingTopologyError)
		}
		C.bonds = top.Bonds()
	}
	C.indexes = make([]int, top.Len())
	for i := 0; i < top.Len(); i++ {
		C.indexes[i] = top.Atom(i).Index
	}
	C.gcoord = v3.Zeros(top.Len())
	return C, nil
}

//ProcessFrame checks one frame for defects. coord holds the coordinates of
//the full system the checker's topology was selected from (one row per
//atom, so the group atoms sit at the rows given by their Index), and cell
//is the unit cell for the frame, or nil for open boundaries. If at least
//one violation is found, the resulting record is appended to the
//accumulated results and also returned; otherwise nothing is recorded and
//the returned record is nil.
func (C *Checker) ProcessFrame(frame int, coord *v3.Matrix, cell *mdcheck.Cell) (*BadFrame, error) {
	nvecs := coord.NVecs()
	for _, v := range C.indexes {
		if v >= nvecs {
			return nil, Error{fmt.Sprintf("frame %d: %d coordinates given, but the group contains atom %d", frame, nvecs, v), []string{"ProcessFrame"}, true}
		}
	}
	var overlaps, bad []Pair
	if C.atomcut > 0 {
		C.gcoord.SomeVecs(coord, C.indexes)
		overlaps = searchPairs(C.gcoord, C.atomcut, cell)
		for i := range overlaps {
			overlaps[i].At1 = C.indexes[overlaps[i].At1]
			overlaps[i].At2 = C.indexes[overlaps[i].At2]
		}
	}
	if C.bondcut > 0 {
		if len(C.bonds) == 0 {
			log.Printf("check: atomgroup has no bonds in frame %d, bond check skipped for it", frame)
		}
		for _, b := range C.bonds {
			i, j := b.At1.Index, b.At2.Index
			d := cell.MinDist(coord.At(i, 0)-coord.At(j, 0), coord.At(i, 1)-coord.At(j, 1), coord.At(i, 2)-coord.At(j, 2))
			if d > C.bondcut {
				bad = append(bad, Pair{At1: i, At2: j, Dist: d})
			}
		}
	}
	if len(overlaps) == 0 && len(bad) == 0 {
		return nil, nil
	}
	ret := &BadFrame{Frame: frame, Overlaps: overlaps, Bonds: bad}
	C.bad = append(C.bad, ret)
	return ret, nil
}

//Scan traverses a whole trajectory, processing its frames in order with
//ProcessFrame. After Scan returns with no error, the accumulated records
//are available through BadFrames, sorted by increasing frame number.
func (C *Checker) Scan(traj mdcheck.Traj) error {
	if traj.Len() < C.top.Len() {
		return Error{fmt.Sprintf("%d atoms per frame in the trajectory, but the group contains %d", traj.Len(), C.top.Len()), []string{"Scan"}, true}
	}
	coord := v3.Zeros(traj.Len())
	box := make([]float64, 6)
	for i := 0; ; i++ {
		err := traj.Next(coord, box)
		if err != nil {
			switch err := err.(type) {
			case mdcheck.LastFrameError:
				return nil
			case mdcheck.Error:
				err.Decorate(fmt.Sprintf("Scan: failed while reading the %d th frame", i))
				return err
			default:
				return err
			}
		}
		cell, err := mdcheck.NewCell(box)
		if err != nil {
			return errDecorate(err, fmt.Sprintf("Scan: frame %d", i))
		}
		if _, err = C.ProcessFrame(i, coord, cell); err != nil {
			return errDecorate(err, "Scan")
		}
	}
}

//BadFrames returns the records accumulated so far, one per flagged frame.
//After a Scan it is the final result, and should be treated as read-only.
func (C *Checker) BadFrames() []*BadFrame {
	return C.bad
}

//Errors

//MissingTopologyError means that bond checking was requested on a system
//that carries no bond information, so the check could never find anything.
type MissingTopologyError struct {
	deco []string
}

func (err *MissingTopologyError) Error() string {
	return "no bonds present; disable bond checking or supply bond topology"
}

//Decorate adds new information to the error and returns the current
//decoration.
func (err *MissingTopologyError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Error is the general error type for the package. It fulfills the
//mdcheck.Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return err.message
}

//Decorate adds new information to the error and returns the current
//decoration.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that the error implements mdcheck.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(mdcheck.Error)
	err2.Decorate(caller)
	return err2
}
