/*
 * chem.go, part of mdcheck.
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

package mdcheck

import (
	"fmt"

	v3 "github.com/rmera/mdcheck/v3"
)

//Atom contains the topological information for one atom. The coordinates,
//which change every frame, are kept separately, in v3.Matrix objects.
type Atom struct {
	Name      string
	Index     int //the position of the atom in the system it was read from. It survives subselections, so it can be used as a stable identifier.
	MolName   string
	MolID     int
	Chain     string
	Symbol    string
	Mass      float64
	Occupancy float64
	Charge    float64
	Het       bool
	Bonds     []*Bond
}

//Copy returns a copy of the Atom object. The bonds are not copied, as they
//reference other atoms, which the copy can not own.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("mdcheck: attempted to copy a nil Atom")
	}
	Newat := new(Atom)
	*Newat = *A
	Newat.Bonds = nil
	return Newat
}

//Topology contains the information about a group of atoms which is not
//expected to change in time, i.e. everything except for the coordinates.
type Topology struct {
	Atoms    []*Atom
	charge   int
	multi    int
	hasbonds bool
	bonds    []*Bond
}

//NewTopology returns a topology with the given atoms, charge and multiplicity.
//The Index field of every atom is set to its position in the slice, so it can
//later serve as a stable identifier across subselections. It returns an error
//if ats is nil.
func NewTopology(ats []*Atom, charge, multi int) (*Topology, error) {
	if ats == nil {
		return nil, &CError{"nil slice of atoms given", []string{"NewTopology"}}
	}
	T := new(Topology)
	T.Atoms = ats
	T.charge = charge
	T.multi = multi
	for i, v := range T.Atoms {
		v.Index = i
	}
	return T, nil
}

//Charge returns the total charge of the topology.
func (T *Topology) Charge() int {
	return T.charge
}

//Multi returns the multiplicity of the topology.
func (T *Topology) Multi() int {
	return T.multi
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("mdcheck: requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the topology to at.
//Panics if out of range.
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic("mdcheck: tried to set Atom out of bounds")
	}
	T.Atoms[i] = at
}

//SomeAtoms returns a sub-selection of T with the atoms in the positions given
//by atomlist, in that order. The returned topology shares the *Atom values
//with T, so the atoms keep their original Index, and any bond information
//assigned to the parent system remains visible through the selection.
func (T *Topology) SomeAtoms(atomlist []int) (*Topology, error) {
	ret := make([]*Atom, 0, len(atomlist))
	lenatoms := T.Len()
	for k, j := range atomlist {
		if j > lenatoms-1 || j < 0 {
			return nil, &CError{fmt.Sprintf("atom requested (position %d, value %d) out of range", k, j), []string{"SomeAtoms"}}
		}
		ret = append(ret, T.Atoms[j])
	}
	N := new(Topology)
	N.Atoms = ret
	N.charge = T.charge
	N.multi = T.multi
	N.hasbonds = T.hasbonds
	N.bonds = T.bonds
	return N, nil
}

//Masses returns a slice with the masses of all atoms in the topology, or an
//error if any of them has not been assigned one.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		if at.Mass == 0 {
			return nil, &CError{fmt.Sprintf("not all the masses have been obtained: %d %v", i, at), []string{"Masses"}}
		}
		mass[i] = at.Mass
	}
	return mass, nil
}

//Molecule contains a topology and the coordinates (and, optionally, the unit
//cells) for one or more frames. It implements the Traj interface, so a
//multi-frame Molecule can drive the same analyses as a trajectory file.
type Molecule struct {
	*Topology
	Coords  []*v3.Matrix
	Cells   []*Cell //one per frame. The whole slice, or individual elements, can be nil (no periodicity).
	current int
}

//NewMolecule builds a Molecule from a topology and a set of coordinate
//frames. cells can be nil. It checks that every frame has one set of
//3 coordinates per atom in the topology.
func NewMolecule(top *Topology, coords []*v3.Matrix, cells []*Cell) (*Molecule, error) {
	if top == nil {
		return nil, &CError{"nil topology given", []string{"NewMolecule"}}
	}
	if len(coords) == 0 {
		return nil, &CError{"no coordinate frames given", []string{"NewMolecule"}}
	}
	for i, v := range coords {
		if v == nil || v.NVecs() != top.Len() {
			return nil, &CError{fmt.Sprintf("inconsistent coordinates/atoms in frame %d", i), []string{"NewMolecule"}}
		}
	}
	if cells != nil && len(cells) != len(coords) {
		return nil, &CError{"one unit cell per frame needed, or a nil slice", []string{"NewMolecule"}}
	}
	M := new(Molecule)
	M.Topology = top
	M.Coords = coords
	M.Cells = cells
	return M, nil
}

//NFrames returns the number of frames in the molecule.
func (M *Molecule) NFrames() int {
	return len(M.Coords)
}

//Cell returns the unit cell for the given frame, or nil if the molecule
//carries no cell information for it.
func (M *Molecule) Cell(frame int) *Cell {
	if M.Cells == nil || frame >= len(M.Cells) {
		return nil
	}
	return M.Cells[frame]
}

/******************************************
The following implement the Traj interface
*******************************************/

//Readable returns true if there are still frames left to read.
func (M *Molecule) Readable() bool {
	return M != nil && M.Coords != nil && M.current < len(M.Coords)
}

//Next puts the coordinates for the next frame in c (or discards the frame if
//c is nil) and, if box is given, fills it with the 6 unit-cell parameters of
//the frame (zeroes when the frame has no cell). When no frames are left it
//returns a LastFrameError.
func (M *Molecule) Next(c *v3.Matrix, box ...[]float64) error {
	if M.current >= len(M.Coords) {
		return newlastFrameError("", "Next")
	}
	if c != nil {
		if c.NVecs() != M.Len() {
			return &CError{fmt.Sprintf("%d rows in the given matrix, %d atoms per frame", c.NVecs(), M.Len()), []string{"Next"}}
		}
		c.Copy(M.Coords[M.current])
	}
	if len(box) > 0 && len(box[0]) >= 6 {
		cell := M.Cell(M.current)
		if cell == nil {
			for i := 0; i < 6; i++ {
				box[0][i] = 0
			}
		} else {
			p := cell.Params()
			copy(box[0], p[:])
		}
	}
	M.current++
	return nil
}

//InitRead rewinds the molecule so it can be read again as a trajectory.
func (M *Molecule) InitRead() error {
	if M == nil || len(M.Coords) == 0 {
		return &CError{"molecule has no frames", []string{"InitRead"}}
	}
	M.current = 0
	return nil
}

/**End Traj interface implementation***********/
