/*
 * bonds.go, part of mdcheck.
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
)

//Bond is a covalent bond between two atoms. Its current length is a property
//of the frame being analyzed, so it is not stored here.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom of the bond that is not the origin given.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("mdcheck: trying to cross a bond: the origin atom given is not present in the bond") //this has to be a programming error, so a panic is warranted.
}

//AddBond registers a covalent bond between the i-th and j-th atoms of the
//topology, and marks the topology as carrying bond information. The bond is
//visible through the Bonds field of both atoms and through any subselection
//that includes them.
func (T *Topology) AddBond(i, j int) error {
	if i >= T.Len() || j >= T.Len() || i < 0 || j < 0 {
		return &CError{fmt.Sprintf("bond %d-%d out of range for a %d-atom topology", i, j, T.Len()), []string{"AddBond"}}
	}
	if i == j {
		return &CError{fmt.Sprintf("atom %d can not be bonded to itself", i), []string{"AddBond"}}
	}
	at1 := T.Atom(i)
	at2 := T.Atom(j)
	b := &Bond{Index: len(T.bonds), At1: at1, At2: at2}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	T.bonds = append(T.bonds, b)
	T.hasbonds = true
	return nil
}

//HasBonds returns true if bond information has been assigned to the system
//this topology belongs to, even if no individual bond is confined to the
//current selection. The value is inherited by subselections.
func (T *Topology) HasBonds() bool {
	return T.hasbonds
}

//Bonds returns the bonds confined to the topology, i.e. those with both
//atoms present in the current selection. The slice is rebuilt on each call,
//in the order the bonds were assigned.
func (T *Topology) Bonds() []*Bond {
	if !T.hasbonds {
		return nil
	}
	present := make(map[int]bool, T.Len())
	for _, at := range T.Atoms {
		present[at.Index] = true
	}
	var ret []*Bond
	for _, b := range T.bonds {
		if present[b.At1.Index] && present[b.At2.Index] {
			ret = append(ret, b)
		}
	}
	return ret
}
