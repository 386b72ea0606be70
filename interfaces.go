/*
 * interfaces.go, part of mdcheck.
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

import v3 "github.com/rmera/mdcheck/v3"

//Traj is the interface for any trajectory object, including a Molecule.
//An analysis written against Traj runs the same on an in-memory molecule
//or on a file being read frame by frame.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, or discards it if output is nil.
	//If a box slice of at least 6 elements is given, it is filled with the
	//unit-cell parameters for the frame (3 lengths and 3 angles), or with
	//zeroes if the frame carries no cell.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame.
	Len() int
}

//Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a slice with the massess of all atoms
	Masses() ([]float64, error)
}

//Errors

//Error is the interface for errors that all packages in this library
//implement. The Decorate method adds information to the error as it is
//passed up the calling stack, without changing its type or wrapping it.
//If passed an empty string, Decorate just returns the current decoration.
type Error interface {
	Error() string
	Decorate(string) []string
}

//TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

//LastFrameError has a do-nothing method to distinguish the harmless
//end-of-trajectory condition from the other TrajErrors, so it can be
//filtered in a type switch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination()
}
