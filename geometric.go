/*
 * geometric.go, part of mdcheck.
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
	"math"
)

//Deg2Rad converts degrees to radians when used as a factor.
const Deg2Rad float64 = math.Pi / 180.0

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Cell is a periodic simulation cell, built from 3 lengths (A) and 3 angles
//(degrees): alpha between the b and c vectors, beta between a and c, and
//gamma between a and b. A nil *Cell means open boundaries, and all the
//methods below accept a nil receiver with that meaning.
type Cell struct {
	lengths [3]float64
	angles  [3]float64
	vecs    [3][3]float64 //rows are the a, b and c cell vectors
	inv     [3][3]float64 //inverse of vecs, to go from cartesian to fractional
	ortho   bool
}

//NewCell builds a Cell from at least 6 parameters: 3 lengths and 3 angles,
//in that order. If all three lengths are zero, it returns a nil cell and no
//error, meaning open boundaries (this is how trajectory formats mark frames
//without periodicity). Otherwise, lengths must be positive and angles in the
//open interval (0,180).
func NewCell(params []float64) (*Cell, error) {
	if len(params) < 6 {
		return nil, &CError{fmt.Sprintf("6 cell parameters needed, %d given", len(params)), []string{"NewCell"}}
	}
	if params[0] == 0 && params[1] == 0 && params[2] == 0 {
		return nil, nil
	}
	C := new(Cell)
	for i := 0; i < 3; i++ {
		C.lengths[i] = params[i]
		C.angles[i] = params[i+3]
		if C.lengths[i] <= 0 {
			return nil, &CError{fmt.Sprintf("non-positive cell length %7.3f", C.lengths[i]), []string{"NewCell"}}
		}
		if C.angles[i] <= 0 || C.angles[i] >= 180 {
			return nil, &CError{fmt.Sprintf("cell angle %7.3f outside (0,180)", C.angles[i]), []string{"NewCell"}}
		}
	}
	C.ortho = true
	for _, v := range C.angles {
		if math.Abs(v-90) > appzero {
			C.ortho = false
			break
		}
	}
	a, b, c := C.lengths[0], C.lengths[1], C.lengths[2]
	if C.ortho {
		C.vecs = [3][3]float64{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
	} else {
		cosa := math.Cos(C.angles[0] * Deg2Rad)
		cosb := math.Cos(C.angles[1] * Deg2Rad)
		cosg := math.Cos(C.angles[2] * Deg2Rad)
		sing := math.Sin(C.angles[2] * Deg2Rad)
		cx := c * cosb
		cy := c * (cosa - cosb*cosg) / sing
		czsq := c*c - cx*cx - cy*cy
		if czsq <= 0 {
			return nil, &CError{"degenerate cell: the given angles do not define a 3D lattice", []string{"NewCell"}}
		}
		C.vecs = [3][3]float64{
			{a, 0, 0},
			{b * cosg, b * sing, 0},
			{cx, cy, math.Sqrt(czsq)},
		}
	}
	var err error
	C.inv, err = invert3(C.vecs)
	if err != nil {
		return nil, errDecorate(err, "NewCell")
	}
	return C, nil
}

//Params returns the 6 cell parameters: 3 lengths followed by 3 angles.
func (C *Cell) Params() [6]float64 {
	var ret [6]float64
	if C == nil {
		return ret
	}
	copy(ret[0:3], C.lengths[:])
	copy(ret[3:6], C.angles[:])
	return ret
}

//Ortho returns true if the cell is orthorhombic (all angles are 90 degrees).
//A nil cell is not orthorhombic: it is not periodic at all.
func (C *Cell) Ortho() bool {
	return C != nil && C.ortho
}

//Lengths returns the 3 cell lengths.
func (C *Cell) Lengths() [3]float64 {
	if C == nil {
		return [3]float64{}
	}
	return C.lengths
}

//MinDist returns the norm of the displacement (dx,dy,dz) under the
//minimum-image convention for the cell. With a nil receiver it returns the
//plain Euclidean norm.
func (C *Cell) MinDist(dx, dy, dz float64) float64 {
	if C == nil {
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	if C.ortho {
		dx -= C.lengths[0] * math.Round(dx/C.lengths[0])
		dy -= C.lengths[1] * math.Round(dy/C.lengths[1])
		dz -= C.lengths[2] * math.Round(dz/C.lengths[2])
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	//Triclinic. We take the displacement to the cell around the origin via
	//fractional coordinates, and then scan the neighboring images, as the
	//nearest lattice point in fractional space need not give the shortest
	//cartesian vector for skewed cells.
	var f [3]float64
	f[0] = dx*C.inv[0][0] + dy*C.inv[1][0] + dz*C.inv[2][0]
	f[1] = dx*C.inv[0][1] + dy*C.inv[1][1] + dz*C.inv[2][1]
	f[2] = dx*C.inv[0][2] + dy*C.inv[1][2] + dz*C.inv[2][2]
	for i := 0; i < 3; i++ {
		f[i] -= math.Round(f[i])
	}
	min := math.Inf(1)
	for n0 := -1.0; n0 <= 1; n0++ {
		for n1 := -1.0; n1 <= 1; n1++ {
			for n2 := -1.0; n2 <= 1; n2++ {
				g0 := f[0] + n0
				g1 := f[1] + n1
				g2 := f[2] + n2
				cx := g0*C.vecs[0][0] + g1*C.vecs[1][0] + g2*C.vecs[2][0]
				cy := g0*C.vecs[0][1] + g1*C.vecs[1][1] + g2*C.vecs[2][1]
				cz := g0*C.vecs[0][2] + g1*C.vecs[1][2] + g2*C.vecs[2][2]
				if d := math.Sqrt(cx*cx + cy*cy + cz*cz); d < min {
					min = d
				}
			}
		}
	}
	return min
}

//Wrap returns the image of the point (x,y,z) inside the cell anchored at the
//origin, i.e. with fractional coordinates in [0,1). With a nil receiver the
//point is returned unchanged.
func (C *Cell) Wrap(x, y, z float64) (float64, float64, float64) {
	if C == nil {
		return x, y, z
	}
	if C.ortho {
		x -= C.lengths[0] * math.Floor(x/C.lengths[0])
		y -= C.lengths[1] * math.Floor(y/C.lengths[1])
		z -= C.lengths[2] * math.Floor(z/C.lengths[2])
		return x, y, z
	}
	f0 := x*C.inv[0][0] + y*C.inv[1][0] + z*C.inv[2][0]
	f1 := x*C.inv[0][1] + y*C.inv[1][1] + z*C.inv[2][1]
	f2 := x*C.inv[0][2] + y*C.inv[1][2] + z*C.inv[2][2]
	f0 -= math.Floor(f0)
	f1 -= math.Floor(f1)
	f2 -= math.Floor(f2)
	x = f0*C.vecs[0][0] + f1*C.vecs[1][0] + f2*C.vecs[2][0]
	y = f0*C.vecs[0][1] + f1*C.vecs[1][1] + f2*C.vecs[2][1]
	z = f0*C.vecs[0][2] + f1*C.vecs[1][2] + f2*C.vecs[2][2]
	return x, y, z
}

//invert3 returns the inverse of a 3x3 matrix given as rows, or an error if
//the matrix is singular.
func invert3(m [3][3]float64) ([3][3]float64, error) {
	var inv [3][3]float64
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if math.Abs(det) <= appzero {
		return inv, &CError{"singular cell matrix", []string{"invert3"}}
	}
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det
	return inv, nil
}

//errDecorate asserts that the error implements the Error interface and
//decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
