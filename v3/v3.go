/*
 * v3.go, part of mdcheck.
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

//Package v3 implements a set of vectors in 3D space, backed by a gonum
//Dense matrix with 3 columns. Within the package it is understood that a
//"vector" is a row of the matrix, i.e. the cartesian coordinates of a point.
//Many of these functions panic instead of returning errors: they are
//fundamental operations, and if one of them goes wrong the program is
//way-most likely wrong too.
package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a 3-column gonum Dense matrix into a *Matrix.
//It panics if A does not have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(fmt.Sprintf("v3: can not wrap a %d-column Dense as a set of 3D vectors", c))
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the i-th vector of the matrix. Changes in the
//view are reflected in the original matrix.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Copy copies A into the receiver. It panics if the dimensions don't match.
func (F *Matrix) Copy(A *Matrix) {
	fr, _ := F.Dims()
	ar, _ := A.Dims()
	if fr != ar {
		panic(fmt.Sprintf("v3: Copy: mismatched dimensions: %d rows in the receiver, %d in the argument", fr, ar))
	}
	F.Dense.Copy(A.Dense)
}

//SomeVecs puts in the receiver the vectors of A with the indexes in clist,
//in that order. Panics if the receiver does not have len(clist) rows or an
//index is out of range.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic("v3: SomeVecs: receiver with wrong number of vectors")
	}
	nvecs := A.NVecs()
	for k, j := range clist {
		if j >= nvecs {
			panic(fmt.Sprintf("v3: SomeVecs: vector requested, %d, out of range", j))
		}
		for l := 0; l < 3; l++ {
			F.Set(k, l, A.At(j, l))
		}
	}
}

//SetVecs copies the vectors of A, in order, into the positions of the
//receiver given by clist. Panics if an index is out of range.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	nvecs := F.NVecs()
	for k, j := range clist {
		if j >= nvecs {
			panic(fmt.Sprintf("v3: SetVecs: vector requested, %d, out of range", j))
		}
		for l := 0; l < 3; l++ {
			F.Set(j, l, A.At(k, l))
		}
	}
}

//SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic("v3: SwapVecs: indexes out of range")
	}
	for k := 0; k < 3; k++ {
		tmp := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, tmp)
	}
}

//Sub puts in the receiver the difference A-B. The receiver can be one of
//the arguments.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Add puts in the receiver the sum A+B. The receiver can be one of
//the arguments.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Scale puts in the receiver the matrix A scaled by v.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Norm returns the i-norm of the matrix. For a single vector, Norm(2) is its
//Euclidean length.
func (F *Matrix) Norm(i int) float64 {
	return mat.Norm(F.Dense, float64(i))
}

//String returns a neat text representation of the matrix.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense, mat.Squeeze()))
}

//Error is the concrete error type for the package. It fulfills the Error
//interface of the parent package, without importing it.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return err.message
}

//Decorate adds new information to the error, and returns the current
//decoration.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
