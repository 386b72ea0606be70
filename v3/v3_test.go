/*
 * v3_test.go, part of mdcheck.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice with a length not divisible by 3 should be rejected")
	}
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("wrong number of vectors: %d", A.NVecs())
	}
	d := Zeros(1)
	d.Sub(A.VecView(1), A.VecView(0))
	if math.Abs(d.Norm(2)-5) > 1e-12 {
		Te.Errorf("wrong distance between vectors: %8.5f", d.Norm(2))
	}
}

func TestViewsAndSelections(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4})
	if err != nil {
		Te.Fatal(err)
	}
	v := A.VecView(2)
	v.Set(0, 0, 30)
	if A.At(2, 0) != 30 {
		Te.Error("changes in a view should be reflected in the original")
	}
	B := Zeros(2)
	B.SomeVecs(A, []int{3, 0})
	if B.At(0, 1) != 4 || B.At(1, 1) != 1 {
		Te.Errorf("wrong selection: %v", B)
	}
	B.Set(0, 0, 40)
	B.Set(0, 1, 40)
	B.Set(0, 2, 40)
	A.SetVecs(B, []int{1, 2})
	if A.At(1, 2) != 40 {
		Te.Errorf("SetVecs did not copy the vector: %v", A)
	}
	A.SwapVecs(0, 3)
	if A.At(3, 0) != 1 || A.At(0, 1) != 4 {
		Te.Errorf("wrong swap: %v", A)
	}
}

func TestCopy(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(2)
	B.Copy(A)
	B.Set(0, 0, 100)
	if A.At(0, 0) != 1 {
		Te.Error("Copy should not share memory with the original")
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("copying into a matrix of different size should panic")
		}
	}()
	Zeros(3).Copy(A)
}
