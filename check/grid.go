/*
 * grid.go, part of mdcheck.
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

package check

import (
	"math"
	"sort"

	mdcheck "github.com/rmera/mdcheck"
	v3 "github.com/rmera/mdcheck/v3"
)

//The neighbor search is capped at the cutoff with cell lists, so the cost is
//close to linear for sparse systems and only degrades to all-pairs when the
//density (or the cutoff) is high. Cell lists are used for orthorhombic cells
//and for open boundaries; triclinic cells always go through the brute-force
//path, with full minimum-image distances.

//maxCellsPerAxis keeps the cell grid from outgrowing the atom count when the
//box is much larger than the cutoff. Coarser cells are always correct, just
//slower.
const maxCellsPerAxis = 64

//searchPairs returns every pair of vectors of coord whose minimum-image
//distance under cell is <= cutoff, self-pairs excluded. Pairs are reported
//once, sorted by the first index and then the second.
func searchPairs(coord *v3.Matrix, cutoff float64, cell *mdcheck.Cell) []Pair {
	var ret []Pair
	if g := newGrid(coord, cutoff, cell); g != nil {
		ret = g.pairs(coord, cutoff, cell)
	} else {
		ret = brutePairs(coord, cutoff, cell)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].At1 != ret[j].At1 {
			return ret[i].At1 < ret[j].At1
		}
		return ret[i].At2 < ret[j].At2
	})
	return ret
}

//brutePairs is the all-pairs fallback. It is also the reference
//implementation the grid is tested against.
func brutePairs(coord *v3.Matrix, cutoff float64, cell *mdcheck.Cell) []Pair {
	var ret []Pair
	n := coord.NVecs()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := cell.MinDist(coord.At(i, 0)-coord.At(j, 0), coord.At(i, 1)-coord.At(j, 1), coord.At(i, 2)-coord.At(j, 2))
			if d <= cutoff {
				ret = append(ret, Pair{At1: i, At2: j, Dist: d})
			}
		}
	}
	return ret
}

//grid is a cell list: space divided in cells of side >= cutoff, so all the
//neighbors of an atom within the cutoff sit in its own cell or in one of
//the 26 adjacent ones.
type grid struct {
	n        [3]int
	side     [3]float64
	orig     [3]float64
	periodic bool
	where    []int   //cell of each atom
	cells    [][]int //atoms in each cell, ascending
}

//newGrid bins the vectors of coord. It returns nil when cell lists are not
//applicable: triclinic cells, periodic boxes under 3 cells per axis (the
//half-shell walk would double-count images) or degenerate extents.
func newGrid(coord *v3.Matrix, cutoff float64, cell *mdcheck.Cell) *grid {
	if cell != nil && !cell.Ortho() {
		return nil
	}
	g := new(grid)
	natoms := coord.NVecs()
	if cell.Ortho() {
		g.periodic = true
		L := cell.Lengths()
		for k := 0; k < 3; k++ {
			g.n[k] = int(L[k] / cutoff)
			if g.n[k] > maxCellsPerAxis {
				g.n[k] = maxCellsPerAxis
			}
			if g.n[k] < 3 {
				return nil
			}
			g.side[k] = L[k] / float64(g.n[k])
		}
	} else {
		var max [3]float64
		for k := 0; k < 3; k++ {
			g.orig[k] = coord.At(0, k)
			max[k] = coord.At(0, k)
		}
		for i := 1; i < natoms; i++ {
			for k := 0; k < 3; k++ {
				v := coord.At(i, k)
				if v < g.orig[k] {
					g.orig[k] = v
				}
				if v > max[k] {
					max[k] = v
				}
			}
		}
		for k := 0; k < 3; k++ {
			ext := max[k] - g.orig[k]
			g.n[k] = int(ext / cutoff)
			if g.n[k] < 1 {
				g.n[k] = 1
			}
			if g.n[k] > maxCellsPerAxis {
				g.n[k] = maxCellsPerAxis
			}
			g.side[k] = ext / float64(g.n[k])
			if g.side[k] < cutoff {
				g.side[k] = cutoff
			}
		}
	}
	g.cells = make([][]int, g.n[0]*g.n[1]*g.n[2])
	g.where = make([]int, natoms)
	for i := 0; i < natoms; i++ {
		x, y, z := coord.At(i, 0), coord.At(i, 1), coord.At(i, 2)
		if g.periodic {
			x, y, z = cell.Wrap(x, y, z)
		}
		c := g.flat(g.bin(x, 0), g.bin(y, 1), g.bin(z, 2))
		g.where[i] = c
		g.cells[c] = append(g.cells[c], i)
	}
	return g
}

func (g *grid) bin(v float64, k int) int {
	i := int(math.Floor((v - g.orig[k]) / g.side[k]))
	if i < 0 {
		i = 0
	}
	if i >= g.n[k] {
		i = g.n[k] - 1
	}
	return i
}

func (g *grid) flat(ix, iy, iz int) int {
	return (ix*g.n[1]+iy)*g.n[2] + iz
}

//unflat is the inverse of flat.
func (g *grid) unflat(c int) (int, int, int) {
	iz := c % g.n[2]
	c /= g.n[2]
	iy := c % g.n[1]
	return c / g.n[1], iy, iz
}

//pairs walks, for each atom, the 27 cells around its own, and keeps the
//partners with a higher index than the atom itself, so every pair is
//emitted exactly once. With at least 3 cells per periodic axis, each offset
//lands in a different cell, so no image is visited twice.
func (g *grid) pairs(coord *v3.Matrix, cutoff float64, cell *mdcheck.Cell) []Pair {
	var ret []Pair
	natoms := coord.NVecs()
	for i := 0; i < natoms; i++ {
		ix, iy, iz := g.unflat(g.where[i])
		for ox := -1; ox <= 1; ox++ {
			jx, ok := g.shift(ix, ox, 0)
			if !ok {
				continue
			}
			for oy := -1; oy <= 1; oy++ {
				jy, ok := g.shift(iy, oy, 1)
				if !ok {
					continue
				}
				for oz := -1; oz <= 1; oz++ {
					jz, ok := g.shift(iz, oz, 2)
					if !ok {
						continue
					}
					for _, j := range g.cells[g.flat(jx, jy, jz)] {
						if j <= i {
							continue
						}
						d := cell.MinDist(coord.At(i, 0)-coord.At(j, 0), coord.At(i, 1)-coord.At(j, 1), coord.At(i, 2)-coord.At(j, 2))
						if d <= cutoff {
							ret = append(ret, Pair{At1: i, At2: j, Dist: d})
						}
					}
				}
			}
		}
	}
	return ret
}

//shift moves a cell index by the given offset along axis k, wrapping for
//periodic grids and reporting out-of-range cells for open ones.
func (g *grid) shift(i, offset, k int) (int, bool) {
	i += offset
	if g.periodic {
		if i < 0 {
			i += g.n[k]
		} else if i >= g.n[k] {
			i -= g.n[k]
		}
		return i, true
	}
	if i < 0 || i >= g.n[k] {
		return 0, false
	}
	return i, true
}
