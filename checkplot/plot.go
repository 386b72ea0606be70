/*
 * plot.go, part of mdcheck.
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

//Package checkplot draws the results of a structure check, so a long
//trajectory can be inspected at a glance.
package checkplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/mdcheck/check"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//PerFrame produces a png scatter plot, plotname.png, with the number of
//violations found in each flagged frame: steric overlaps in red, bond
//stretches in blue. Frames absent from badframes are clean and are simply
//not drawn. Returns an error or nil.
func PerFrame(badframes []*check.BadFrame, title, plotname string) error {
	if badframes == nil {
		return fmt.Errorf("checkplot: given nil results")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "violations"
	overlaps := make(plotter.XYs, 0, len(badframes))
	bonds := make(plotter.XYs, 0, len(badframes))
	for _, v := range badframes {
		if len(v.Overlaps) > 0 {
			overlaps = append(overlaps, plotter.XY{X: float64(v.Frame), Y: float64(len(v.Overlaps))})
		}
		if len(v.Bonds) > 0 {
			bonds = append(bonds, plotter.XY{X: float64(v.Frame), Y: float64(len(v.Bonds))})
		}
	}
	if len(overlaps) > 0 {
		s, err := plotter.NewScatter(overlaps)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		p.Add(s)
		p.Legend.Add("overlaps", s)
	}
	if len(bonds) > 0 {
		s, err := plotter.NewScatter(bonds)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		s.GlyphStyle.Shape = getShape(1)
		p.Add(s)
		p.Legend.Add("stretched bonds", s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

func getShape(tagged int) draw.GlyphDrawer {
	switch tagged {
	case 0:
		return draw.PyramidGlyph{}
	case 1:
		return draw.CircleGlyph{}
	case 2:
		return draw.SquareGlyph{}
	default:
		return draw.RingGlyph{}
	}
}
