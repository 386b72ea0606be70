/*
 * stf.go, part of mdcheck.
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

package stf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/mdcheck/v3"
)

//StfW writes a trajectory, one frame at a time.
type StfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
}

//NewWriter creates a trajectory file for natoms atoms per frame. The
//optional header map is written as key=value lines before the atom count;
//a "prec" key overrides the default fixed-point precision of 2 decimals.
func NewWriter(name string, natoms int, header map[string]string) (*StfW, error) {
	S := new(StfW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	S.h, err = compressor(name, S.f)
	if err != nil {
		return nil, Error{"can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.natoms = natoms
	S.filename = name
	S.writeable = true
	S.prec = 2
	if header != nil {
		if p, ok := header["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err == nil {
				S.prec = prec
			} else {
				log.Printf("stf: invalid precision for trajectory %s, will use the default", S.filename)
			}
		}
		for k, v := range header {
			fmt.Fprintf(S.h, "%s=%v\n", k, v)
		}
	}
	fmt.Fprintf(S.h, "** %d\n", S.natoms)
	return S, nil
}

//WNext writes the next frame: the given coordinates plus, if a slice of at
//least 6 elements is given, the unit-cell parameters for the frame. An
//all-zero (or absent) cell is written as a bare "*" terminator.
func (S *StfW) WNext(coord *v3.Matrix, box ...[]float64) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	p := math.Pow(10.0, float64(S.prec))
	for i := 0; i < v; i++ {
		fmt.Fprintf(S.h, "%d %d %d\n",
			int(math.RoundToEven(coord.At(i, 0)*p)),
			int(math.RoundToEven(coord.At(i, 1)*p)),
			int(math.RoundToEven(coord.At(i, 2)*p)))
	}
	if len(box) > 0 && len(box[0]) >= 6 && (box[0][0] != 0 || box[0][1] != 0 || box[0][2] != 0) {
		b := box[0]
		fmt.Fprintf(S.h, "* %6.4f %6.4f %6.4f %6.4f %6.4f %6.4f\n", b[0], b[1], b[2], b[3], b[4], b[5])
	} else {
		fmt.Fprint(S.h, "*\n")
	}
	return nil
}

//Len returns the number of atoms per frame.
func (S *StfW) Len() int {
	return S.natoms
}

//Close flushes and closes the trajectory. The object can not be used after
//this call.
func (S *StfW) Close() {
	if S == nil || !S.writeable {
		return
	}
	S.h.Close()
	S.f.Close()
	S.writeable = false
}

//StfR reads a trajectory, one frame at a time.
type StfR struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	prec     int
	readable bool
}

//zstd.Decoder doesn't implement io.ReadCloser (its Close returns nothing),
//so it gets a little help.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s zstdql) Close() error {
	s.closeql()
	return nil
}

//New opens a trajectory for reading. It returns a handle, a map with the
//header metadata (or nil if the file has no header), and error or nil.
func New(name string) (*StfR, map[string]string, error) {
	S := new(StfR)
	S.natoms = -1 //just so we know if things don't work
	S.prec = 2
	var m map[string]string
	var err error
	S.filename = name
	S.f, err = os.Open(S.filename)
	if err != nil {
		return nil, nil, err
	}
	S.z, err = decompressor(name, bufio.NewReader(S.f))
	if err != nil {
		return nil, nil, Error{"can't set up decompression: " + err.Error(), S.filename, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.z)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"can't read header: " + err.Error(), S.filename, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, nil, Error{fmt.Sprintf("can't read atom number from '%s'", str), S.filename, []string{"New"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("can't read atom number from '%s': %s", nat[1], err.Error()), S.filename, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{fmt.Sprintf("malformed header line '%s'", str), S.filename, []string{"New"}, true}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err == nil {
			S.prec = prec
		} else {
			log.Printf("stf: invalid precision for trajectory %s, will assume the default", S.filename)
		}
	}
	S.readable = true
	return S, m, nil
}

//Readable returns true if it is possible to call Next on the handle.
func (S *StfR) Readable() bool {
	return S.readable
}

//Next puts in c the coordinates for the next frame of the trajectory, or
//discards the frame if c is nil. If a slice of at least 6 elements is
//given, it is filled with the frame's unit-cell parameters, or with zeroes
//when the frame carries none. At the end of the trajectory it returns a
//mdcheck.LastFrameError.
func (S *StfR) Next(c *v3.Matrix, box ...[]float64) error {
	if !S.readable {
		return Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	p := math.Pow(10.0, float64(S.prec))
	for i := 0; i < S.natoms; i++ {
		b, err := S.h.ReadBytes('\n')
		if err != nil {
			//EOF should only happen when reading the first atom.
			if err == io.EOF && i == 0 {
				S.Close()
				return newlastFrameError(S.filename, "Next")
			}
			return Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(string(b))
		if len(fields) != 3 {
			return Error{fmt.Sprintf("ill-formatted coordinate line in frame: '%s'", strings.TrimSpace(string(b))), S.filename, []string{"Next"}, true}
		}
		for j, v := range fields {
			f, err := strconv.Atoi(v)
			if err != nil {
				return Error{fmt.Sprintf("can't parse coordinate %d (%s): %s", j, v, err.Error()), S.filename, []string{"Next"}, true}
			}
			if c != nil {
				c.Set(i, j, float64(f)/p)
			}
		}
	}
	s, err := S.h.ReadString('\n')
	if err != nil {
		return Error{"can't read the frame termination mark: " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return Error{"wrong number of atoms in frame", S.filename, []string{"Next"}, true}
	}
	if len(box) > 0 && len(box[0]) >= 6 {
		for i := 0; i < 6; i++ {
			box[0][i] = 0
		}
		fields := strings.Fields(strings.TrimSpace(s))
		if len(fields) >= 7 { //the "*" and the 6 numbers
			var errbox error
			for j, v := range fields[1:7] {
				box[0][j], errbox = strconv.ParseFloat(v, 64)
				if errbox != nil {
					break
				}
			}
			if errbox != nil {
				log.Printf("stf: failed to read the cell in a frame from %s", S.filename) //just a heads-up
				for i := 0; i < 6; i++ {
					box[0][i] = 0
				}
			}
		}
	}
	return nil
}

//Len returns the number of atoms in each frame of the trajectory.
func (S *StfR) Len() int {
	return S.natoms
}

//Close closes the object, and marks it as unreadable.
func (S *StfR) Close() {
	if !S.readable {
		return
	}
	S.z.Close()
	S.f.Close()
	S.readable = false
}

//compressor and decompressor choose the compression scheme from the last
//letter of the filename: gzip for "z", flate for "r", zstd otherwise.
func compressor(name string, f io.Writer) (io.WriteCloser, error) {
	switch name[len(name)-1] {
	case 'z':
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case 'r':
		return flate.NewWriter(f, flate.BestCompression)
	default:
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

func decompressor(name string, f io.Reader) (io.ReadCloser, error) {
	switch name[len(name)-1] {
	case 'z':
		return gzip.NewReader(f)
	case 'r':
		return flate.NewReader(f), nil
	default:
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &zstdql{r.Close, r}, nil
	}
}

//Errors

//Error is the general structure for stf trajectory errors. It fulfills
//mdcheck.Error and mdcheck.TrajError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("stf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error and returns the current
//decoration.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error.
func (err Error) Format() string { return "stf" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "traj object uninitialized to read"
	TrajUnIniWrite = "traj object uninitialized to write"
	NilCoordinates = "given nil coordinates"
)

//lastFrameError implements mdcheck.LastFrameError.
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing, it's just there to distinguish
//this type from the other trajectory errors.
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "stf" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
