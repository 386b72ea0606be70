/*
 * errors.go, part of mdcheck.
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

//CError is the concrete error type for the root package. It fulfills the
//Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string {
	return err.msg
}

//Decorate adds new information to the error and returns the current
//decoration. Each element should be the name of a function in the calling
//stack, plus, optionally, extra information.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//lastFrameError signals the normal end of a trajectory. It fulfills
//the LastFrameError interface.
type lastFrameError struct {
	fileName string
	deco     []string
}

//NormalLastFrameTermination does nothing. It is there to distinguish this
//type from other trajectory errors.
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "mol" }

func (E *lastFrameError) Decorate(deco string) []string {
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
