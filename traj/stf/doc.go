/*
 * doc.go, part of mdcheck.
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

/*Package stf reads and writes the simple trajectory format, a compressed,
text-based trajectory. The format is a sequence of lines: an optional header
of key=value pairs, a line "** natoms", and then, per frame, one line with 3
fixed-point coordinates per atom, closed by a cell line: either
"* a b c alpha beta gamma" (3 lengths and 3 angles, as trajectory formats
customarily carry the unit cell) or a bare "*" when the frame is not
periodic.

The whole stream is compressed. The compressor is chosen from the last
letter of the filename: zstd by default (.stf), gzip for names ending in "z"
and flate for names ending in "r".
*/
package stf
