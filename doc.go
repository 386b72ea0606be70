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

/*Package mdcheck provides the atom, topology and trajectory machinery needed to
scan molecular dynamics trajectories for structural defects.

The root package contains the types shared by the analyses: atoms and
topologies (with optional bond information), an in-memory Molecule that
doubles as a trajectory, the Traj interface implemented by trajectory
readers, and periodic unit cells with minimum-image distance calculations.

The actual defect detection (steric overlaps and over-stretched bonds) lives
in the check subpackage. The traj/stf subpackage reads and writes a simple
compressed trajectory format, and checkplot draws per-frame violation plots.

Distances are in Angstroms and angles in degrees, everywhere.
*/
package mdcheck
