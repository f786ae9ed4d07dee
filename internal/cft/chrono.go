/*
 Copyright (C) 2025 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package cft

import "time"

// Chrono measures time elapsed since it was started.
type Chrono struct {
	start time.Time
}

// NewChrono returns a Chrono started at the current instant.
func NewChrono() Chrono {
	return Chrono{start: time.Now()}
}

// Elapsed returns the time elapsed since the timer started; it does not
// reset the timer.
func (c Chrono) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Restart returns the time elapsed since the timer started (or was last
// restarted) and resets the start instant to now.
func (c *Chrono) Restart() time.Duration {
	now := time.Now()
	elapsed := now.Sub(c.start)
	c.start = now
	return elapsed
}
