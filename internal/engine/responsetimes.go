// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import "github.com/jontk/rtsa/model"

// updateFinishTimes widens (or inserts) the response-time
// interval for j.ID with rng, and report whether the resulting stored
// interval is a deadline miss (its Upto > j.Deadline).
func updateFinishTimes(rt *model.ResponseTimes, j model.Job, rng model.Interval[model.Time]) (deadlineMiss bool) {
	return rt.Update(j.ID, rng, j.Deadline)
}
