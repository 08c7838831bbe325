// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

import (
	"errors"
	"fmt"
)

// MinPlayers is the smallest roster a doubles game can be played with.
const MinPlayers = 4

var (
	// ErrInsufficientPlayers is returned when the roster is too small to
	// fill even a single game.
	ErrInsufficientPlayers = errors.New("insufficient players")

	// ErrDuplicatePlayer is returned when two roster entries share an id.
	ErrDuplicatePlayer = errors.New("duplicate player id")

	// ErrNoCandidates means that no legal game could be enumerated from a
	// valid roster, which should never happen.
	ErrNoCandidates = errors.New("internal invariant violation: no candidate games")
)

// FairnessWarning reports a schedule whose final fairness gap is larger
// than one. The schedule it accompanies is still valid.
type FairnessWarning struct {
	Spread   int
	Min, Max int
}

func (warning *FairnessWarning) Error() string {
	return fmt.Sprintf(
		"fairness audit: games played range from %d to %d (gap %d)",
		warning.Min, warning.Max, warning.Spread,
	)
}
