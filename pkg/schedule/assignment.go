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

import "time"

// GameAssignment is a scheduled game and whether it has been played. Only
// the completion fields ever change once the schedule is built.
type GameAssignment struct {
	Game `yaml:",inline"`

	Completed   bool       `yaml:"completed"`
	CompletedAt *time.Time `yaml:"completed-at"`
}

// Schedule is the ordered list of games, one per round.
type Schedule []GameAssignment
