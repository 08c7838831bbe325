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
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultRounds is the length of a schedule unless configured otherwise.
const DefaultRounds = 20

// SupportedPlayers is the largest roster the scheduler is tuned for. Larger
// rosters work but the candidate set grows with the fourth power of the
// roster size.
const SupportedPlayers = 8

type Config struct {
	Rounds  int     `yaml:"rounds"`  // Number of games to schedule.
	Seed    int64   `yaml:"seed"`    // Seed for tie-breaking, 0 picks one.
	Weights Weights `yaml:"weights"` // Candidate scoring weights.
}

// DefaultConfig returns the reference configuration with a zero seed.
func DefaultConfig() Config {
	return Config{
		Rounds:  DefaultRounds,
		Weights: DefaultWeights(),
	}
}

// SetDefaults fills in the unset fields of the config.
func (config *Config) SetDefaults() {
	if config.Rounds == 0 {
		config.Rounds = DefaultRounds
	}

	if config.Weights == (Weights{}) {
		config.Weights = DefaultWeights()
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
}

func (config Config) Validate() error {
	if config.Rounds < 1 {
		return fmt.Errorf("config: invalid number of rounds %d", config.Rounds)
	}

	return config.Weights.Validate()
}

// Audit summarises the fairness of a generated schedule.
type Audit struct {
	Played       map[int]int `yaml:"played"` // Games played by each player id.
	Min          int         `yaml:"min"`
	Max          int         `yaml:"max"`
	Spread       int         `yaml:"spread"`
	MaxPartners  int         `yaml:"max-partners"`
	MaxOpponents int         `yaml:"max-opponents"`
}

func newAudit(players []Player, history *History) Audit {
	audit := Audit{
		Played:       make(map[int]int, len(players)),
		MaxPartners:  history.MaxPartners(),
		MaxOpponents: history.MaxOpponents(),
	}

	for _, player := range players {
		audit.Played[player.ID] = history.Played(player.ID)
	}

	audit.Min, audit.Max = history.Bounds()
	audit.Spread = audit.Max - audit.Min
	return audit
}

// Warning returns the fairness warning for the audited schedule, or nil if
// the fairness gap is at most one.
func (audit Audit) Warning() *FairnessWarning {
	if audit.Spread <= 1 {
		return nil
	}

	return &FairnessWarning{
		Spread: audit.Spread,
		Min:    audit.Min,
		Max:    audit.Max,
	}
}

// Result is the outcome of a successful generation.
type Result struct {
	Schedule Schedule
	Audit    Audit
	Seed     int64

	// Warning is set when the final fairness gap is above one. The
	// schedule is still usable.
	Warning *FairnessWarning
}

// Generate builds a schedule of config.Rounds games for the given roster.
// Generation either fails as a whole or returns a complete schedule.
func Generate(players []Player, config Config) (*Result, error) {
	if err := validateRoster(players); err != nil {
		return nil, err
	}

	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if len(players) > SupportedPlayers {
		logrus.Warnf("generate: %d players is more than the %d supported", len(players), SupportedPlayers)
	}

	candidates := Games(Pairs(players))
	if len(candidates) == 0 {
		return nil, fmt.Errorf("generate: %d players: %w", len(players), ErrNoCandidates)
	}

	history := NewHistory(players)
	selector := NewSelector(candidates, history, config.Weights, rand.New(rand.NewSource(config.Seed)))

	schedule := make(Schedule, 0, config.Rounds)
	for round := 0; round < config.Rounds; round++ {
		schedule = append(schedule, GameAssignment{
			Game: selector.Next(),
		})
	}

	result := &Result{
		Schedule: schedule,
		Audit:    newAudit(players, history),
		Seed:     config.Seed,
	}

	if result.Warning = result.Audit.Warning(); result.Warning != nil {
		logrus.WithField("seed", config.Seed).Warn(result.Warning)
	}

	return result, nil
}

func validateRoster(players []Player) error {
	if len(players) < MinPlayers {
		return fmt.Errorf(
			"generate: need at least %d players for doubles, got %d: %w",
			MinPlayers, len(players), ErrInsufficientPlayers,
		)
	}

	seen := make(map[int]bool, len(players))
	for _, player := range players {
		if seen[player.ID] {
			return fmt.Errorf("generate: player %d: %w", player.ID, ErrDuplicatePlayer)
		}
		seen[player.ID] = true
	}

	return nil
}

