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

// Package store persists a doubles session (the roster, its schedule and
// the cursor into it) as a yaml file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/doubles/pkg/common"
	"laptudirm.com/x/doubles/pkg/schedule"
)

// ErrNoSession is returned when there is no saved session to load.
var ErrNoSession = errors.New("no saved session")

type State struct {
	Session uuid.UUID `yaml:"session"`
	Created time.Time `yaml:"created"`
	Seed    int64     `yaml:"seed"`

	Players  []schedule.Player `yaml:"players"`
	Schedule schedule.Schedule `yaml:"schedule"`
	Cursor   int               `yaml:"cursor"`

	Audit schedule.Audit `yaml:"audit"`
}

// New returns a fresh session for the given generation result.
func New(players []schedule.Player, result *schedule.Result) *State {
	return &State{
		Session:  uuid.New(),
		Created:  time.Now(),
		Seed:     result.Seed,
		Players:  players,
		Schedule: result.Schedule,
		Audit:    result.Audit,
	}
}

// Progress returns a view of the state's schedule and cursor. Apply must
// be called to write any changes made through it back into the state.
func (state *State) Progress() *schedule.Progress {
	return &schedule.Progress{
		Schedule: state.Schedule,
		Cursor:   state.Cursor,
	}
}

func (state *State) Apply(progress *schedule.Progress) {
	state.Schedule = progress.Schedule
	state.Cursor = progress.Cursor
}

func (state *State) validate() error {
	if state.Cursor < 0 || state.Cursor >= max(len(state.Schedule), 1) {
		return fmt.Errorf("cursor %d outside schedule of %d games", state.Cursor, len(state.Schedule))
	}

	for i := range state.Schedule {
		if done := i < state.Cursor; state.Schedule[i].Completed != done {
			return fmt.Errorf("game %d completion out of sync with cursor %d", i+1, state.Cursor)
		}
	}

	return nil
}

// Store reads and writes the session file at Path.
type Store struct {
	Path string
}

// Default returns the Store for the user's session file.
func Default() *Store {
	return &Store{Path: common.SessionFile}
}

func (store *Store) Load() (*State, error) {
	file, err := os.ReadFile(store.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSession
	} else if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(file, &state); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if err := state.validate(); err != nil {
		return nil, fmt.Errorf("load session %s: %w", state.Session, err)
	}

	return &state, nil
}

func (store *Store) Save(state *State) error {
	if err := common.TryMkdir(filepath.Dir(store.Path)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	file, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := os.WriteFile(store.Path, file, common.FilePermissions); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Reset deletes the saved session. Resetting without a session is not an
// error.
func (store *Store) Reset() error {
	if err := os.Remove(store.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reset session: %w", err)
	}

	return nil
}
