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

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/doubles/internal/doubles/config"
	"laptudirm.com/x/doubles/internal/util"
	"laptudirm.com/x/doubles/pkg/report"
	"laptudirm.com/x/doubles/pkg/schedule"
	"laptudirm.com/x/doubles/pkg/store"
)

// doubles new
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [player...]",
		Short: "Start a new session with a fresh schedule",
		Long: heredoc.Doc(`new generates a schedule of doubles games for the given
			players and saves it as the current session.

			Between 4 and 8 players are supported. Players can be named
			on the command line, or just counted with --players, in
			which case they are named 1, 2, 3 and so on. Empty names
			("") are replaced by the player's number too.

			The number of games and the scoring weights are read from
			the config file and can be overridden with flags. Passing
			the same --seed and players again reproduces the schedule.`),
		Args: cobra.MaximumNArgs(schedule.SupportedPlayers),

		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("players")
			players, err := roster(args, count)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("config")
			conf, err := config.Load(path)
			if err != nil {
				return err
			}

			if cmd.Flag("rounds").Changed {
				conf.Rounds, _ = cmd.Flags().GetInt("rounds")
			}

			if cmd.Flag("seed").Changed {
				conf.Seed, _ = cmd.Flags().GetInt64("seed")
			}

			sessions := session(cmd)
			if force, _ := cmd.Flags().GetBool("force"); !force {
				switch _, err := sessions.Load(); {
				case err == nil:
					return errors.New("new session: a session is in progress, reset it or use --force")
				case !errors.Is(err, store.ErrNoSession):
					logrus.Warnf("replacing unreadable session: %v", err)
				}
			}

			var result *schedule.Result
			err = util.Spin(cmd.ErrOrStderr(), "Generating schedule", func() error {
				result, err = schedule.Generate(players, conf)
				return err
			})
			if err != nil {
				return err
			}

			state := store.New(players, result)
			if err := sessions.Save(state); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"session": state.Session,
				"seed":    state.Seed,
			}).Debug("session created")

			out := cmd.OutOrStdout()
			report.Schedule(out, players, state.Progress())
			fmt.Fprintln(out)
			report.Audit(out, players, result.Audit)
			return nil
		},
	}

	cmd.Flags().IntP("players", "p", 0, "Number of unnamed players")
	cmd.Flags().IntP("rounds", "r", schedule.DefaultRounds, "Number of games to schedule")
	cmd.Flags().Int64P("seed", "s", 0, "Seed for the schedule, 0 for a random one")
	cmd.Flags().BoolP("force", "f", false, "Replace the session in progress")

	return cmd
}

// roster builds the player list from the given names, or from a player
// count when no names are given.
func roster(names []string, count int) ([]schedule.Player, error) {
	switch {
	case len(names) > 0 && count > 0 && count != len(names):
		return nil, fmt.Errorf("new session: %d names given for %d players", len(names), count)
	case len(names) == 0:
		names = make([]string, count)
	}

	if len(names) < schedule.MinPlayers || len(names) > schedule.SupportedPlayers {
		return nil, fmt.Errorf(
			"new session: need %d to %d players, got %d",
			schedule.MinPlayers, schedule.SupportedPlayers, len(names),
		)
	}

	players := make([]schedule.Player, len(names))
	for i, name := range names {
		if name == "" {
			name = strconv.Itoa(i + 1)
		}

		players[i] = schedule.Player{ID: i + 1, Name: name}
	}

	return players, nil
}
