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
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"laptudirm.com/x/doubles/internal/util"
	"laptudirm.com/x/doubles/pkg/report"
	"laptudirm.com/x/doubles/pkg/schedule"
)

func Stats() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show player statistics and the fairness of the schedule",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := session(cmd).Load()
			if err != nil {
				return err
			}

			stats := state.Progress().PlayerStats(state.Players)

			order, _ := cmd.Flags().GetString("sort")
			if err := sortStats(stats, order); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.Stats(out, stats)
			fmt.Fprintln(out)
			report.Audit(out, state.Players, state.Audit)
			return nil
		},
	}

	cmd.Flags().String("sort", "roster", "Order players by roster, name, or played")
	return cmd
}

func sortStats(stats []schedule.PlayerStat, order string) error {
	switch order {
	case "roster", "":
	case "name":
		slices.SortStableFunc(stats, func(a, b schedule.PlayerStat) int {
			return util.AlphanumCompare(a.Player.Name, b.Player.Name)
		})
	case "played":
		slices.SortStableFunc(stats, func(a, b schedule.PlayerStat) int {
			return cmp.Compare(b.Played, a.Played)
		})
	default:
		return fmt.Errorf("stats: invalid sort order %s", order)
	}

	return nil
}
