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
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/doubles/pkg/report"
)

func Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current game and the full schedule",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := session(cmd).Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progress := state.Progress()

			report.Current(out, state.Players, progress)
			fmt.Fprintln(out)
			report.Schedule(out, state.Players, progress)
			fmt.Fprintln(out)
			report.Stats(out, progress.PlayerStats(state.Players))
			return nil
		},
	}
}
