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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/doubles/pkg/report"
)

// doubles undo
func Undo() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last game marked as played",
		Long: heredoc.Doc(`undo marks the last played game as not played and makes it
			the current game again.

			The schedule itself is not regenerated, the statistics it was
			built from stay as they were.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := session(cmd)
			state, err := sessions.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progress := state.Progress()
			if !progress.UndoLastGame() {
				fmt.Fprintln(out, "No played games to undo.")
				return nil
			}

			state.Apply(progress)
			if err := sessions.Save(state); err != nil {
				return err
			}

			report.Current(out, state.Players, progress)
			return nil
		},
	}
}
