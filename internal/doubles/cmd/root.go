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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/doubles/pkg/common"
	"laptudirm.com/x/doubles/pkg/store"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "doubles",
		Short: "Fair rotations for 2-vs-2 games",
		Long: heredoc.Doc(`doubles builds a rotation of 2-vs-2 games for a group of
			4 to 8 players, spreading partners, opponents and games played
			as evenly as it can, and keeps track of the games as they are
			played.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Doubles' Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("session", common.SessionFile, "Session file to use")
	root.PersistentFlags().String("config", common.ConfigFile, "Config file to use")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(New())
	root.AddCommand(Show())
	root.AddCommand(Done())
	root.AddCommand(Undo())
	root.AddCommand(Stats())
	root.AddCommand(Reset())

	return root
}

// session returns the store selected by the --session flag.
func session(cmd *cobra.Command) *store.Store {
	path, _ := cmd.Flags().GetString("session")
	return &store.Store{Path: path}
}
