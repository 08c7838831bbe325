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

package util

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// SPIN is the spinner.CharSets index used for all spinners.
const SPIN = 14

// Spin shows a spinner with the given suffix on w while work runs. The
// spinner is skipped when trace logging is on, since it would garble the
// log output.
func Spin(w io.Writer, suffix string, work func() error) error {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return work()
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix

	s.Start()      // Start the ~working~ spinner.
	defer s.Stop() // Stop it once the work is done.

	return work()
}
