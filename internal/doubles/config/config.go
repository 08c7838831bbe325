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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/doubles/pkg/schedule"
)

// Load reads the generation config at the given path. Fields missing from
// the file, or the whole file, fall back to the defaults.
func Load(path string) (schedule.Config, error) {
	config := schedule.DefaultConfig()

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Tracef("config: %s not found, using defaults", path)
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, nil
}
