/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envLogLevel     = "ESCPOS_LOG_LEVEL"
	envMapperConfig = "ESCPOS_MAPPER_CONFIG"
)

type config struct {
	LogLevel     slog.Level
	MapperConfig string
}

// loadConfig reads envFile into the process environment when it exists,
// then builds the config from the environment. A missing envFile is not an
// error.
func loadConfig(envFile string) (config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg := config{MapperConfig: os.Getenv(envMapperConfig)}
	if lvl := strings.TrimSpace(os.Getenv(envLogLevel)); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return config{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}
	return cfg, nil
}
