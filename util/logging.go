// Copyright © 2025 Attestant Limited.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package util provides helpers to configure services from the
// application's configuration.
package util

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// LogLevel returns the best log level for the path.
func LogLevel(path string) zerolog.Level {
	if path == "" {
		if viper.GetString("log-level") == "" {
			return zerologger.Logger.GetLevel()
		}
		return logLevel(viper.GetString("log-level"))
	}

	key := fmt.Sprintf("%s.log-level", strings.Trim(path, "."))
	if viper.GetString(key) != "" {
		return logLevel(viper.GetString(key))
	}
	// Lop off the child and try again.
	lastPeriod := strings.LastIndex(path, ".")
	if lastPeriod == -1 {
		return LogLevel("")
	}
	return LogLevel(path[0:lastPeriod])
}

// logLevel parses a log level string, returning the logger's current
// level if the string is not recognized.
func logLevel(input string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(input))
	if err != nil {
		return zerologger.Logger.GetLevel()
	}
	return level
}
