/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point of the markupgen command line tool.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/asgardeo/markupgen/internal/cli"
	"github.com/asgardeo/markupgen/internal/system/constants"
	"github.com/asgardeo/markupgen/internal/system/log"
)

func main() {
	// Keep informational server logs out of command output unless asked for.
	if os.Getenv(constants.LogLevelEnvironmentVariable) == "" {
		_ = os.Setenv(constants.LogLevelEnvironmentVariable, "warn")
	}

	os.Exit(run())
}

func run() int {
	logger := log.GetLogger()
	defer logger.Sync()

	if err := cli.NewRootCommand(nil).Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
