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

// Package cli implements the markupgen command line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/asgardeo/markupgen/internal/savedschema"
	"github.com/asgardeo/markupgen/internal/system/config"
	"github.com/asgardeo/markupgen/internal/system/constants"
	"github.com/asgardeo/markupgen/internal/system/database/migration"
	"github.com/asgardeo/markupgen/internal/system/database/provider"
)

// EnvPrefix is the prefix of environment variables read by the CLI.
const EnvPrefix = "MARKUPGEN"

// SavedSchemaServiceFactory opens the saved schema store of the server home.
type SavedSchemaServiceFactory func(home string) (savedschema.SavedSchemaServiceInterface, error)

type app struct {
	v            *viper.Viper
	savedSchemas SavedSchemaServiceFactory
}

// NewRootCommand builds the markupgen command tree. A nil factory opens the configured database.
func NewRootCommand(savedSchemas SavedSchemaServiceFactory) *cobra.Command {
	if savedSchemas == nil {
		savedSchemas = openSavedSchemaService
	}
	a := &app{v: viper.New(), savedSchemas: savedSchemas}

	root := &cobra.Command{
		Use:           "markupgen",
		Short:         "Generate schema.org JSON-LD markup",
		Long:          "markupgen validates structured data against schema.org type definitions and generates JSON-LD markup.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("home", ".", "server home holding repository/conf/deployment.yaml")
	root.PersistentFlags().Bool("json", false, "output JSON")
	_ = a.v.BindPFlag("home", root.PersistentFlags().Lookup("home"))
	_ = a.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(a.typesCmd())
	root.AddCommand(a.fieldsCmd())
	root.AddCommand(a.generateCmd())
	root.AddCommand(a.savedCmd())
	return root
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("json")
}

func (a *app) openSavedSchemas() (savedschema.SavedSchemaServiceInterface, error) {
	home, err := filepath.Abs(a.v.GetString("home"))
	if err != nil {
		return nil, err
	}
	return a.savedSchemas(home)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// openSavedSchemaService loads the deployment configuration of home and opens its database.
func openSavedSchemaService(home string) (savedschema.SavedSchemaServiceInterface, error) {
	cfg, err := config.LoadConfig(filepath.Join(home, constants.DeploymentConfigRelativePath))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = config.DefaultConfig()
	}
	if err := config.InitializeServerRuntime(home, cfg); err != nil {
		return nil, err
	}

	dbProvider := provider.GetDBProvider()
	dbClient, err := dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open the markup database: %w", err)
	}
	if err := migration.Migrate(dbClient); err != nil {
		return nil, err
	}
	return savedschema.NewService(dbProvider), nil
}
