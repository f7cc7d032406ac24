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

package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/asgardeo/markupgen/internal/markup/document"
	serverconst "github.com/asgardeo/markupgen/internal/system/constants"
)

func (a *app) savedCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "saved", Short: "Manage saved schemas"}
	cmd.AddCommand(a.savedListCmd())
	cmd.AddCommand(a.savedShowCmd())
	cmd.AddCommand(a.savedDeleteCmd())
	return cmd
}

func (a *app) savedListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved schemas in the order they were saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.openSavedSchemas()
			if err != nil {
				return err
			}
			list, svcErr := service.GetSavedSchemaList(limit, offset)
			if svcErr != nil {
				return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(out, list)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"ID", "Name", "Type", "Created"})
			for _, s := range list.Schemas {
				tw.AppendRow(table.Row{s.ID, s.Name, s.Type, s.CreatedAt.Local().Format("2006-01-02 15:04:05")})
			}
			tw.AppendFooter(table.Row{"", "", "Total", list.TotalResults})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", serverconst.DefaultPageSize, "maximum number of entries")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of entries to skip")
	return cmd
}

func (a *app) savedShowCmd() *cobra.Command {
	var script bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the document of a saved schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.openSavedSchemas()
			if err != nil {
				return err
			}
			saved, svcErr := service.GetSavedSchema(args[0])
			if svcErr != nil {
				return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(out, saved)
			}
			rendered, err := renderDocument(document.Assemble(saved.Type, saved.Data), script)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
	cmd.Flags().BoolVar(&script, "script", false, "wrap the document in a JSON-LD script element")
	return cmd
}

func (a *app) savedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.openSavedSchemas()
			if err != nil {
				return err
			}
			if svcErr := service.DeleteSavedSchema(args[0]); svcErr != nil {
				return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
