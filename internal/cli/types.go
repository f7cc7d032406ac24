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
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/asgardeo/markupgen/internal/markup/schema"
)

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported schema types by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(out, schema.Categories())
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"Category", "Type", "Description"})
			for _, category := range schema.Categories() {
				for _, name := range category.Types {
					ts, _ := schema.GetSchema(name)
					tw.AppendRow(table.Row{category.Name, ts.Name, ts.Description})
				}
				tw.AppendSeparator()
			}
			tw.Render()
			return nil
		},
	}
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <type>",
		Short: "Show the field tree of a schema type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := schema.GetSchema(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(out, ts)
			}

			fmt.Fprintf(out, "%s: %s\n", ts.Name, ts.Description)
			writeFields(out, ts.Fields, "", 1)
			return nil
		},
	}
}

// writeFields prints one line per field with its path, kind and label. Array elements are shown
// with the index placeholder N.
func writeFields(out io.Writer, fields []schema.FieldDefinition, prefix string, depth int) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		marker := ""
		if f.Required {
			marker = " *"
		}
		fmt.Fprintf(out, "%s%s (%s) %s%s\n", strings.Repeat("  ", depth), path, f.Kind, f.Label, marker)
		switch f.Kind {
		case schema.KindObject:
			writeFields(out, f.Children, path, depth+1)
		case schema.KindArray:
			writeFields(out, f.Children, path+".N", depth+1)
		}
	}
}
