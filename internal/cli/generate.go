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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/asgardeo/markupgen/internal/markup/document"
	"github.com/asgardeo/markupgen/internal/markup/form"
	"github.com/asgardeo/markupgen/internal/markup/preview"
	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
	"github.com/asgardeo/markupgen/internal/notification"
	"github.com/asgardeo/markupgen/internal/savedschema"
)

type generateOptions struct {
	values  string
	script  bool
	preview bool
	save    bool
	name    string
}

func (a *app) generateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate <type>",
		Short: "Validate values for a schema type and print the JSON-LD document",
		Long: "Reads a JSON object of field values, validates it against the type and prints the generated " +
			"document. Values may also be a previously generated document. Use - to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.save = cmd.Flags().Changed("save")
			return a.runGenerate(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.values, "values", "", "JSON file with the field values (- for stdin)")
	cmd.Flags().BoolVar(&opts.script, "script", false, "wrap the document in a JSON-LD script element")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "also print the HTML preview")
	cmd.Flags().StringVar(&opts.name, "save", "", "save the validated values under this name (\"\" for a generated name)")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, typeName string, opts generateOptions) error {
	ts, err := schema.GetSchema(typeName)
	if err != nil {
		return err
	}
	values, err := readValues(cmd.InOrStdin(), opts.values)
	if err != nil {
		return err
	}

	result := form.Init(ts, values).Submit()
	if !result.OK() {
		writeFieldErrors(cmd.ErrOrStderr(), result.Errors)
		return fmt.Errorf("%s: %d field(s) failed validation", notification.MessageFixErrors, len(result.Errors))
	}

	out := cmd.OutOrStdout()
	doc := document.Assemble(ts.Name, result.Value)
	if a.jsonOutput() {
		if err := printJSON(out, doc); err != nil {
			return err
		}
	} else {
		rendered, err := renderDocument(doc, opts.script)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
	}

	if opts.preview {
		html, err := preview.Render(ts.Name, result.Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, html)
	}

	if opts.save {
		service, err := a.openSavedSchemas()
		if err != nil {
			return err
		}
		saved, svcErr := service.SaveSchema(savedschema.SaveSchemaRequest{
			Name: opts.name,
			Type: ts.Name,
			Data: result.Value,
		})
		if svcErr != nil {
			return fmt.Errorf("%s: %s", notification.MessageSaveFailed, svcErr.ErrorDescription)
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "%s %s (%s)\n",
			notification.MessageSaved, saved.Name, saved.ID)
	}
	return nil
}

// readValues decodes the field values from a file, from stdin for "-", or returns an empty
// record when no source is given. A generated document is accepted as well.
func readValues(stdin io.Reader, source string) (*value.Record, error) {
	if source == "" {
		return value.NewRecord(), nil
	}

	var data []byte
	var err error
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}

	values := value.NewRecord()
	if err := json.Unmarshal(data, values); err != nil {
		return nil, fmt.Errorf("failed to decode values: %w", err)
	}
	if _, fields, err := document.Split(values); err == nil {
		return fields, nil
	}
	return values, nil
}

func renderDocument(doc *value.Record, script bool) (string, error) {
	if script {
		return document.ScriptTag(doc)
	}
	return document.Marshal(doc)
}

func writeFieldErrors(w io.Writer, fieldErrors []form.FieldError) {
	red := color.New(color.FgRed)
	for _, fe := range fieldErrors {
		red.Fprintf(w, "  x %s: %s\n", fe.Path, fe.Message)
	}
}
