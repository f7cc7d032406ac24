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

// Package preview renders a fixed HTML layout of a generated document for each supported type.
package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/asgardeo/markupgen/internal/markup/value"
)

// NotAvailableMessage is shown for types without a layout.
const NotAvailableMessage = "Preview not available for this schema type."

const (
	frameOpen  = "<div class=\"schema-preview\">\n<h2>Search Result Preview</h2>\n"
	frameClose = "\n</div>"
)

var layoutSet = template.Must(template.New("preview").Parse(layouts))

// Render returns the preview of the data fields of a document. Fields absent from data are left
// out of the layout.
func Render(typeName string, data *value.Record) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(frameOpen)

	if typeName == "address" || layoutSet.Lookup(typeName) == nil {
		buf.WriteString("<p>" + NotAvailableMessage + "</p>")
	} else if err := layoutSet.ExecuteTemplate(&buf, typeName, data.Plain()); err != nil {
		return "", fmt.Errorf("failed to render preview for %s: %w", typeName, err)
	}

	buf.WriteString(frameClose)
	return buf.String(), nil
}

// HasLayout reports whether a dedicated layout exists for the type.
func HasLayout(typeName string) bool {
	return typeName != "address" && layoutSet.Lookup(typeName) != nil
}
