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

package markup

import (
	"github.com/asgardeo/markupgen/internal/markup/form"
	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

// SchemaTypeSummary is the selector entry of one schema type.
type SchemaTypeSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Preview     bool   `json:"preview"`
}

// SchemaTypeListResponse lists the supported types and their categories in display order.
type SchemaTypeListResponse struct {
	DefaultType string              `json:"defaultType"`
	Categories  []schema.Category   `json:"categories"`
	Types       []SchemaTypeSummary `json:"types"`
}

// CreateSessionRequest starts an editing session from a type and optional data, or from a
// saved schema.
type CreateSessionRequest struct {
	Type          string        `json:"type,omitempty"`
	Data          *value.Record `json:"data,omitempty"`
	SavedSchemaID string        `json:"savedSchemaId,omitempty"`
}

// SessionResponse is the current form of an editing session.
type SessionResponse struct {
	ID     string           `json:"id"`
	Type   string           `json:"type"`
	Fields []form.FieldView `json:"fields"`
}

// SetFieldRequest stores a value at a leaf path.
type SetFieldRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// SaveSessionRequest names the entry persisted from a session.
type SaveSessionRequest struct {
	Name string `json:"name,omitempty"`
}

// GenerateRequest generates markup without a session.
type GenerateRequest struct {
	Type string        `json:"type,omitempty"`
	Data *value.Record `json:"data,omitempty"`
}

// SubmitResponse is the outcome of generating markup. Document, Markup and Preview are set
// only when Valid is true.
type SubmitResponse struct {
	Valid    bool              `json:"valid"`
	Type     string            `json:"type"`
	Errors   []form.FieldError `json:"errors,omitempty"`
	Document *value.Record     `json:"document,omitempty"`
	Markup   string            `json:"markup,omitempty"`
	Preview  string            `json:"preview,omitempty"`
}
