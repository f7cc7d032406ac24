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

package savedschema

import (
	"time"

	"github.com/asgardeo/markupgen/internal/markup/value"
)

// SavedSchema is a named, validated data tree of a schema type.
type SavedSchema struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Data      *value.Record `json:"data"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SavedSchemaBasic is the list view of a saved schema.
type SavedSchemaBasic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveSchemaRequest is the request to persist a data tree.
type SaveSchemaRequest struct {
	Name string        `json:"name,omitempty"`
	Type string        `json:"type"`
	Data *value.Record `json:"data"`
}

// Link represents a pagination link.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// SavedSchemaListResponse is a page of saved schemas in insertion order.
type SavedSchemaListResponse struct {
	TotalResults int                `json:"totalResults"`
	StartIndex   int                `json:"startIndex"`
	Count        int                `json:"count"`
	Schemas      []SavedSchemaBasic `json:"schemas"`
	Links        []Link             `json:"links"`
}
