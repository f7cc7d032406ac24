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

package form

import (
	"strconv"

	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

// FieldView describes one field of the current state for rendering an input.
type FieldView struct {
	Name          string        `json:"name"`
	Path          string        `json:"path"`
	Label         string        `json:"label"`
	Kind          schema.Kind   `json:"kind"`
	Required      bool          `json:"required"`
	Value         *value.Scalar `json:"value,omitempty"`
	InvalidNumber bool          `json:"invalidNumber,omitempty"`
	Children      []FieldView   `json:"children,omitempty"`
	Elements      [][]FieldView `json:"elements,omitempty"`
}

// View returns the field tree of the state with the current values and computed paths.
func (s *State) View() []FieldView {
	return viewRecord(s.schema.Fields, s.root, "")
}

func viewRecord(defs []schema.FieldDefinition, rec *value.Record, prefix string) []FieldView {
	views := make([]FieldView, 0, len(defs))
	for _, def := range defs {
		path := def.Name
		if prefix != "" {
			path = prefix + "." + def.Name
		}
		fv := FieldView{
			Name:     def.Name,
			Path:     path,
			Label:    def.Label,
			Kind:     def.Kind,
			Required: def.Required,
		}
		raw, _ := rec.Get(def.Name)
		switch def.Kind {
		case schema.KindObject:
			child, _ := raw.(*value.Record)
			fv.Children = viewRecord(def.Children, child, path)
		case schema.KindArray:
			elems, _ := raw.([]*value.Record)
			fv.Elements = make([][]FieldView, 0, len(elems))
			for i, e := range elems {
				fv.Elements = append(fv.Elements, viewRecord(def.Children, e, path+"."+strconv.Itoa(i)))
			}
		default:
			scalar, _ := raw.(value.Scalar)
			fv.Value = &scalar
			fv.InvalidNumber = scalar.IsInvalidNumber()
		}
		views = append(views, fv)
	}
	return views
}
