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

// Package schema holds the declarative field trees and validation rules of the supported
// structured data types.
package schema

import "sort"

// Kind is the input kind of a field definition.
type Kind string

const (
	// KindShortText is a single line of text.
	KindShortText Kind = "short-text"
	// KindLongText is free form multi line text.
	KindLongText Kind = "long-text"
	// KindURL is an absolute URL.
	KindURL Kind = "url"
	// KindNumber is a numeric value.
	KindNumber Kind = "number"
	// KindDate is a calendar date.
	KindDate Kind = "date"
	// KindDateTime is a local date and time.
	KindDateTime Kind = "datetime"
	// KindObject groups child fields.
	KindObject Kind = "object"
	// KindArray is a resizable sequence of elements shaped by the child fields.
	KindArray Kind = "array"
)

// IsComposite reports whether fields of the kind carry children.
func (k Kind) IsComposite() bool {
	return k == KindObject || k == KindArray
}

// FieldDefinition is one node of a type's field tree. For arrays the children describe a
// single element. Required is informational; only the validator decides what is accepted.
type FieldDefinition struct {
	Name     string            `json:"name"`
	Kind     Kind              `json:"kind"`
	Label    string            `json:"label"`
	Required bool              `json:"required"`
	Children []FieldDefinition `json:"children,omitempty"`
}

// FindField returns the top level definition with the given name.
func FindField(fields []FieldDefinition, name string) (*FieldDefinition, bool) {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i], true
		}
	}
	return nil, false
}

// LeafPaths returns the sorted leaf paths of a field tree. Array elements appear as "*".
func LeafPaths(fields []FieldDefinition) []string {
	paths := []string{}
	var walk func(prefix string, defs []FieldDefinition)
	walk = func(prefix string, defs []FieldDefinition) {
		for _, def := range defs {
			path := joinPath(prefix, def.Name)
			switch def.Kind {
			case KindObject:
				walk(path, def.Children)
			case KindArray:
				walk(path+".*", def.Children)
			default:
				paths = append(paths, path)
			}
		}
	}
	walk("", fields)
	sort.Strings(paths)
	return paths
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func text(name, label string, required bool) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindShortText, Label: label, Required: required}
}

func longText(name, label string, required bool) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindLongText, Label: label, Required: required}
}

func link(name, label string, required bool) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindURL, Label: label, Required: required}
}

func number(name, label string, required bool) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindNumber, Label: label, Required: required}
}

func date(name, label string, required bool) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindDate, Label: label, Required: required}
}

func dateTime(name, label string, required bool) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindDateTime, Label: label, Required: required}
}

func group(name, label string, required bool, children ...FieldDefinition) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindObject, Label: label, Required: required, Children: children}
}

func list(name, label string, required bool, children ...FieldDefinition) FieldDefinition {
	return FieldDefinition{Name: name, Kind: KindArray, Label: label, Required: required, Children: children}
}
