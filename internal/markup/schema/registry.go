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

package schema

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultTypeName is the type callers fall back to when a requested type is unknown.
const DefaultTypeName = "LocalBusiness"

// ErrUnknownType is returned when a type name is not registered.
var ErrUnknownType = errors.New("unknown schema type")

// TypeSchema is the complete definition of one structured data type.
type TypeSchema struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Fields      []FieldDefinition `json:"fields"`
	Validator   *Validator        `json:"-"`
}

// Category groups related type names for selection.
type Category struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

const (
	categoryBusiness = "Business & Organizations"
	categoryCommerce = "Products & Commerce"
	categoryCreative = "Creative Works"
	categoryFood     = "Food & Recipes"
	categoryEvents   = "Events & Activities"
	categoryPeople   = "People"
	categoryWeb      = "Web Content"
)

var categoryOrder = []string{
	categoryBusiness, categoryCommerce, categoryCreative, categoryFood,
	categoryEvents, categoryPeople, categoryWeb,
}

type registry struct {
	names   []string
	schemas map[string]*TypeSchema
}

var defaultRegistry = newRegistry(
	localBusinessSchema(),
	restaurantSchema(),
	hotelSchema(),
	productSchema(),
	reviewSchema(),
	articleSchema(),
	blogPostingSchema(),
	newsArticleSchema(),
	recipeSchema(),
	movieSchema(),
	bookSchema(),
	eventSchema(),
	jobPostingSchema(),
	personSchema(),
	organizationSchema(),
	faqPageSchema(),
	webSiteSchema(),
)

func newRegistry(schemas ...*TypeSchema) *registry {
	r := &registry{schemas: make(map[string]*TypeSchema, len(schemas))}
	for _, ts := range schemas {
		if _, exists := r.schemas[ts.Name]; exists {
			panic(fmt.Sprintf("schema type %s registered twice", ts.Name))
		}
		if err := CheckCoverage(ts); err != nil {
			panic(err)
		}
		r.names = append(r.names, ts.Name)
		r.schemas[ts.Name] = ts
	}
	return r
}

// GetSchema returns the registered type with the given name.
func GetSchema(name string) (*TypeSchema, error) {
	ts, ok := defaultRegistry.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return ts, nil
}

// TypeNames returns the registered type names in registration order.
func TypeNames() []string {
	return slices.Clone(defaultRegistry.names)
}

// Categories returns the type categories in display order.
func Categories() []Category {
	categories := make([]Category, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		c := Category{Name: name, Types: []string{}}
		for _, typeName := range defaultRegistry.names {
			if defaultRegistry.schemas[typeName].Category == name {
				c.Types = append(c.Types, typeName)
			}
		}
		categories = append(categories, c)
	}
	return categories
}

// CheckCoverage verifies that the field tree and the validator of a type describe exactly the
// same leaf paths.
func CheckCoverage(ts *TypeSchema) error {
	if ts.Validator == nil {
		return fmt.Errorf("schema type %s has no validator", ts.Name)
	}
	fieldPaths := LeafPaths(ts.Fields)
	rulePaths := ts.Validator.LeafPaths()
	for _, p := range fieldPaths {
		if _, found := slices.BinarySearch(rulePaths, p); !found {
			return fmt.Errorf("schema type %s: field %s is not validated", ts.Name, p)
		}
	}
	for _, p := range rulePaths {
		if _, found := slices.BinarySearch(fieldPaths, p); !found {
			return fmt.Errorf("schema type %s: validated path %s has no field", ts.Name, p)
		}
	}
	return nil
}
