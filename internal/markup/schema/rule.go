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

import "sort"

// RuleKind is the shape of a validation rule node.
type RuleKind int

const (
	// RuleLeaf checks a single scalar.
	RuleLeaf RuleKind = iota
	// RuleObject checks the children of an object.
	RuleObject
	// RuleArray checks the length of a sequence and every element in it.
	RuleArray
)

// Rule is one node of a validator tree. It mirrors the field definition with the same name.
// An optional rule is skipped when its value is empty.
type Rule struct {
	Name            string
	Kind            RuleKind
	Optional        bool
	Constraints     []Constraint
	Children        []*Rule
	MinItems        int
	MinItemsMessage string
}

// Validator is the ordered set of top level rules of a type.
type Validator struct {
	Rules []*Rule
}

// LeafPaths returns the sorted leaf paths the validator inspects. Array elements appear as "*".
func (v *Validator) LeafPaths() []string {
	paths := []string{}
	var walk func(prefix string, rules []*Rule)
	walk = func(prefix string, rules []*Rule) {
		for _, r := range rules {
			path := joinPath(prefix, r.Name)
			switch r.Kind {
			case RuleObject:
				walk(path, r.Children)
			case RuleArray:
				walk(path+".*", r.Children)
			default:
				paths = append(paths, path)
			}
		}
	}
	walk("", v.Rules)
	sort.Strings(paths)
	return paths
}

func rules(r ...*Rule) *Validator {
	return &Validator{Rules: r}
}

func leaf(name string, constraints ...Constraint) *Rule {
	return &Rule{Name: name, Kind: RuleLeaf, Constraints: constraints}
}

// required text: non blank.
func nonEmpty(name, message string) *Rule {
	return leaf(name, NonEmpty(message))
}

func numeric(name string, constraints ...Constraint) *Rule {
	return leaf(name, append([]Constraint{Numeric()}, constraints...)...)
}

func object(name string, children ...*Rule) *Rule {
	return &Rule{Name: name, Kind: RuleObject, Children: children}
}

func array(name string, minItems int, message string, children ...*Rule) *Rule {
	return &Rule{Name: name, Kind: RuleArray, MinItems: minItems, MinItemsMessage: message, Children: children}
}

func optional(r *Rule) *Rule {
	r.Optional = true
	return r
}
