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
	"fmt"
	"strconv"

	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

const msgExpectedNumber = "Expected a number"

// FieldError is a validation failure attributed to one field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of a submission: either a normalized value tree or the list of field
// errors in traversal order.
type Result struct {
	Value  *value.Record `json:"value,omitempty"`
	Errors []FieldError  `json:"errors,omitempty"`
}

// OK reports whether the submission produced no errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Submit validates the state against validator. Rules are visited in declaration order,
// depth first, and every element of every array is visited in sequence. Each leaf reports at
// most its first failing constraint, and all leaves are checked before returning. Empty
// optional values are left out of the normalized tree.
func Submit(s *State, validator *schema.Validator) Result {
	errs := []FieldError{}
	out := validateRecord(s.root, validator.Rules, "", &errs)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Value: out}
}

func validateRecord(rec *value.Record, rules []*schema.Rule, prefix string, errs *[]FieldError) *value.Record {
	out := value.NewRecord()
	for _, r := range rules {
		path := r.Name
		if prefix != "" {
			path = prefix + "." + r.Name
		}
		raw, _ := rec.Get(r.Name)
		if v, keep := validateNode(raw, r, path, errs); keep {
			out.Set(r.Name, v)
		}
	}
	return out
}

func validateNode(raw any, r *schema.Rule, path string, errs *[]FieldError) (any, bool) {
	switch r.Kind {
	case schema.RuleObject:
		child, _ := raw.(*value.Record)
		if r.Optional && isBlank(child) {
			return nil, false
		}
		return validateRecord(child, r.Children, path, errs), true
	case schema.RuleArray:
		elems, _ := raw.([]*value.Record)
		if len(elems) < r.MinItems {
			message := r.MinItemsMessage
			if message == "" {
				message = fmt.Sprintf("At least %d item(s) required", r.MinItems)
			}
			*errs = append(*errs, FieldError{Path: path, Message: message})
			return nil, false
		}
		if len(elems) == 0 && r.Optional {
			return nil, false
		}
		out := make([]*value.Record, 0, len(elems))
		for i, e := range elems {
			out = append(out, validateRecord(e, r.Children, path+"."+strconv.Itoa(i), errs))
		}
		return out, true
	default:
		s, _ := raw.(value.Scalar)
		if r.Optional && s.IsEmpty() {
			return nil, false
		}
		for _, c := range r.Constraints {
			if message, ok := c.Check(s); !ok {
				*errs = append(*errs, FieldError{Path: path, Message: message})
				return nil, false
			}
		}
		if s.IsInvalidNumber() {
			*errs = append(*errs, FieldError{Path: path, Message: msgExpectedNumber})
			return nil, false
		}
		return s.Native(), true
	}
}

// isBlank reports whether nothing under rec has been filled in.
func isBlank(rec *value.Record) bool {
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		switch t := v.(type) {
		case value.Scalar:
			if !t.IsEmpty() {
				return false
			}
		case *value.Record:
			if !isBlank(t) {
				return false
			}
		case []*value.Record:
			if len(t) > 0 {
				return false
			}
		}
	}
	return true
}
