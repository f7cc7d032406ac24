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

// Package form interprets a type's field tree as an editable form state and validates it into
// a normalized value tree.
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

var (
	// ErrInvalidPath is returned when a path does not address a field of the expected kind.
	ErrInvalidPath = errors.New("invalid field path")
	// ErrInvalidIndex is returned when an array element index is out of range.
	ErrInvalidIndex = errors.New("invalid element index")
	// ErrInvalidValue is returned when a leaf is given a composite value.
	ErrInvalidValue = errors.New("invalid field value")
)

// State is the in-progress value tree of one editing session. Leaves hold value.Scalar,
// objects hold *value.Record and arrays hold []*value.Record. Every mutation returns a new
// State and leaves the receiver untouched.
type State struct {
	schema *schema.TypeSchema
	root   *value.Record
}

// Init builds the form state of a type, pre-populated from initial when given. initial may be a
// *value.Record or a map[string]any; keys the type does not describe are ignored.
func Init(ts *schema.TypeSchema, initial any) *State {
	return &State{schema: ts, root: buildRecord(ts.Fields, initial)}
}

// Schema returns the type the state was built for.
func (s *State) Schema() *schema.TypeSchema {
	return s.schema
}

// TypeName returns the name of the type the state was built for.
func (s *State) TypeName() string {
	return s.schema.Name
}

// Values returns a copy of the current value tree.
func (s *State) Values() *value.Record {
	return s.root.Clone()
}

// Get returns a copy of the value at path: a value.Scalar for leaves, a *value.Record for
// objects and a []*value.Record for arrays.
func (s *State) Get(path string) (any, error) {
	loc, err := locate(s.schema.Fields, s.root, path)
	if err != nil {
		return nil, err
	}
	v, _ := loc.parent.Get(loc.def.Name)
	switch t := v.(type) {
	case *value.Record:
		return t.Clone(), nil
	case []*value.Record:
		out := make([]*value.Record, len(t))
		for i, e := range t {
			out[i] = e.Clone()
		}
		return out, nil
	default:
		return v, nil
	}
}

// Len returns the number of elements of the array at path.
func (s *State) Len(path string) (int, error) {
	loc, err := locate(s.schema.Fields, s.root, path)
	if err != nil {
		return 0, err
	}
	if loc.def.Kind != schema.KindArray {
		return 0, fmt.Errorf("%w: %s is not an array", ErrInvalidPath, path)
	}
	return len(elements(loc.parent, loc.def.Name)), nil
}

// SetField stores v at the leaf addressed by path. Numeric leaves coerce their input; input
// that is not a number is kept as the invalid number sentinel.
func (s *State) SetField(path string, v any) (*State, error) {
	next := s.clone()
	loc, err := locate(next.schema.Fields, next.root, path)
	if err != nil {
		return nil, err
	}
	if loc.def.Kind.IsComposite() {
		return nil, fmt.Errorf("%w: %s is not a leaf field", ErrInvalidPath, path)
	}
	scalar, err := coerceLeaf(loc.def.Kind, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	loc.parent.Set(loc.def.Name, scalar)
	return next, nil
}

// AppendElement adds an empty element at the end of the array at path.
func (s *State) AppendElement(path string) (*State, error) {
	next := s.clone()
	loc, err := locate(next.schema.Fields, next.root, path)
	if err != nil {
		return nil, err
	}
	if loc.def.Kind != schema.KindArray {
		return nil, fmt.Errorf("%w: %s is not an array", ErrInvalidPath, path)
	}
	elems := append(elements(loc.parent, loc.def.Name), buildRecord(loc.def.Children, nil))
	loc.parent.Set(loc.def.Name, elems)
	return next, nil
}

// RemoveElement removes the element at index from the array at path. Later elements shift
// down by one, so their paths change.
func (s *State) RemoveElement(path string, index int) (*State, error) {
	next := s.clone()
	loc, err := locate(next.schema.Fields, next.root, path)
	if err != nil {
		return nil, err
	}
	if loc.def.Kind != schema.KindArray {
		return nil, fmt.Errorf("%w: %s is not an array", ErrInvalidPath, path)
	}
	elems := elements(loc.parent, loc.def.Name)
	if index < 0 || index >= len(elems) {
		return nil, fmt.Errorf("%w: %d is out of range for %s (length %d)", ErrInvalidIndex, index, path, len(elems))
	}
	loc.parent.Set(loc.def.Name, slices.Delete(elems, index, index+1))
	return next, nil
}

// Submit validates the state against the validator of its own type.
func (s *State) Submit() Result {
	return Submit(s, s.schema.Validator)
}

func (s *State) clone() *State {
	return &State{schema: s.schema, root: s.root.Clone()}
}

type location struct {
	def    *schema.FieldDefinition
	parent *value.Record
}

// locate walks a dotted path through the field tree and the value tree together.
func locate(fields []schema.FieldDefinition, root *value.Record, path string) (location, error) {
	if path == "" {
		return location{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(path, ".")
	defs := fields
	rec := root
	for i := 0; i < len(segments); i++ {
		def, ok := schema.FindField(defs, segments[i])
		if !ok {
			return location{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
		}
		if i == len(segments)-1 {
			return location{def: def, parent: rec}, nil
		}
		switch def.Kind {
		case schema.KindObject:
			child, _ := rec.Get(def.Name)
			childRec, ok := child.(*value.Record)
			if !ok {
				return location{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
			}
			rec = childRec
		case schema.KindArray:
			i++
			elems := elements(rec, def.Name)
			idx, err := strconv.Atoi(segments[i])
			if err != nil || strconv.Itoa(idx) != segments[i] || idx < 0 || idx >= len(elems) {
				return location{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
			}
			if i == len(segments)-1 {
				return location{}, fmt.Errorf("%w: %s addresses an element, not a field", ErrInvalidPath, path)
			}
			rec = elems[idx]
		default:
			return location{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
		}
		defs = def.Children
	}
	return location{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
}

func elements(rec *value.Record, name string) []*value.Record {
	v, _ := rec.Get(name)
	elems, _ := v.([]*value.Record)
	return elems
}

func buildRecord(defs []schema.FieldDefinition, src any) *value.Record {
	rec := value.NewRecord()
	for i := range defs {
		def := &defs[i]
		raw, present := lookupKey(src, def.Name)
		switch def.Kind {
		case schema.KindObject:
			rec.Set(def.Name, buildRecord(def.Children, raw))
		case schema.KindArray:
			elems := []*value.Record{}
			for _, item := range asSlice(raw) {
				if isObject(item) {
					elems = append(elems, buildRecord(def.Children, item))
				}
			}
			rec.Set(def.Name, elems)
		default:
			scalar := zeroLeaf(def.Kind)
			if present {
				if coerced, err := coerceLeaf(def.Kind, raw); err == nil {
					scalar = coerced
				}
			}
			rec.Set(def.Name, scalar)
		}
	}
	return rec
}

func lookupKey(src any, key string) (any, bool) {
	switch t := src.(type) {
	case *value.Record:
		return t.Get(key)
	case map[string]any:
		v, ok := t[key]
		return v, ok
	default:
		return nil, false
	}
}

func isObject(v any) bool {
	switch v.(type) {
	case *value.Record, map[string]any:
		return v != nil
	default:
		return false
	}
}

func asSlice(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []*value.Record:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}

func zeroLeaf(kind schema.Kind) value.Scalar {
	if kind == schema.KindNumber {
		return value.Unset()
	}
	return value.Text("")
}

func coerceLeaf(kind schema.Kind, v any) (value.Scalar, error) {
	numeric := kind == schema.KindNumber
	var raw string
	switch t := v.(type) {
	case nil:
		return zeroLeaf(kind), nil
	case value.Scalar:
		if t.IsUnset() {
			return zeroLeaf(kind), nil
		}
		if numeric && !t.IsNumber() && !t.IsInvalidNumber() {
			return value.ParseNumber(t.String()), nil
		}
		if !numeric {
			return value.Text(t.String()), nil
		}
		return t, nil
	case string:
		raw = t
	case json.Number:
		raw = t.String()
	case float64:
		if numeric {
			return value.ParseNumber(strconv.FormatFloat(t, 'g', -1, 64)), nil
		}
		raw = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		raw = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		raw = strconv.Itoa(t)
	case int64:
		raw = strconv.FormatInt(t, 10)
	case int32:
		raw = strconv.FormatInt(int64(t), 10)
	case bool:
		raw = strconv.FormatBool(t)
	default:
		return value.Scalar{}, ErrInvalidValue
	}
	if numeric {
		return value.ParseNumber(raw), nil
	}
	return value.Text(raw), nil
}
