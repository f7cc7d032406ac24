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

package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type scalarKind int

const (
	kindUnset scalarKind = iota
	kindText
	kindNumber
	kindInvalidNumber
)

// Scalar is a single leaf cell of a form. A numeric leaf that received non numeric input holds
// the invalid number sentinel so that validation can report it instead of reading zero.
type Scalar struct {
	kind scalarKind
	text string
	num  float64
}

// Text returns a text scalar.
func Text(s string) Scalar {
	return Scalar{kind: kindText, text: s}
}

// Number returns a numeric scalar.
func Number(f float64) Scalar {
	return Scalar{kind: kindNumber, num: f}
}

// Unset returns the empty scalar.
func Unset() Scalar {
	return Scalar{}
}

// InvalidNumber returns the sentinel for non numeric input given to a numeric leaf.
func InvalidNumber(raw string) Scalar {
	return Scalar{kind: kindInvalidNumber, text: raw}
}

// ParseNumber coerces user input for a numeric leaf.
func ParseNumber(raw string) Scalar {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unset()
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return InvalidNumber(raw)
	}
	return Number(f)
}

// IsUnset reports whether the scalar holds no value.
func (s Scalar) IsUnset() bool {
	return s.kind == kindUnset
}

// IsNumber reports whether the scalar holds a valid number.
func (s Scalar) IsNumber() bool {
	return s.kind == kindNumber
}

// IsInvalidNumber reports whether the scalar holds the invalid number sentinel.
func (s Scalar) IsInvalidNumber() bool {
	return s.kind == kindInvalidNumber
}

// IsEmpty reports whether the scalar is unset or blank text.
func (s Scalar) IsEmpty() bool {
	switch s.kind {
	case kindUnset:
		return true
	case kindText:
		return strings.TrimSpace(s.text) == ""
	default:
		return false
	}
}

// Float returns the numeric value.
func (s Scalar) Float() (float64, bool) {
	if s.kind != kindNumber {
		return 0, false
	}
	return s.num, true
}

// String returns the textual form of the scalar. The invalid number sentinel yields the
// raw input.
func (s Scalar) String() string {
	switch s.kind {
	case kindText, kindInvalidNumber:
		return s.text
	case kindNumber:
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Native returns the scalar as a plain Go value: string, float64 or nil.
func (s Scalar) Native() any {
	switch s.kind {
	case kindText, kindInvalidNumber:
		return s.text
	case kindNumber:
		return s.num
	default:
		return nil
	}
}

// MarshalJSON encodes the scalar through its native value.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Native())
}

// UnmarshalJSON decodes a string as text, a number as a number and null as unset. The invalid
// number sentinel is not recoverable from its encoding and decodes as text.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = Unset()
	case string:
		*s = Text(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return err
		}
		*s = Number(f)
	default:
		return fmt.Errorf("cannot decode %s into a scalar", string(data))
	}
	return nil
}
