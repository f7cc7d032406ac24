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
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/asgardeo/markupgen/internal/markup/value"
)

const (
	msgRequired       = "Required"
	msgExpectedNumber = "Expected a number"
)

// Constraint is a single check applied to a leaf value.
type Constraint struct {
	Name  string
	check func(v value.Scalar) (string, bool)
}

// Check evaluates the constraint and returns the failure message when it does not hold.
func (c Constraint) Check(v value.Scalar) (string, bool) {
	return c.check(v)
}

// NonEmpty requires text that is not blank after trimming.
func NonEmpty(message string) Constraint {
	return Constraint{Name: "non-empty", check: func(v value.Scalar) (string, bool) {
		if v.IsEmpty() {
			return message, false
		}
		return "", true
	}}
}

// URL requires an absolute URL with a scheme.
func URL(message string) Constraint {
	return Constraint{Name: "url", check: func(v value.Scalar) (string, bool) {
		raw := strings.TrimSpace(v.String())
		u, err := url.Parse(raw)
		if raw == "" || err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
			return message, false
		}
		return "", true
	}}
}

// Email requires a single bare address.
func Email(message string) Constraint {
	return Constraint{Name: "email", check: func(v value.Scalar) (string, bool) {
		raw := strings.TrimSpace(v.String())
		addr, err := mail.ParseAddress(raw)
		if err != nil || addr.Address != raw {
			return message, false
		}
		return "", true
	}}
}

// Pattern requires the text to match the regular expression.
func Pattern(expr, message string) Constraint {
	re := regexp.MustCompile(expr)
	return Constraint{Name: "pattern", check: func(v value.Scalar) (string, bool) {
		if !re.MatchString(v.String()) {
			return message, false
		}
		return "", true
	}}
}

// Numeric requires a valid number. It is the first constraint of every numeric leaf and
// rejects both unset values and the invalid number sentinel.
func Numeric() Constraint {
	return Constraint{Name: "numeric", check: func(v value.Scalar) (string, bool) {
		switch {
		case v.IsNumber():
			return "", true
		case v.IsInvalidNumber():
			return msgExpectedNumber, false
		default:
			return msgRequired, false
		}
	}}
}

// Min requires a number greater than or equal to bound.
func Min(bound float64, message string) Constraint {
	return numberConstraint("min", message, func(f float64) bool { return f >= bound })
}

// Max requires a number less than or equal to bound.
func Max(bound float64, message string) Constraint {
	return numberConstraint("max", message, func(f float64) bool { return f <= bound })
}

// Positive requires a number greater than zero.
func Positive(message string) Constraint {
	return numberConstraint("positive", message, func(f float64) bool { return f > 0 })
}

// Integer requires a whole number.
func Integer(message string) Constraint {
	return numberConstraint("integer", message, func(f float64) bool { return f == math.Trunc(f) })
}

func numberConstraint(name, message string, ok func(float64) bool) Constraint {
	return Constraint{Name: name, check: func(v value.Scalar) (string, bool) {
		f, isNumber := v.Float()
		if !isNumber || !ok(f) {
			return message, false
		}
		return "", true
	}}
}
