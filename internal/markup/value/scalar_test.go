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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		number  bool
		invalid bool
		unset   bool
		want    float64
	}{
		{name: "Integer", input: "42", number: true, want: 42},
		{name: "Decimal", input: " 19.99 ", number: true, want: 19.99},
		{name: "Negative", input: "-3", number: true, want: -3},
		{name: "Empty", input: "", unset: true},
		{name: "Blank", input: "   ", unset: true},
		{name: "Text", input: "cheap", invalid: true},
		{name: "NaN", input: "NaN", invalid: true},
		{name: "Infinity", input: "Inf", invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := ParseNumber(tc.input)
			assert.Equal(t, tc.number, s.IsNumber())
			assert.Equal(t, tc.invalid, s.IsInvalidNumber())
			assert.Equal(t, tc.unset, s.IsUnset())
			if tc.number {
				f, ok := s.Float()
				assert.True(t, ok)
				assert.Equal(t, tc.want, f)
			}
			if tc.invalid {
				assert.Equal(t, tc.input, s.String())
			}
		})
	}
}

func TestScalarIsEmpty(t *testing.T) {
	assert.True(t, Unset().IsEmpty())
	assert.True(t, Text("").IsEmpty())
	assert.True(t, Text(" \t").IsEmpty())
	assert.False(t, Text("x").IsEmpty())
	assert.False(t, Number(0).IsEmpty())
	assert.False(t, InvalidNumber("abc").IsEmpty())
}

func TestScalarMarshalJSON(t *testing.T) {
	data, err := json.Marshal([]Scalar{Text("a"), Number(2.5), Unset(), InvalidNumber("x")})
	assert.NoError(t, err)
	assert.Equal(t, `["a",2.5,null,"x"]`, string(data))
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "12", Number(12).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "", Unset().String())
	assert.Equal(t, "hello", Text("hello").String())
}

func TestScalarUnmarshalJSON(t *testing.T) {
	var got struct {
		Text   Scalar  `json:"text"`
		Number Scalar  `json:"number"`
		Null   *Scalar `json:"null"`
		Unset  Scalar  `json:"unset"`
	}
	err := json.Unmarshal([]byte(`{"text":"Cafe","number":12.5,"null":null,"unset":null}`), &got)
	assert.NoError(t, err)
	assert.Equal(t, Text("Cafe"), got.Text)
	assert.Equal(t, Number(12.5), got.Number)
	assert.Nil(t, got.Null)
	assert.Equal(t, Unset(), got.Unset)

	var bad Scalar
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &bad))
}
