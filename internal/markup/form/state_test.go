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
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

type StateTestSuite struct {
	suite.Suite
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (suite *StateTestSuite) mustSchema(name string) *schema.TypeSchema {
	ts, err := schema.GetSchema(name)
	require.NoError(suite.T(), err)
	return ts
}

func (suite *StateTestSuite) mustGet(s *State, path string) any {
	v, err := s.Get(path)
	require.NoError(suite.T(), err)
	return v
}

func (suite *StateTestSuite) TestInitDefaults() {
	s := Init(suite.mustSchema("Product"), nil)

	assert.Equal(suite.T(), "Product", s.TypeName())
	assert.Equal(suite.T(), value.Text(""), suite.mustGet(s, "name"))
	assert.Equal(suite.T(), value.Unset(), suite.mustGet(s, "offers.price"))
	assert.Equal(suite.T(), value.Text(""), suite.mustGet(s, "brand.name"))

	s = Init(suite.mustSchema("Recipe"), nil)
	n, err := s.Len("ingredients")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, n)
}

func (suite *StateTestSuite) TestInitPrepopulatesAndIgnoresUnknownKeys() {
	initial := map[string]any{
		"name":    "Cafe Blue",
		"unknown": "ignored",
		"address": map[string]any{"streetAddress": "1 Main St", "planet": "Earth"},
		"openingHours": []any{
			map[string]any{"dayOfWeek": "Monday", "opens": "09:00", "closes": "17:00"},
			"not an element",
		},
	}
	s := Init(suite.mustSchema("LocalBusiness"), initial)

	assert.Equal(suite.T(), value.Text("Cafe Blue"), suite.mustGet(s, "name"))
	assert.Equal(suite.T(), value.Text("1 Main St"), suite.mustGet(s, "address.streetAddress"))
	assert.Equal(suite.T(), value.Text(""), suite.mustGet(s, "address.addressLocality"))
	assert.Equal(suite.T(), value.Text("Monday"), suite.mustGet(s, "openingHours.0.dayOfWeek"))

	n, err := s.Len("openingHours")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, n)

	values := s.Values()
	_, present := values.Get("unknown")
	assert.False(suite.T(), present)
	assert.Equal(suite.T(), []string{"name", "address", "telephone", "openingHours"}, values.Keys())
}

func (suite *StateTestSuite) TestInitCoercesNumbers() {
	initial := value.NewRecord()
	require.NoError(suite.T(), json.Unmarshal(
		[]byte(`{"offers":{"price":"12.50"},"aggregateRating":{"ratingValue":4,"reviewCount":"many"}}`), initial))

	s := Init(suite.mustSchema("Product"), initial)

	assert.Equal(suite.T(), value.Number(12.5), suite.mustGet(s, "offers.price"))
	assert.Equal(suite.T(), value.Number(4), suite.mustGet(s, "aggregateRating.ratingValue"))
	assert.Equal(suite.T(), value.InvalidNumber("many"), suite.mustGet(s, "aggregateRating.reviewCount"))
}

func (suite *StateTestSuite) TestSetFieldCoercion() {
	s := Init(suite.mustSchema("Product"), nil)

	testCases := []struct {
		name  string
		path  string
		input any
		want  value.Scalar
	}{
		{"NumericString", "offers.price", "19.99", value.Number(19.99)},
		{"Float", "offers.price", 5.0, value.Number(5)},
		{"Int", "aggregateRating.reviewCount", 12, value.Number(12)},
		{"JSONNumber", "offers.price", json.Number("7"), value.Number(7)},
		{"NonNumeric", "offers.price", "cheap", value.InvalidNumber("cheap")},
		{"EmptyUnsets", "offers.price", "", value.Unset()},
		{"NilUnsets", "offers.price", nil, value.Unset()},
		{"Text", "name", "Widget", value.Text("Widget")},
		{"NumberIntoText", "offers.priceCurrency", 42, value.Text("42")},
		{"NilIntoText", "name", nil, value.Text("")},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			next, err := s.SetField(tc.path, tc.input)
			require.NoError(t, err)
			got, err := next.Get(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func (suite *StateTestSuite) TestSetFieldDoesNotMutateReceiver() {
	s := Init(suite.mustSchema("WebSite"), nil)
	next, err := s.SetField("name", "Example")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), value.Text(""), suite.mustGet(s, "name"))
	assert.Equal(suite.T(), value.Text("Example"), suite.mustGet(next, "name"))
}

func (suite *StateTestSuite) TestSetFieldInvalidPaths() {
	s := Init(suite.mustSchema("LocalBusiness"), nil)
	s, err := s.AppendElement("openingHours")
	require.NoError(suite.T(), err)

	for _, path := range []string{
		"",
		"missing",
		"address",
		"address.missing",
		"name.first",
		"openingHours",
		"openingHours.0",
		"openingHours.1.opens",
		"openingHours.-1.opens",
		"openingHours.01.opens",
		"openingHours.x.opens",
		"openingHours.0.missing",
	} {
		_, err := s.SetField(path, "x")
		assert.ErrorIs(suite.T(), err, ErrInvalidPath, path)
	}

	_, err = s.SetField("name", map[string]any{"a": "b"})
	assert.ErrorIs(suite.T(), err, ErrInvalidValue)
}

func (suite *StateTestSuite) TestAppendAndRemoveRequireArrays() {
	s := Init(suite.mustSchema("LocalBusiness"), nil)

	_, err := s.AppendElement("name")
	assert.ErrorIs(suite.T(), err, ErrInvalidPath)
	_, err = s.AppendElement("address")
	assert.ErrorIs(suite.T(), err, ErrInvalidPath)
	_, err = s.RemoveElement("name", 0)
	assert.ErrorIs(suite.T(), err, ErrInvalidPath)
	_, err = s.Len("name")
	assert.ErrorIs(suite.T(), err, ErrInvalidPath)

	_, err = s.RemoveElement("openingHours", 0)
	assert.ErrorIs(suite.T(), err, ErrInvalidIndex)

	s, err = s.AppendElement("openingHours")
	require.NoError(suite.T(), err)
	_, err = s.RemoveElement("openingHours", 1)
	assert.ErrorIs(suite.T(), err, ErrInvalidIndex)
	_, err = s.RemoveElement("openingHours", -1)
	assert.ErrorIs(suite.T(), err, ErrInvalidIndex)
}

func (suite *StateTestSuite) TestAppendElementZeroValues() {
	s := Init(suite.mustSchema("LocalBusiness"), nil)
	s, err := s.AppendElement("openingHours")
	require.NoError(suite.T(), err)

	elem := suite.mustGet(s, "openingHours").([]*value.Record)[0]
	assert.Equal(suite.T(), []string{"dayOfWeek", "opens", "closes"}, elem.Keys())
	v, _ := elem.Get("opens")
	assert.Equal(suite.T(), value.Text(""), v)
}

func (suite *StateTestSuite) TestArrayShiftCorrectness() {
	s := Init(suite.mustSchema("LocalBusiness"), nil)
	var err error
	for i, day := range []string{"A", "B", "C"} {
		s, err = s.AppendElement("openingHours")
		require.NoError(suite.T(), err)
		s, err = s.SetField("openingHours."+strconv.Itoa(i)+".dayOfWeek", day)
		require.NoError(suite.T(), err)
	}

	s, err = s.RemoveElement("openingHours", 1)
	require.NoError(suite.T(), err)

	n, err := s.Len("openingHours")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, n)
	assert.Equal(suite.T(), value.Text("A"), suite.mustGet(s, "openingHours.0.dayOfWeek"))
	assert.Equal(suite.T(), value.Text("C"), suite.mustGet(s, "openingHours.1.dayOfWeek"))

	s, err = s.SetField("openingHours.1.opens", "08:00")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), value.Text("C"), suite.mustGet(s, "openingHours.1.dayOfWeek"))
	assert.Equal(suite.T(), value.Text("08:00"), suite.mustGet(s, "openingHours.1.opens"))
	assert.Equal(suite.T(), value.Text(""), suite.mustGet(s, "openingHours.0.opens"))
}

func (suite *StateTestSuite) TestScenarioDFAQElementRemoval() {
	s := Init(suite.mustSchema("FAQPage"), nil)
	var err error
	s, err = s.AppendElement("mainEntity")
	require.NoError(suite.T(), err)
	s, err = s.SetField("mainEntity.0.question", "first")
	require.NoError(suite.T(), err)
	s, err = s.AppendElement("mainEntity")
	require.NoError(suite.T(), err)
	s, err = s.SetField("mainEntity.1.question", "second")
	require.NoError(suite.T(), err)

	s, err = s.RemoveElement("mainEntity", 0)
	require.NoError(suite.T(), err)

	n, err := s.Len("mainEntity")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, n)
	assert.Equal(suite.T(), value.Text("second"), suite.mustGet(s, "mainEntity.0.question"))
}

func (suite *StateTestSuite) TestGetReturnsCopies() {
	s := Init(suite.mustSchema("LocalBusiness"), map[string]any{"address": map[string]any{"postalCode": "10100"}})

	addr := suite.mustGet(s, "address").(*value.Record)
	addr.Set("postalCode", value.Text("changed"))

	assert.Equal(suite.T(), value.Text("10100"), suite.mustGet(s, "address.postalCode"))
}

func (suite *StateTestSuite) TestView() {
	s := Init(suite.mustSchema("LocalBusiness"), map[string]any{"name": "Cafe"})
	s, err := s.AppendElement("openingHours")
	require.NoError(suite.T(), err)

	views := s.View()
	require.Len(suite.T(), views, 4)

	assert.Equal(suite.T(), "name", views[0].Path)
	assert.Equal(suite.T(), "Business Name", views[0].Label)
	require.NotNil(suite.T(), views[0].Value)
	assert.Equal(suite.T(), "Cafe", views[0].Value.String())

	assert.Equal(suite.T(), schema.KindObject, views[1].Kind)
	assert.Equal(suite.T(), "address.streetAddress", views[1].Children[0].Path)

	assert.Equal(suite.T(), schema.KindArray, views[3].Kind)
	require.Len(suite.T(), views[3].Elements, 1)
	assert.Equal(suite.T(), "openingHours.0.dayOfWeek", views[3].Elements[0][0].Path)
	assert.False(suite.T(), views[3].Required)
}

func (suite *StateTestSuite) TestViewFlagsInvalidNumbers() {
	s := Init(suite.mustSchema("Hotel"), nil)
	s, err := s.SetField("starRating.ratingValue", "five")
	require.NoError(suite.T(), err)

	views := s.View()
	rating := views[4].Children[0]
	assert.Equal(suite.T(), "starRating.ratingValue", rating.Path)
	assert.True(suite.T(), rating.InvalidNumber)
}
