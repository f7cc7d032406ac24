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

package preview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

type PreviewTestSuite struct {
	suite.Suite
}

func TestPreviewSuite(t *testing.T) {
	suite.Run(t, new(PreviewTestSuite))
}

func (suite *PreviewTestSuite) record(data string) *value.Record {
	r := value.NewRecord()
	require.NoError(suite.T(), json.Unmarshal([]byte(data), r))
	return r
}

func (suite *PreviewTestSuite) TestEveryRegisteredTypeHasLayout() {
	for _, name := range schema.TypeNames() {
		assert.True(suite.T(), HasLayout(name), name)
	}
	assert.False(suite.T(), HasLayout("address"))
}

func (suite *PreviewTestSuite) TestLocalBusiness() {
	out, err := Render("LocalBusiness", suite.record(`{
		"name": "Cafe Blue",
		"address": {"streetAddress": "1 Main St", "addressLocality": "Springfield"},
		"openingHours": [{"dayOfWeek": "Monday", "opens": "09:00", "closes": "17:00"}]
	}`))
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), out, "<h2>Search Result Preview</h2>")
	assert.Contains(suite.T(), out, "<h3>Cafe Blue</h3>")
	assert.Contains(suite.T(), out, "<p>1 Main St, Springfield</p>")
	assert.Contains(suite.T(), out, "<li>Monday: 09:00 - 17:00</li>")
}

func (suite *PreviewTestSuite) TestMissingFieldsAreOmitted() {
	out, err := Render("LocalBusiness", suite.record(`{"name": "Cafe Blue"}`))
	require.NoError(suite.T(), err)

	assert.NotContains(suite.T(), out, "Hours:")
	assert.NotContains(suite.T(), out, "<no value>")
	assert.NotContains(suite.T(), out, "<nil>")

	out, err = Render("Product", value.NewRecord())
	require.NoError(suite.T(), err)
	assert.NotContains(suite.T(), out, "Rating:")
	assert.NotContains(suite.T(), out, "class=\"price\"")
}

func (suite *PreviewTestSuite) TestProductWithRating() {
	out, err := Render("Product", suite.record(`{
		"name": "Widget",
		"offers": {"price": 19.99, "priceCurrency": "USD"},
		"aggregateRating": {"ratingValue": 4.5, "reviewCount": 12}
	}`))
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), out, "<p class=\"price\">19.99 USD</p>")
	assert.Contains(suite.T(), out, "<p>Rating: 4.5/5 (12 reviews)</p>")
}

func (suite *PreviewTestSuite) TestFAQAndMovieLists() {
	out, err := Render("FAQPage", suite.record(`{"mainEntity": [
		{"question": "Q1", "answer": "A1"}, {"question": "Q2", "answer": "A2"}]}`))
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, "<h4>Q1</h4><p>A1</p>")
	assert.Contains(suite.T(), out, "<h4>Q2</h4><p>A2</p>")

	out, err = Render("Movie", suite.record(`{"name": "Film", "actor": [{"name": "Ann"}, {"name": "Bo"}]}`))
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, "<p>Starring Ann, Bo</p>")
}

func (suite *PreviewTestSuite) TestEscapesContent() {
	out, err := Render("WebSite", suite.record(`{"name": "<script>alert(1)</script>"}`))
	require.NoError(suite.T(), err)

	assert.NotContains(suite.T(), out, "<script>")
	assert.Contains(suite.T(), out, "&lt;script&gt;")
}

func (suite *PreviewTestSuite) TestUnknownType() {
	out, err := Render("Spaceship", value.NewRecord())
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, "<p>Preview not available for this schema type.</p>")

	out, err = Render("address", value.NewRecord())
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, NotAvailableMessage)
}
