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

package savedschema

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/markupgen/internal/markup/value"
)

type savedSchemaStoreMock struct {
	mock.Mock
}

func (m *savedSchemaStoreMock) GetSavedSchemaListCount() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *savedSchemaStoreMock) GetSavedSchemaList(limit, offset int) ([]SavedSchemaBasic, error) {
	ret := m.Called(limit, offset)
	var schemas []SavedSchemaBasic
	if v := ret.Get(0); v != nil {
		schemas = v.([]SavedSchemaBasic)
	}
	return schemas, ret.Error(1)
}

func (m *savedSchemaStoreMock) CreateSavedSchema(savedSchema SavedSchema) error {
	return m.Called(savedSchema).Error(0)
}

func (m *savedSchemaStoreMock) GetSavedSchema(id string) (SavedSchema, error) {
	ret := m.Called(id)
	return ret.Get(0).(SavedSchema), ret.Error(1)
}

func (m *savedSchemaStoreMock) DeleteSavedSchema(id string) error {
	return m.Called(id).Error(0)
}

type SavedSchemaServiceTestSuite struct {
	suite.Suite
	store   *savedSchemaStoreMock
	service *savedSchemaService
	now     time.Time
}

func TestSavedSchemaServiceSuite(t *testing.T) {
	suite.Run(t, new(SavedSchemaServiceTestSuite))
}

func (suite *SavedSchemaServiceTestSuite) SetupTest() {
	suite.store = &savedSchemaStoreMock{}
	suite.now = time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	suite.service = &savedSchemaService{store: suite.store, now: func() time.Time { return suite.now }}
}

func websiteData(name string) *value.Record {
	data := value.NewRecord()
	data.Set("name", name)
	data.Set("url", "https://example.com")
	data.Set("description", "Example site")
	data.Set("unknown", "dropped")
	return data
}

func (suite *SavedSchemaServiceTestSuite) TestSaveSchemaPersistsNormalizedData() {
	suite.store.On("CreateSavedSchema", mock.AnythingOfType("savedschema.SavedSchema")).Return(nil)

	saved, svcErr := suite.service.SaveSchema(SaveSchemaRequest{Type: "WebSite", Data: websiteData("Example")})

	require.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), saved.ID, 36)
	assert.Equal(suite.T(), "WebSite Schema 2025-03-04 10:30:00", saved.Name)
	assert.Equal(suite.T(), "WebSite", saved.Type)
	assert.Equal(suite.T(), suite.now, saved.CreatedAt)
	assert.Equal(suite.T(), []string{"name", "url", "description"}, saved.Data.Keys())

	stored := suite.store.Calls[0].Arguments.Get(0).(SavedSchema)
	assert.Equal(suite.T(), *saved, stored)
}

func (suite *SavedSchemaServiceTestSuite) TestSaveSchemaKeepsGivenName() {
	suite.store.On("CreateSavedSchema", mock.Anything).Return(nil)

	saved, svcErr := suite.service.SaveSchema(SaveSchemaRequest{
		Name: "  My site  ", Type: "WebSite", Data: websiteData("Example"),
	})

	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "My site", saved.Name)

	longest := strings.Repeat("é", 255)
	saved, svcErr = suite.service.SaveSchema(SaveSchemaRequest{
		Name: longest, Type: "WebSite", Data: websiteData("Example"),
	})
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), longest, saved.Name)
}

func (suite *SavedSchemaServiceTestSuite) TestSaveSchemaRejections() {
	testCases := []struct {
		name     string
		request  SaveSchemaRequest
		wantCode string
	}{
		{"MissingData", SaveSchemaRequest{Type: "WebSite"}, ErrorInvalidRequestFormat.Code},
		{"UnknownType", SaveSchemaRequest{Type: "Spaceship", Data: value.NewRecord()}, ErrorUnknownSchemaType.Code},
		{"InvalidData", SaveSchemaRequest{Type: "WebSite", Data: websiteData("")}, ErrorInvalidSchemaData.Code},
		{"NameTooLong", SaveSchemaRequest{
			Name: strings.Repeat("n", 256), Type: "WebSite", Data: websiteData("Example"),
		}, ErrorNameTooLong.Code},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			saved, svcErr := suite.service.SaveSchema(tc.request)
			assert.Nil(t, saved)
			require.NotNil(t, svcErr)
			assert.Equal(t, tc.wantCode, svcErr.Code)
		})
	}
	suite.store.AssertNotCalled(suite.T(), "CreateSavedSchema", mock.Anything)
}

func (suite *SavedSchemaServiceTestSuite) TestSaveSchemaInvalidDataDescribesErrors() {
	_, svcErr := suite.service.SaveSchema(SaveSchemaRequest{Type: "WebSite", Data: websiteData("")})

	require.NotNil(suite.T(), svcErr)
	assert.Contains(suite.T(), svcErr.ErrorDescription, "name: ")
}

func (suite *SavedSchemaServiceTestSuite) TestSaveSchemaStoreFailure() {
	suite.store.On("CreateSavedSchema", mock.Anything).Return(errors.New("disk full"))

	_, svcErr := suite.service.SaveSchema(SaveSchemaRequest{Type: "WebSite", Data: websiteData("Example")})

	require.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *SavedSchemaServiceTestSuite) TestGetSavedSchemaList() {
	entries := []SavedSchemaBasic{{ID: "a"}, {ID: "b"}}
	suite.store.On("GetSavedSchemaListCount").Return(5, nil)
	suite.store.On("GetSavedSchemaList", 2, 2).Return(entries, nil)

	resp, svcErr := suite.service.GetSavedSchemaList(2, 2)

	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 5, resp.TotalResults)
	assert.Equal(suite.T(), 3, resp.StartIndex)
	assert.Equal(suite.T(), 2, resp.Count)
	assert.Equal(suite.T(), entries, resp.Schemas)
	assert.Equal(suite.T(), []Link{
		{Href: "/saved-schemas?offset=0&limit=2", Rel: "first"},
		{Href: "/saved-schemas?offset=0&limit=2", Rel: "prev"},
		{Href: "/saved-schemas?offset=4&limit=2", Rel: "next"},
		{Href: "/saved-schemas?offset=4&limit=2", Rel: "last"},
	}, resp.Links)
}

func (suite *SavedSchemaServiceTestSuite) TestGetSavedSchemaListErrors() {
	_, svcErr := suite.service.GetSavedSchemaList(0, 0)
	assert.Equal(suite.T(), ErrorInvalidLimit.Code, svcErr.Code)
	_, svcErr = suite.service.GetSavedSchemaList(10, -1)
	assert.Equal(suite.T(), ErrorInvalidOffset.Code, svcErr.Code)

	suite.store.On("GetSavedSchemaListCount").Return(0, errors.New("db down"))
	_, svcErr = suite.service.GetSavedSchemaList(10, 0)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *SavedSchemaServiceTestSuite) TestGetSavedSchema() {
	entry := SavedSchema{ID: "id-1", Type: "WebSite", Data: websiteData("Example")}
	suite.store.On("GetSavedSchema", "id-1").Return(entry, nil)
	suite.store.On("GetSavedSchema", "missing").Return(SavedSchema{}, ErrSavedSchemaNotFound)
	suite.store.On("GetSavedSchema", "broken").Return(SavedSchema{}, errors.New("db down"))

	got, svcErr := suite.service.GetSavedSchema("id-1")
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), entry, *got)

	_, svcErr = suite.service.GetSavedSchema("missing")
	assert.Equal(suite.T(), ErrorSavedSchemaNotFound.Code, svcErr.Code)
	_, svcErr = suite.service.GetSavedSchema("broken")
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
	_, svcErr = suite.service.GetSavedSchema("")
	assert.Equal(suite.T(), ErrorMissingSchemaID.Code, svcErr.Code)
}

func (suite *SavedSchemaServiceTestSuite) TestDeleteSavedSchema() {
	suite.store.On("DeleteSavedSchema", "id-1").Return(nil)
	suite.store.On("DeleteSavedSchema", "broken").Return(errors.New("db down"))

	assert.Nil(suite.T(), suite.service.DeleteSavedSchema("id-1"))
	assert.Equal(suite.T(), ErrorInternalServerError.Code, suite.service.DeleteSavedSchema("broken").Code)
	assert.Equal(suite.T(), ErrorMissingSchemaID.Code, suite.service.DeleteSavedSchema("").Code)
}

func (suite *SavedSchemaServiceTestSuite) TestBuildPaginationLinks() {
	assert.Empty(suite.T(), buildPaginationLinks("/saved-schemas", 10, 0, 0))
	assert.Empty(suite.T(), buildPaginationLinks("/saved-schemas", 10, 0, 10))
	assert.Equal(suite.T(), []Link{
		{Href: "/saved-schemas?offset=10&limit=10", Rel: "next"},
		{Href: "/saved-schemas?offset=20&limit=10", Rel: "last"},
	}, buildPaginationLinks("/saved-schemas", 10, 0, 25))
}
