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
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/markupgen/internal/markup/value"
	"github.com/asgardeo/markupgen/internal/system/database/client"
	dbmodel "github.com/asgardeo/markupgen/internal/system/database/model"
	"github.com/asgardeo/markupgen/tests/mocks/databasemock"
)

type SavedSchemaStoreTestSuite struct {
	suite.Suite
	mockDB     *sql.DB
	mock       sqlmock.Sqlmock
	dbProvider *databasemock.DBProviderInterfaceMock
	store      savedSchemaStoreInterface
}

func TestSavedSchemaStoreSuite(t *testing.T) {
	suite.Run(t, new(SavedSchemaStoreTestSuite))
}

func (suite *SavedSchemaStoreTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.dbProvider = &databasemock.DBProviderInterfaceMock{}
	suite.dbProvider.On("GetDBClient", "markup").
		Return(client.NewDBClient(dbmodel.NewDB(suite.mockDB), dbmodel.DBTypeSQLite), nil)
	suite.store = newSavedSchemaStore(suite.dbProvider)
}

func (suite *SavedSchemaStoreTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	_ = suite.mockDB.Close()
}

func (suite *SavedSchemaStoreTestSuite) TestGetSavedSchemaListCount() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetSavedSchemaListCount.Query)).
		WillReturnRows(sqlmock.NewRows([]string{"TOTAL"}).AddRow(int64(4)))

	count, err := suite.store.GetSavedSchemaListCount()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, count)
}

func (suite *SavedSchemaStoreTestSuite) TestGetSavedSchemaList() {
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetSavedSchemaList.Query)).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_ID", "NAME", "TYPE", "CREATED_AT"}).
			AddRow("id-1", "Cafe", "LocalBusiness", created.Format(time.RFC3339Nano)).
			AddRow([]byte("id-2"), []byte("Soup"), "Recipe", created))

	schemas, err := suite.store.GetSavedSchemaList(10, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []SavedSchemaBasic{
		{ID: "id-1", Name: "Cafe", Type: "LocalBusiness", CreatedAt: created},
		{ID: "id-2", Name: "Soup", Type: "Recipe", CreatedAt: created},
	}, schemas)
}

func (suite *SavedSchemaStoreTestSuite) TestGetSavedSchemaListBadRow() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetSavedSchemaList.Query)).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_ID", "NAME", "TYPE", "CREATED_AT"}).
			AddRow("id-1", "Cafe", "LocalBusiness", "yesterday"))

	_, err := suite.store.GetSavedSchemaList(10, 0)

	assert.ErrorContains(suite.T(), err, "failed to parse created_at")
}

func (suite *SavedSchemaStoreTestSuite) TestCreateSavedSchema() {
	data := value.NewRecord()
	data.Set("name", "Cafe")
	data.Set("telephone", "555")
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	suite.mock.ExpectExec(regexp.QuoteMeta(QueryCreateSavedSchema.Query)).
		WithArgs("id-1", "Cafe entry", "LocalBusiness", `{"name":"Cafe","telephone":"555"}`,
			"2025-02-03T04:05:06Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := suite.store.CreateSavedSchema(SavedSchema{
		ID: "id-1", Name: "Cafe entry", Type: "LocalBusiness", Data: data, CreatedAt: created,
	})

	assert.NoError(suite.T(), err)
}

func (suite *SavedSchemaStoreTestSuite) TestCreateSavedSchemaFailure() {
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryCreateSavedSchema.Query)).
		WillReturnError(errors.New("constraint failed"))

	err := suite.store.CreateSavedSchema(SavedSchema{ID: "id-1", Data: value.NewRecord()})

	assert.ErrorContains(suite.T(), err, "constraint failed")
}

func (suite *SavedSchemaStoreTestSuite) TestGetSavedSchema() {
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetSavedSchemaByID.Query)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_ID", "NAME", "TYPE", "DATA", "CREATED_AT"}).
			AddRow("id-1", "Cafe", "LocalBusiness", `{"telephone":"555","name":"Cafe"}`,
				created.Format(time.RFC3339Nano)))

	saved, err := suite.store.GetSavedSchema("id-1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "id-1", saved.ID)
	assert.Equal(suite.T(), created, saved.CreatedAt)
	assert.Equal(suite.T(), []string{"telephone", "name"}, saved.Data.Keys())
	encoded, err := json.Marshal(saved.Data)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), `{"telephone":"555","name":"Cafe"}`, string(encoded))
}

func (suite *SavedSchemaStoreTestSuite) TestGetSavedSchemaNotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetSavedSchemaByID.Query)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_ID", "NAME", "TYPE", "DATA", "CREATED_AT"}))

	_, err := suite.store.GetSavedSchema("missing")

	assert.ErrorIs(suite.T(), err, ErrSavedSchemaNotFound)
}

func (suite *SavedSchemaStoreTestSuite) TestGetSavedSchemaCorruptData() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetSavedSchemaByID.Query)).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_ID", "NAME", "TYPE", "DATA", "CREATED_AT"}).
			AddRow("id-1", "Cafe", "LocalBusiness", `[1,2]`, "2025-02-03T04:05:06Z"))

	_, err := suite.store.GetSavedSchema("id-1")

	assert.ErrorContains(suite.T(), err, "failed to unmarshal saved schema data")
}

func (suite *SavedSchemaStoreTestSuite) TestDeleteSavedSchema() {
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryDeleteSavedSchema.Query)).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(suite.T(), suite.store.DeleteSavedSchema("id-1"))
}

func (suite *SavedSchemaStoreTestSuite) TestClientUnavailable() {
	dbProvider := &databasemock.DBProviderInterfaceMock{}
	dbProvider.On("GetDBClient", "markup").Return(nil, errors.New("unable to open"))
	store := newSavedSchemaStore(dbProvider)

	_, err := store.GetSavedSchemaListCount()
	assert.ErrorContains(suite.T(), err, "failed to get database client")
	_, err = store.GetSavedSchema("id-1")
	assert.ErrorContains(suite.T(), err, "failed to get database client")
	assert.ErrorContains(suite.T(), store.DeleteSavedSchema("id-1"), "failed to get database client")
}
