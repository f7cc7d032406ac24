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

// Package databasemock provides testify mocks of the database interfaces.
package databasemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/markupgen/internal/system/database/model"
)

// DBClientInterfaceMock is a mock implementation of client.DBClientInterface.
type DBClientInterfaceMock struct {
	mock.Mock
}

// Query mocks the Query method.
func (m *DBClientInterfaceMock) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	ret := m.Called(append([]interface{}{query}, args...)...)
	var rows []map[string]interface{}
	if v := ret.Get(0); v != nil {
		rows = v.([]map[string]interface{})
	}
	return rows, ret.Error(1)
}

// Execute mocks the Execute method.
func (m *DBClientInterfaceMock) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	ret := m.Called(append([]interface{}{query}, args...)...)
	return ret.Get(0).(int64), ret.Error(1)
}

// ExecuteInTx mocks the ExecuteInTx method.
func (m *DBClientInterfaceMock) ExecuteInTx(queries ...model.DBQuery) error {
	args := make([]interface{}, len(queries))
	for i, q := range queries {
		args[i] = q
	}
	return m.Called(args...).Error(0)
}

// Ping mocks the Ping method.
func (m *DBClientInterfaceMock) Ping() error {
	return m.Called().Error(0)
}

// GetDBType mocks the GetDBType method.
func (m *DBClientInterfaceMock) GetDBType() string {
	return m.Called().String(0)
}

// Close mocks the Close method.
func (m *DBClientInterfaceMock) Close() error {
	return m.Called().Error(0)
}
