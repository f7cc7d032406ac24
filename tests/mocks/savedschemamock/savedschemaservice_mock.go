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

// Package savedschemamock provides a testify mock of the saved schema service.
package savedschemamock

import (
	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/markupgen/internal/savedschema"
	"github.com/asgardeo/markupgen/internal/system/error/serviceerror"
)

// SavedSchemaServiceInterfaceMock is a mock implementation of savedschema.SavedSchemaServiceInterface.
type SavedSchemaServiceInterfaceMock struct {
	mock.Mock
}

// SaveSchema mocks the SaveSchema method.
func (m *SavedSchemaServiceInterfaceMock) SaveSchema(request savedschema.SaveSchemaRequest) (
	*savedschema.SavedSchema, *serviceerror.ServiceError) {
	ret := m.Called(request)
	return savedSchemaResult(ret.Get(0)), serviceErrorResult(ret.Get(1))
}

// GetSavedSchemaList mocks the GetSavedSchemaList method.
func (m *SavedSchemaServiceInterfaceMock) GetSavedSchemaList(limit, offset int) (
	*savedschema.SavedSchemaListResponse, *serviceerror.ServiceError) {
	ret := m.Called(limit, offset)
	var resp *savedschema.SavedSchemaListResponse
	if v := ret.Get(0); v != nil {
		resp = v.(*savedschema.SavedSchemaListResponse)
	}
	return resp, serviceErrorResult(ret.Get(1))
}

// GetSavedSchema mocks the GetSavedSchema method.
func (m *SavedSchemaServiceInterfaceMock) GetSavedSchema(id string) (
	*savedschema.SavedSchema, *serviceerror.ServiceError) {
	ret := m.Called(id)
	return savedSchemaResult(ret.Get(0)), serviceErrorResult(ret.Get(1))
}

// DeleteSavedSchema mocks the DeleteSavedSchema method.
func (m *SavedSchemaServiceInterfaceMock) DeleteSavedSchema(id string) *serviceerror.ServiceError {
	return serviceErrorResult(m.Called(id).Get(0))
}

func savedSchemaResult(v any) *savedschema.SavedSchema {
	if v == nil {
		return nil
	}
	return v.(*savedschema.SavedSchema)
}

func serviceErrorResult(v any) *serviceerror.ServiceError {
	if v == nil {
		return nil
	}
	return v.(*serviceerror.ServiceError)
}
