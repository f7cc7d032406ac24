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

// Package notificationmock provides a testify mock of the notifier.
package notificationmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/markupgen/internal/notification"
)

// NotifierInterfaceMock is a mock implementation of notification.NotifierInterface.
type NotifierInterfaceMock struct {
	mock.Mock
}

// Notify mocks the Notify method.
func (m *NotifierInterfaceMock) Notify(severity notification.Severity, message string) {
	m.Called(severity, message)
}

// Recent mocks the Recent method.
func (m *NotifierInterfaceMock) Recent() []notification.Event {
	ret := m.Called()
	if v := ret.Get(0); v != nil {
		return v.([]notification.Event)
	}
	return nil
}
