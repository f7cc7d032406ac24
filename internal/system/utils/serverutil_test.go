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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ServerUtilTestSuite struct {
	suite.Suite
}

func TestServerUtilSuite(t *testing.T) {
	suite.Run(t, new(ServerUtilTestSuite))
}

func (suite *ServerUtilTestSuite) TestGetAllowedOrigin() {
	testCases := []struct {
		name           string
		allowedOrigins []string
		origin         string
		expected       string
	}{
		{"NoAllowedOrigins", nil, "https://localhost:3000", ""},
		{"Match", []string{"https://example.com", "https://localhost:3000"}, "https://localhost:3000", "https://localhost:3000"},
		{"NoMatch", []string{"https://example.com"}, "https://other.com", ""},
		{"EmptyOrigin", []string{"https://example.com"}, "", ""},
		{"SuffixedHost", []string{"https://localhost:3000"}, "https://localhost:3000.attacker.example", ""},
		{"PrefixedHost", []string{"https://example.com"}, "https://evil-https://example.com", ""},
		{"DifferentPort", []string{"https://localhost:3000"}, "https://localhost:30001", ""},
		{"CaseInsensitive", []string{"https://Example.com"}, "https://example.com", "https://example.com"},
		{"TrailingSlash", []string{"https://example.com/"}, "https://example.com", "https://example.com"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetAllowedOrigin(tc.allowedOrigins, tc.origin))
		})
	}
}
