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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/markupgen/internal/system/config"
)

type CORSMiddlewareTestSuite struct {
	suite.Suite
}

func TestCORSMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(CORSMiddlewareTestSuite))
}

func (suite *CORSMiddlewareTestSuite) SetupTest() {
	config.ResetServerRuntime()
	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://example.com", "https://test.com"},
		},
	}
	_ = config.InitializeServerRuntime("/tmp", cfg)
}

func (suite *CORSMiddlewareTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (suite *CORSMiddlewareTestSuite) serve(origin string, opts CORSOptions) *httptest.ResponseRecorder {
	pattern, wrappedHandler := WithCORS("GET /schema-types", okHandler, opts)
	assert.Equal(suite.T(), "GET /schema-types", pattern)

	req := httptest.NewRequest(http.MethodGet, "/schema-types", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	wrappedHandler(w, req)
	return w
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS_ValidOrigin() {
	w := suite.serve("https://example.com", CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(suite.T(), "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(suite.T(), "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(suite.T(), "OK", w.Body.String())
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS_InvalidOrigin() {
	w := suite.serve("https://malicious.com", CORSOptions{AllowedMethods: "GET", AllowCredentials: true})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS_LookalikeOrigin() {
	w := suite.serve("https://example.com.attacker.example", CORSOptions{AllowedMethods: "GET"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS_NoOriginHeader() {
	w := suite.serve("", CORSOptions{AllowedMethods: "GET"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS_OptionalHeadersOmitted() {
	w := suite.serve("https://test.com", CORSOptions{})

	assert.Equal(suite.T(), "https://test.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS_NoConfiguredOrigins() {
	config.ResetServerRuntime()
	_ = config.InitializeServerRuntime("/tmp", &config.Config{})

	w := suite.serve("https://example.com", CORSOptions{AllowedMethods: "GET"})

	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
}
