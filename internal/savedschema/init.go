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
	"net/http"

	"github.com/asgardeo/markupgen/internal/system/database/provider"
	"github.com/asgardeo/markupgen/internal/system/middleware"
)

// Initialize initializes the saved schema service and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface) SavedSchemaServiceInterface {
	service := newSavedSchemaService(newSavedSchemaStore(dbProvider))
	registerRoutes(mux, newSavedSchemaHandler(service))
	return service
}

// NewService creates the saved schema service without registering routes.
func NewService(dbProvider provider.DBProviderInterface) SavedSchemaServiceInterface {
	return newSavedSchemaService(newSavedSchemaStore(dbProvider))
}

// registerRoutes registers the routes for saved schema operations.
func registerRoutes(mux *http.ServeMux, handler *savedSchemaHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /saved-schemas", handler.HandleSavedSchemaListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /saved-schemas", handler.HandleSavedSchemaPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /saved-schemas", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /saved-schemas/{id}", handler.HandleSavedSchemaGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /saved-schemas/{id}", handler.HandleSavedSchemaDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /saved-schemas/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, opts2))
}
