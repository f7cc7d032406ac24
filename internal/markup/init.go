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

package markup

import (
	"net/http"

	"github.com/asgardeo/markupgen/internal/notification"
	"github.com/asgardeo/markupgen/internal/savedschema"
	"github.com/asgardeo/markupgen/internal/system/cache"
	"github.com/asgardeo/markupgen/internal/system/config"
	"github.com/asgardeo/markupgen/internal/system/middleware"
)

// Initialize initializes the markup service and registers its routes.
func Initialize(mux *http.ServeMux, savedSchemas savedschema.SavedSchemaServiceInterface,
	notifier notification.NotifierInterface) MarkupServiceInterface {
	service := NewService(savedSchemas, notifier)
	registerRoutes(mux, newMarkupHandler(service))
	return service
}

// NewService creates the markup service without registering routes.
func NewService(savedSchemas savedschema.SavedSchemaServiceInterface,
	notifier notification.NotifierInterface) MarkupServiceInterface {
	return newMarkupService(cache.NewCache[*session](sessionCacheName), savedSchemas, notifier,
		config.GetServerRuntime().Config.Markup.DefaultType)
}

// registerRoutes registers the routes for markup operations.
func registerRoutes(mux *http.ServeMux, handler *markupHandler) {
	readOpts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /schema-types", handler.HandleSchemaTypeListRequest, readOpts))
	mux.HandleFunc(middleware.WithCORS("GET /schema-types/{type}", handler.HandleSchemaTypeGetRequest, readOpts))
	mux.HandleFunc(middleware.WithCORS("GET /markup-notifications", handler.HandleNotificationListRequest, readOpts))

	postOpts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /markup/generate", handler.HandleGenerateRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup/generate", preflight, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /markup-sessions", handler.HandleSessionPostRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions", preflight, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /markup-sessions/{id}/submit", handler.HandleSubmitRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions/{id}/submit", preflight, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /markup-sessions/{id}/save", handler.HandleSaveRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions/{id}/save", preflight, postOpts))

	sessionOpts := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /markup-sessions/{id}", handler.HandleSessionGetRequest, sessionOpts))
	mux.HandleFunc(middleware.WithCORS("DELETE /markup-sessions/{id}", handler.HandleSessionDeleteRequest, sessionOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions/{id}", preflight, sessionOpts))

	fieldOpts := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /markup-sessions/{id}/fields", handler.HandleFieldPutRequest, fieldOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions/{id}/fields", preflight, fieldOpts))

	elementOpts := middleware.CORSOptions{
		AllowedMethods:   "POST, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /markup-sessions/{id}/elements/{path}",
		handler.HandleElementPostRequest, elementOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions/{id}/elements/{path}", preflight, elementOpts))
	mux.HandleFunc(middleware.WithCORS("DELETE /markup-sessions/{id}/elements/{path}/{index}",
		handler.HandleElementDeleteRequest, elementOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /markup-sessions/{id}/elements/{path}/{index}",
		preflight, elementOpts))
}

func preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
