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

package main

import (
	"net/http"

	"github.com/asgardeo/markupgen/internal/markup"
	"github.com/asgardeo/markupgen/internal/notification"
	"github.com/asgardeo/markupgen/internal/savedschema"
	"github.com/asgardeo/markupgen/internal/system/config"
	"github.com/asgardeo/markupgen/internal/system/database/provider"
	"github.com/asgardeo/markupgen/internal/system/healthcheck/handler"
	"github.com/asgardeo/markupgen/internal/system/healthcheck/service"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, dbProvider provider.DBProviderInterface) {
	notifier := notification.NewLogNotifier(config.GetServerRuntime().Config.Markup.NotificationHistorySize)

	savedSchemaService := savedschema.Initialize(mux, dbProvider)
	_ = markup.Initialize(mux, savedSchemaService, notifier)

	handler.NewHealthCheckHandler(service.NewHealthCheckService(dbProvider)).RegisterRoutes(mux)
}
