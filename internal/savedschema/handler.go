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
	"encoding/json"
	"net/http"

	serverconst "github.com/asgardeo/markupgen/internal/system/constants"
	"github.com/asgardeo/markupgen/internal/system/error/apierror"
	"github.com/asgardeo/markupgen/internal/system/error/serviceerror"
	"github.com/asgardeo/markupgen/internal/system/log"
	sysutils "github.com/asgardeo/markupgen/internal/system/utils"
)

const handlerLoggerComponentName = "SavedSchemaHandler"

// savedSchemaHandler is the handler for saved schema operations.
type savedSchemaHandler struct {
	service SavedSchemaServiceInterface
}

// newSavedSchemaHandler creates a new instance of savedSchemaHandler.
func newSavedSchemaHandler(service SavedSchemaServiceInterface) *savedSchemaHandler {
	return &savedSchemaHandler{service: service}
}

// HandleSavedSchemaListRequest handles the list saved schemas request.
func (h *savedSchemaHandler) HandleSavedSchemaListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	limit, offset, err := sysutils.ParsePagination(r, serverconst.DefaultPageSize, serverconst.MaxPageSize)
	if err != nil {
		handleError(w, logger, ErrorInvalidRequestFormat.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetSavedSchemaList(limit, offset)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	writeResponse(w, logger, http.StatusOK, listResponse)
	logger.Debug("Successfully listed saved schemas", log.Int("limit", limit), log.Int("offset", offset),
		log.Int("totalResults", listResponse.TotalResults))
}

// HandleSavedSchemaPostRequest handles the save schema request.
func (h *savedSchemaHandler) HandleSavedSchemaPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SaveSchemaRequest](r)
	if err != nil {
		handleError(w, logger, ErrorInvalidRequestFormat.WithDescription(err.Error()))
		return
	}
	request.Name = sysutils.SanitizeString(request.Name)
	request.Type = sysutils.SanitizeString(request.Type)

	savedSchema, svcErr := h.service.SaveSchema(*request)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	writeResponse(w, logger, http.StatusCreated, savedSchema)
	logger.Debug("Successfully saved schema", log.String("id", savedSchema.ID))
}

// HandleSavedSchemaGetRequest handles the get saved schema request.
func (h *savedSchemaHandler) HandleSavedSchemaGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	savedSchema, svcErr := h.service.GetSavedSchema(r.PathValue("id"))
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	writeResponse(w, logger, http.StatusOK, savedSchema)
}

// HandleSavedSchemaDeleteRequest handles the delete saved schema request.
func (h *savedSchemaHandler) HandleSavedSchemaDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	if svcErr := h.service.DeleteSavedSchema(r.PathValue("id")); svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeResponse writes the value as a JSON response.
func writeResponse(w http.ResponseWriter, logger *log.Logger, statusCode int, v any) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// handleError maps a service error to its HTTP response.
func handleError(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorSavedSchemaNotFound.Code:
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusBadRequest
		}
	}

	if statusCode == http.StatusInternalServerError {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}

	writeResponse(w, logger, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}
