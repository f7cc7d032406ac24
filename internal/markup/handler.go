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
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	serverconst "github.com/asgardeo/markupgen/internal/system/constants"
	"github.com/asgardeo/markupgen/internal/system/error/apierror"
	"github.com/asgardeo/markupgen/internal/system/error/serviceerror"
	"github.com/asgardeo/markupgen/internal/system/log"
	sysutils "github.com/asgardeo/markupgen/internal/system/utils"
)

const handlerLoggerComponentName = "MarkupHandler"

// markupHandler is the handler for schema type, session and generation requests.
type markupHandler struct {
	service MarkupServiceInterface
}

// newMarkupHandler creates a new instance of markupHandler.
func newMarkupHandler(service MarkupServiceInterface) *markupHandler {
	return &markupHandler{service: service}
}

// HandleSchemaTypeListRequest handles the list schema types request.
func (h *markupHandler) HandleSchemaTypeListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))
	writeResponse(w, logger, http.StatusOK, h.service.GetSchemaTypeList())
}

// HandleSchemaTypeGetRequest handles the get schema type request.
func (h *markupHandler) HandleSchemaTypeGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	ts, svcErr := h.service.GetSchemaType(r.PathValue("type"))
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusOK, ts)
}

// HandleGenerateRequest handles the stateless generate request.
func (h *markupHandler) HandleGenerateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[GenerateRequest](r)
	if err != nil {
		handleError(w, logger, ErrorInvalidRequestFormat.WithDescription(err.Error()))
		return
	}
	request.Type = sysutils.SanitizeString(request.Type)

	resp, svcErr := h.service.Generate(*request)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeSubmitResponse(w, r, logger, resp)
}

// HandleSessionPostRequest handles the create session request.
func (h *markupHandler) HandleSessionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request := &CreateSessionRequest{}
	if r.ContentLength != 0 {
		var err error
		request, err = sysutils.DecodeJSONBody[CreateSessionRequest](r)
		if err != nil {
			handleError(w, logger, ErrorInvalidRequestFormat.WithDescription(err.Error()))
			return
		}
	}
	request.Type = sysutils.SanitizeString(request.Type)
	request.SavedSchemaID = sysutils.SanitizeString(request.SavedSchemaID)

	resp, svcErr := h.service.CreateSession(*request)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusCreated, resp)
	logger.Debug("Successfully created session", log.String("id", resp.ID), log.String("type", resp.Type))
}

// HandleSessionGetRequest handles the get session request.
func (h *markupHandler) HandleSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	resp, svcErr := h.service.GetSession(r.PathValue("id"))
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusOK, resp)
}

// HandleSessionDeleteRequest handles the delete session request.
func (h *markupHandler) HandleSessionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	if svcErr := h.service.DeleteSession(r.PathValue("id")); svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFieldPutRequest handles the set field request.
func (h *markupHandler) HandleFieldPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[SetFieldRequest](r)
	if err != nil {
		handleError(w, logger, ErrorInvalidRequestFormat.WithDescription(err.Error()))
		return
	}

	resp, svcErr := h.service.SetField(r.PathValue("id"), request.Path, request.Value)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusOK, resp)
}

// HandleElementPostRequest handles the append element request.
func (h *markupHandler) HandleElementPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	resp, svcErr := h.service.AppendElement(r.PathValue("id"), r.PathValue("path"))
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusOK, resp)
}

// HandleElementDeleteRequest handles the remove element request.
func (h *markupHandler) HandleElementDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		handleError(w, logger, ErrorInvalidElementIndex.WithDescription(r.PathValue("index")))
		return
	}

	resp, svcErr := h.service.RemoveElement(r.PathValue("id"), r.PathValue("path"), index)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusOK, resp)
}

// HandleSubmitRequest handles the submit session request. A submission with validation errors
// is a successful request whose response carries the errors.
func (h *markupHandler) HandleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	resp, svcErr := h.service.SubmitSession(r.PathValue("id"))
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeSubmitResponse(w, r, logger, resp)
}

// HandleSaveRequest handles the save session request.
func (h *markupHandler) HandleSaveRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request := &SaveSessionRequest{}
	if r.ContentLength != 0 {
		var err error
		request, err = sysutils.DecodeJSONBody[SaveSessionRequest](r)
		if err != nil {
			handleError(w, logger, ErrorInvalidRequestFormat.WithDescription(err.Error()))
			return
		}
	}

	saved, svcErr := h.service.SaveSession(r.PathValue("id"), sysutils.SanitizeString(request.Name))
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}
	writeResponse(w, logger, http.StatusCreated, saved)
	logger.Debug("Successfully saved session document", log.String("savedSchemaId", saved.ID))
}

// HandleNotificationListRequest handles the recent notifications request.
func (h *markupHandler) HandleNotificationListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))
	writeResponse(w, logger, http.StatusOK, h.service.GetNotifications())
}

// writeSubmitResponse writes a generation outcome. Clients accepting HTML receive the preview
// of a valid submission as the body.
func writeSubmitResponse(w http.ResponseWriter, r *http.Request, logger *log.Logger, resp *SubmitResponse) {
	if resp.Valid && strings.Contains(r.Header.Get("Accept"), "text/html") {
		w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeHTML)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(resp.Preview)); err != nil {
			logger.Error("Error writing preview", log.Error(err))
		}
		return
	}
	writeResponse(w, logger, http.StatusOK, resp)
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
		case ErrorSessionNotFound.Code, ErrorSchemaTypeNotFound.Code, ErrorSavedSchemaNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorNothingToSave.Code:
			statusCode = http.StatusConflict
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
