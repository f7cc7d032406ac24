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
	"errors"

	"github.com/asgardeo/markupgen/internal/system/error/serviceerror"
)

// Client errors for saved schema operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingSchemaID is the error returned when the saved schema id is missing.
	ErrorMissingSchemaID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1002",
		Error:            "Invalid request format",
		ErrorDescription: "Saved schema ID is required",
	}
	// ErrorSavedSchemaNotFound is the error returned when a saved schema is not found.
	ErrorSavedSchemaNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1003",
		Error:            "Saved schema not found",
		ErrorDescription: "The saved schema with the specified id does not exist",
	}
	// ErrorUnknownSchemaType is the error returned when the schema type is not supported.
	ErrorUnknownSchemaType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1004",
		Error:            "Unknown schema type",
		ErrorDescription: "The schema type is not supported",
	}
	// ErrorInvalidSchemaData is the error returned when the data does not pass validation.
	ErrorInvalidSchemaData = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1005",
		Error:            "Invalid schema data",
		ErrorDescription: "Only validated data can be saved",
	}
	// ErrorInvalidLimit is the error returned when the limit parameter is invalid.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1006",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The limit parameter must be a positive integer",
	}
	// ErrorInvalidOffset is the error returned when the offset parameter is invalid.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1007",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The offset parameter must be a non-negative integer",
	}
	// ErrorNameTooLong is the error returned when the entry name exceeds the stored length.
	ErrorNameTooLong = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SVS-1008",
		Error:            "Invalid request format",
		ErrorDescription: "The saved schema name must not exceed 255 characters",
	}
)

// Server errors for saved schema operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SVS-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// ErrSavedSchemaNotFound is returned by the store when no saved schema matches the id.
var ErrSavedSchemaNotFound = errors.New("saved schema not found")
