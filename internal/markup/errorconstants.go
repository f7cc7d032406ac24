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

import "github.com/asgardeo/markupgen/internal/system/error/serviceerror"

// Client errors for markup operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorUnknownSchemaType is the error returned when a session or generation names an unsupported type.
	ErrorUnknownSchemaType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1002",
		Error:            "Unknown schema type",
		ErrorDescription: "The schema type is not supported",
	}
	// ErrorSchemaTypeNotFound is the error returned when a schema type lookup fails.
	ErrorSchemaTypeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1003",
		Error:            "Schema type not found",
		ErrorDescription: "The schema type with the specified name does not exist",
	}
	// ErrorSessionNotFound is the error returned when a session does not exist or has expired.
	ErrorSessionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1004",
		Error:            "Session not found",
		ErrorDescription: "The session with the specified id does not exist or has expired",
	}
	// ErrorInvalidFieldPath is the error returned when a path does not address a field of the form.
	ErrorInvalidFieldPath = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1005",
		Error:            "Invalid field path",
		ErrorDescription: "The path does not address a field of the form",
	}
	// ErrorInvalidFieldValue is the error returned when a value cannot be stored in a leaf field.
	ErrorInvalidFieldValue = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1006",
		Error:            "Invalid field value",
		ErrorDescription: "Only scalar values can be stored in a field",
	}
	// ErrorInvalidElementIndex is the error returned when an array index is out of range.
	ErrorInvalidElementIndex = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1007",
		Error:            "Invalid element index",
		ErrorDescription: "The element index is out of range",
	}
	// ErrorNothingToSave is the error returned when a session has no generated document yet.
	ErrorNothingToSave = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1008",
		Error:            "Nothing to save",
		ErrorDescription: "Generate the markup successfully before saving",
	}
	// ErrorSavedSchemaNotFound is the error returned when a session is created from a missing saved schema.
	ErrorSavedSchemaNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1009",
		Error:            "Saved schema not found",
		ErrorDescription: "The saved schema with the specified id does not exist",
	}
	// ErrorSaveRejected is the error returned when the store refuses the generated document.
	ErrorSaveRejected = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MKP-1010",
		Error:            "Save rejected",
		ErrorDescription: "The generated document could not be saved",
	}
)

// Server errors for markup operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "MKP-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
