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

// Package savedschema persists validated data trees of schema types so they can be listed and reloaded.
package savedschema

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asgardeo/markupgen/internal/markup/form"
	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/system/error/serviceerror"
	"github.com/asgardeo/markupgen/internal/system/log"
	"github.com/asgardeo/markupgen/internal/system/utils"
)

const loggerComponentName = "SavedSchemaService"

// defaultNameTimeLayout formats the creation time in generated entry names.
const defaultNameTimeLayout = "2006-01-02 15:04:05"

// maxNameLength matches the NAME column of SAVED_SCHEMAS.
const maxNameLength = 255

// SavedSchemaServiceInterface defines the interface for the saved schema service.
type SavedSchemaServiceInterface interface {
	SaveSchema(request SaveSchemaRequest) (*SavedSchema, *serviceerror.ServiceError)
	GetSavedSchemaList(limit, offset int) (*SavedSchemaListResponse, *serviceerror.ServiceError)
	GetSavedSchema(id string) (*SavedSchema, *serviceerror.ServiceError)
	DeleteSavedSchema(id string) *serviceerror.ServiceError
}

// savedSchemaService is the default implementation of the SavedSchemaServiceInterface.
type savedSchemaService struct {
	store savedSchemaStoreInterface
	now   func() time.Time
}

// newSavedSchemaService creates a new instance of savedSchemaService.
func newSavedSchemaService(store savedSchemaStoreInterface) SavedSchemaServiceInterface {
	return &savedSchemaService{store: store, now: time.Now}
}

// SaveSchema validates the data against its type and persists the normalized result.
func (s *savedSchemaService) SaveSchema(request SaveSchemaRequest) (*SavedSchema, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.Data == nil {
		return nil, ErrorInvalidRequestFormat.WithDescription("data is required")
	}
	name := strings.TrimSpace(request.Name)
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, &ErrorNameTooLong
	}
	ts, err := schema.GetSchema(request.Type)
	if err != nil {
		return nil, ErrorUnknownSchemaType.WithDescription(request.Type)
	}

	result := form.Init(ts, request.Data).Submit()
	if !result.OK() {
		logger.Debug("Rejected saving invalid data", log.String("type", ts.Name),
			log.Int("errorCount", len(result.Errors)))
		return nil, ErrorInvalidSchemaData.WithDescription(describeFieldErrors(result.Errors))
	}

	createdAt := s.now().UTC()
	if name == "" {
		name = fmt.Sprintf("%s Schema %s", ts.Name, createdAt.Format(defaultNameTimeLayout))
	}

	savedSchema := SavedSchema{
		ID:        utils.GenerateUUID(),
		Name:      name,
		Type:      ts.Name,
		Data:      result.Value,
		CreatedAt: createdAt,
	}
	if err := s.store.CreateSavedSchema(savedSchema); err != nil {
		logger.Error("Failed to save schema", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully saved schema", log.String("id", savedSchema.ID), log.String("type", ts.Name))
	return &savedSchema, nil
}

// GetSavedSchemaList retrieves a page of saved schemas in insertion order.
func (s *savedSchemaService) GetSavedSchemaList(limit, offset int) (
	*SavedSchemaListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if limit <= 0 {
		return nil, &ErrorInvalidLimit
	}
	if offset < 0 {
		return nil, &ErrorInvalidOffset
	}

	totalCount, err := s.store.GetSavedSchemaListCount()
	if err != nil {
		logger.Error("Failed to get saved schema count", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	schemas, err := s.store.GetSavedSchemaList(limit, offset)
	if err != nil {
		logger.Error("Failed to list saved schemas", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &SavedSchemaListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(schemas),
		Schemas:      schemas,
		Links:        buildPaginationLinks("/saved-schemas", limit, offset, totalCount),
	}, nil
}

// GetSavedSchema retrieves a saved schema by its id.
func (s *savedSchemaService) GetSavedSchema(id string) (*SavedSchema, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if id == "" {
		return nil, &ErrorMissingSchemaID
	}

	savedSchema, err := s.store.GetSavedSchema(id)
	if err != nil {
		if errors.Is(err, ErrSavedSchemaNotFound) {
			logger.Debug("Saved schema not found", log.String("id", id))
			return nil, &ErrorSavedSchemaNotFound
		}
		logger.Error("Failed to retrieve saved schema", log.String("id", id), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return &savedSchema, nil
}

// DeleteSavedSchema deletes a saved schema. Deleting an unknown id succeeds.
func (s *savedSchemaService) DeleteSavedSchema(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if id == "" {
		return &ErrorMissingSchemaID
	}
	if err := s.store.DeleteSavedSchema(id); err != nil {
		logger.Error("Failed to delete saved schema", log.String("id", id), log.Error(err))
		return &ErrorInternalServerError
	}
	logger.Debug("Deleted saved schema", log.String("id", id))
	return nil
}

// describeFieldErrors renders validation errors as "path: message" pairs.
func describeFieldErrors(fieldErrors []form.FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// buildPaginationLinks builds the first, prev, next and last links of a page.
func buildPaginationLinks(base string, limit, offset, totalCount int) []Link {
	links := make([]Link, 0)

	if offset > 0 {
		links = append(links, Link{Href: fmt.Sprintf("%s?offset=0&limit=%d", base, limit), Rel: "first"})
		prevOffset := max(offset-limit, 0)
		links = append(links, Link{Href: fmt.Sprintf("%s?offset=%d&limit=%d", base, prevOffset, limit), Rel: "prev"})
	}

	if offset+limit < totalCount {
		links = append(links, Link{
			Href: fmt.Sprintf("%s?offset=%d&limit=%d", base, offset+limit, limit),
			Rel:  "next",
		})
	}

	if totalCount > 0 {
		lastPageOffset := ((totalCount - 1) / limit) * limit
		if offset < lastPageOffset {
			links = append(links, Link{
				Href: fmt.Sprintf("%s?offset=%d&limit=%d", base, lastPageOffset, limit),
				Rel:  "last",
			})
		}
	}

	return links
}
