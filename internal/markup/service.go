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

// Package markup hosts editing sessions of the form engine and generates JSON-LD markup from them.
package markup

import (
	"errors"
	"strings"

	"github.com/asgardeo/markupgen/internal/markup/document"
	"github.com/asgardeo/markupgen/internal/markup/form"
	"github.com/asgardeo/markupgen/internal/markup/preview"
	"github.com/asgardeo/markupgen/internal/markup/schema"
	"github.com/asgardeo/markupgen/internal/notification"
	"github.com/asgardeo/markupgen/internal/savedschema"
	"github.com/asgardeo/markupgen/internal/system/cache"
	"github.com/asgardeo/markupgen/internal/system/error/serviceerror"
	"github.com/asgardeo/markupgen/internal/system/log"
	"github.com/asgardeo/markupgen/internal/system/utils"
)

const loggerComponentName = "MarkupService"

// MarkupServiceInterface defines the interface for the markup service.
type MarkupServiceInterface interface {
	GetSchemaTypeList() *SchemaTypeListResponse
	GetSchemaType(name string) (*schema.TypeSchema, *serviceerror.ServiceError)
	CreateSession(request CreateSessionRequest) (*SessionResponse, *serviceerror.ServiceError)
	GetSession(id string) (*SessionResponse, *serviceerror.ServiceError)
	DeleteSession(id string) *serviceerror.ServiceError
	SetField(id, path string, v any) (*SessionResponse, *serviceerror.ServiceError)
	AppendElement(id, path string) (*SessionResponse, *serviceerror.ServiceError)
	RemoveElement(id, path string, index int) (*SessionResponse, *serviceerror.ServiceError)
	SubmitSession(id string) (*SubmitResponse, *serviceerror.ServiceError)
	SaveSession(id, name string) (*savedschema.SavedSchema, *serviceerror.ServiceError)
	Generate(request GenerateRequest) (*SubmitResponse, *serviceerror.ServiceError)
	GetNotifications() []notification.Event
}

// markupService is the default implementation of the MarkupServiceInterface.
type markupService struct {
	sessions     cache.CacheInterface[*session]
	savedSchemas savedschema.SavedSchemaServiceInterface
	notifier     notification.NotifierInterface
	defaultType  string
}

// newMarkupService creates a new instance of markupService. An unknown default type falls back
// to the built in default.
func newMarkupService(sessions cache.CacheInterface[*session], savedSchemas savedschema.SavedSchemaServiceInterface,
	notifier notification.NotifierInterface, defaultType string) MarkupServiceInterface {
	if _, err := schema.GetSchema(defaultType); err != nil {
		defaultType = schema.DefaultTypeName
	}
	return &markupService{
		sessions:     sessions,
		savedSchemas: savedSchemas,
		notifier:     notifier,
		defaultType:  defaultType,
	}
}

// GetSchemaTypeList returns every supported type grouped by category.
func (s *markupService) GetSchemaTypeList() *SchemaTypeListResponse {
	names := schema.TypeNames()
	types := make([]SchemaTypeSummary, 0, len(names))
	for _, name := range names {
		ts, _ := schema.GetSchema(name)
		types = append(types, SchemaTypeSummary{
			Name:        ts.Name,
			Description: ts.Description,
			Category:    ts.Category,
			Preview:     preview.HasLayout(ts.Name),
		})
	}
	return &SchemaTypeListResponse{
		DefaultType: s.defaultType,
		Categories:  schema.Categories(),
		Types:       types,
	}
}

// GetSchemaType returns the field tree of a type.
func (s *markupService) GetSchemaType(name string) (*schema.TypeSchema, *serviceerror.ServiceError) {
	ts, err := schema.GetSchema(name)
	if err != nil {
		return nil, ErrorSchemaTypeNotFound.WithDescription(name)
	}
	return ts, nil
}

// CreateSession starts an editing session. A saved schema id takes precedence over type and data.
func (s *markupService) CreateSession(request CreateSessionRequest) (*SessionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if !s.sessions.IsEnabled() {
		logger.Error("Session cache is disabled, cannot create editing sessions")
		return nil, ErrorInternalServerError.WithDescription("session storage is disabled")
	}

	var state *form.State
	if request.SavedSchemaID != "" {
		loaded, svcErr := s.loadSavedSchema(request.SavedSchemaID)
		if svcErr != nil {
			return nil, svcErr
		}
		state = loaded
	} else {
		ts, svcErr := s.resolveType(request.Type)
		if svcErr != nil {
			return nil, svcErr
		}
		var initial any
		if request.Data != nil {
			initial = request.Data
		}
		state = form.Init(ts, initial)
	}

	sess := &session{id: utils.GenerateUUID(), state: state}
	s.sessions.Set(cache.CacheKey{Key: sess.id}, sess)

	logger.Debug("Created editing session", log.String("id", sess.id), log.String("type", state.TypeName()))
	return sess.response(), nil
}

// GetSession returns the current form of a session.
func (s *markupService) GetSession(id string) (*SessionResponse, *serviceerror.ServiceError) {
	var resp *SessionResponse
	svcErr := s.withSession(id, func(sess *session) *serviceerror.ServiceError {
		resp = sess.response()
		return nil
	})
	return resp, svcErr
}

// DeleteSession discards a session. Deleting an unknown session succeeds.
func (s *markupService) DeleteSession(id string) *serviceerror.ServiceError {
	s.sessions.Delete(cache.CacheKey{Key: id})
	return nil
}

// SetField stores a value at a leaf of the session form.
func (s *markupService) SetField(id, path string, v any) (*SessionResponse, *serviceerror.ServiceError) {
	return s.mutate(id, func(state *form.State) (*form.State, error) {
		return state.SetField(path, v)
	})
}

// AppendElement adds an empty element to an array of the session form.
func (s *markupService) AppendElement(id, path string) (*SessionResponse, *serviceerror.ServiceError) {
	return s.mutate(id, func(state *form.State) (*form.State, error) {
		return state.AppendElement(path)
	})
}

// RemoveElement removes an element from an array of the session form.
func (s *markupService) RemoveElement(id, path string, index int) (*SessionResponse, *serviceerror.ServiceError) {
	return s.mutate(id, func(state *form.State) (*form.State, error) {
		return state.RemoveElement(path, index)
	})
}

// SubmitSession validates the session form and, when it passes, generates the markup. The
// generated document is kept for a later save.
func (s *markupService) SubmitSession(id string) (*SubmitResponse, *serviceerror.ServiceError) {
	var resp *SubmitResponse
	svcErr := s.withSession(id, func(sess *session) *serviceerror.ServiceError {
		var genErr *serviceerror.ServiceError
		resp, genErr = s.generate(sess.state)
		if genErr != nil {
			return genErr
		}
		if resp.Valid {
			sess.lastDocument = resp.Document
		}
		return nil
	})
	return resp, svcErr
}

// SaveSession persists the last document generated in the session.
func (s *markupService) SaveSession(id, name string) (*savedschema.SavedSchema, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var saved *savedschema.SavedSchema
	svcErr := s.withSession(id, func(sess *session) *serviceerror.ServiceError {
		if sess.lastDocument == nil {
			return &ErrorNothingToSave
		}
		typeName, data, err := document.Split(sess.lastDocument)
		if err != nil {
			logger.Error("Generated document has no type", log.String("id", id), log.Error(err))
			s.notifier.Notify(notification.SeverityError, notification.MessageSaveFailed)
			return &ErrorInternalServerError
		}

		var saveErr *serviceerror.ServiceError
		saved, saveErr = s.savedSchemas.SaveSchema(savedschema.SaveSchemaRequest{
			Name: name,
			Type: typeName,
			Data: data,
		})
		if saveErr != nil {
			s.notifier.Notify(notification.SeverityError, notification.MessageSaveFailed)
			if saveErr.Type == serviceerror.ClientErrorType {
				return ErrorSaveRejected.WithDescription(saveErr.ErrorDescription)
			}
			return &ErrorInternalServerError
		}
		s.notifier.Notify(notification.SeveritySuccess, notification.MessageSaved)
		return nil
	})
	return saved, svcErr
}

// Generate validates data against a type and generates the markup without keeping a session.
func (s *markupService) Generate(request GenerateRequest) (*SubmitResponse, *serviceerror.ServiceError) {
	ts, svcErr := s.resolveType(request.Type)
	if svcErr != nil {
		return nil, svcErr
	}
	var initial any
	if request.Data != nil {
		initial = request.Data
	}
	return s.generate(form.Init(ts, initial))
}

// GetNotifications returns the most recent notifications.
func (s *markupService) GetNotifications() []notification.Event {
	return s.notifier.Recent()
}

// generate submits the state and assembles the outputs of a successful submission.
func (s *markupService) generate(state *form.State) (*SubmitResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	result := state.Submit()
	if !result.OK() {
		s.notifier.Notify(notification.SeverityError, notification.MessageFixErrors)
		return &SubmitResponse{Valid: false, Type: state.TypeName(), Errors: result.Errors}, nil
	}

	doc := document.Assemble(state.TypeName(), result.Value)
	markup, err := document.ScriptTag(doc)
	if err != nil {
		logger.Error("Failed to serialize document", log.String("type", state.TypeName()), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	rendered, err := preview.Render(state.TypeName(), result.Value)
	if err != nil {
		logger.Error("Failed to render preview", log.String("type", state.TypeName()), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	s.notifier.Notify(notification.SeveritySuccess, notification.MessageGenerated)
	return &SubmitResponse{
		Valid:    true,
		Type:     state.TypeName(),
		Document: doc,
		Markup:   markup,
		Preview:  rendered,
	}, nil
}

// resolveType returns the named type, or the default type when the name is blank.
func (s *markupService) resolveType(name string) (*schema.TypeSchema, *serviceerror.ServiceError) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultType
	}
	ts, err := schema.GetSchema(name)
	if err != nil {
		return nil, ErrorUnknownSchemaType.WithDescription(name)
	}
	return ts, nil
}

// loadSavedSchema builds a form state from a saved entry and reports the outcome as a notification.
func (s *markupService) loadSavedSchema(id string) (*form.State, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	saved, svcErr := s.savedSchemas.GetSavedSchema(id)
	if svcErr != nil {
		s.notifier.Notify(notification.SeverityError, notification.MessageLoadFailed)
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, ErrorSavedSchemaNotFound.WithDescription(id)
		}
		return nil, &ErrorInternalServerError
	}

	ts, err := schema.GetSchema(saved.Type)
	if err != nil {
		logger.Warn("Saved schema has an unsupported type", log.String("id", id), log.String("type", saved.Type))
		s.notifier.Notify(notification.SeverityError, notification.MessageLoadFailed)
		return nil, ErrorUnknownSchemaType.WithDescription(saved.Type)
	}

	s.notifier.Notify(notification.SeveritySuccess, notification.MessageLoaded)
	return form.Init(ts, saved.Data), nil
}

// withSession runs fn while holding the lock of the session.
func (s *markupService) withSession(id string, fn func(sess *session) *serviceerror.ServiceError) *serviceerror.ServiceError {
	sess, ok := s.sessions.Get(cache.CacheKey{Key: id})
	if !ok {
		return &ErrorSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

// mutate replaces the session state with the result of op. A failed op leaves the state untouched.
func (s *markupService) mutate(id string, op func(state *form.State) (*form.State, error)) (
	*SessionResponse, *serviceerror.ServiceError) {
	var resp *SessionResponse
	svcErr := s.withSession(id, func(sess *session) *serviceerror.ServiceError {
		next, err := op(sess.state)
		if err != nil {
			return mapFormError(err)
		}
		sess.state = next
		resp = sess.response()
		return nil
	})
	return resp, svcErr
}

// mapFormError converts a structural error of the form engine into a client error.
func mapFormError(err error) *serviceerror.ServiceError {
	switch {
	case errors.Is(err, form.ErrInvalidIndex):
		return ErrorInvalidElementIndex.WithDescription(err.Error())
	case errors.Is(err, form.ErrInvalidValue):
		return ErrorInvalidFieldValue.WithDescription(err.Error())
	case errors.Is(err, form.ErrInvalidPath):
		return ErrorInvalidFieldPath.WithDescription(err.Error())
	default:
		return &ErrorInternalServerError
	}
}
