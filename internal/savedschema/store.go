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
	"fmt"
	"time"

	"github.com/asgardeo/markupgen/internal/markup/value"
	"github.com/asgardeo/markupgen/internal/system/database/provider"
)

// savedSchemaStoreInterface defines the persistence operations of saved schemas.
type savedSchemaStoreInterface interface {
	GetSavedSchemaListCount() (int, error)
	GetSavedSchemaList(limit, offset int) ([]SavedSchemaBasic, error)
	CreateSavedSchema(savedSchema SavedSchema) error
	GetSavedSchema(id string) (SavedSchema, error)
	DeleteSavedSchema(id string) error
}

// savedSchemaStore is the default implementation of savedSchemaStoreInterface.
type savedSchemaStore struct {
	dbProvider provider.DBProviderInterface
}

// newSavedSchemaStore creates a new instance of savedSchemaStore.
func newSavedSchemaStore(dbProvider provider.DBProviderInterface) savedSchemaStoreInterface {
	return &savedSchemaStore{dbProvider: dbProvider}
}

// GetSavedSchemaListCount retrieves the total count of saved schemas.
func (s *savedSchemaStore) GetSavedSchemaListCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countResults, err := dbClient.Query(QueryGetSavedSchemaListCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	if len(countResults) == 0 {
		return 0, nil
	}
	switch total := countResults[0]["total"].(type) {
	case int64:
		return int(total), nil
	case int:
		return total, nil
	default:
		return 0, fmt.Errorf("unexpected type for total: %T", total)
	}
}

// GetSavedSchemaList retrieves a page of saved schemas in insertion order.
func (s *savedSchemaStore) GetSavedSchemaList(limit, offset int) ([]SavedSchemaBasic, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetSavedSchemaList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute saved schema list query: %w", err)
	}

	schemas := make([]SavedSchemaBasic, 0, len(results))
	for _, row := range results {
		basic, err := buildSavedSchemaBasicFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build saved schema from result row: %w", err)
		}
		schemas = append(schemas, basic)
	}
	return schemas, nil
}

// CreateSavedSchema inserts a saved schema.
func (s *savedSchemaStore) CreateSavedSchema(savedSchema SavedSchema) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	data, err := json.Marshal(savedSchema.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal saved schema data: %w", err)
	}

	_, err = dbClient.Execute(QueryCreateSavedSchema, savedSchema.ID, savedSchema.Name, savedSchema.Type,
		string(data), savedSchema.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetSavedSchema retrieves a saved schema by its id.
func (s *savedSchemaStore) GetSavedSchema(id string) (SavedSchema, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		return SavedSchema{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetSavedSchemaByID, id)
	if err != nil {
		return SavedSchema{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return SavedSchema{}, ErrSavedSchemaNotFound
	}
	if len(results) != 1 {
		return SavedSchema{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	row := results[0]
	basic, err := buildSavedSchemaBasicFromResultRow(row)
	if err != nil {
		return SavedSchema{}, err
	}
	rawData, err := stringColumn(row, "data")
	if err != nil {
		return SavedSchema{}, err
	}
	data := value.NewRecord()
	if err := json.Unmarshal([]byte(rawData), data); err != nil {
		return SavedSchema{}, fmt.Errorf("failed to unmarshal saved schema data: %w", err)
	}

	return SavedSchema{
		ID:        basic.ID,
		Name:      basic.Name,
		Type:      basic.Type,
		Data:      data,
		CreatedAt: basic.CreatedAt,
	}, nil
}

// DeleteSavedSchema deletes a saved schema. Deleting an unknown id is not an error.
func (s *savedSchemaStore) DeleteSavedSchema(id string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(QueryDeleteSavedSchema, id); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// buildSavedSchemaBasicFromResultRow constructs a SavedSchemaBasic from a database result row.
func buildSavedSchemaBasicFromResultRow(row map[string]interface{}) (SavedSchemaBasic, error) {
	id, err := stringColumn(row, "schema_id")
	if err != nil {
		return SavedSchemaBasic{}, err
	}
	name, err := stringColumn(row, "name")
	if err != nil {
		return SavedSchemaBasic{}, err
	}
	typeName, err := stringColumn(row, "type")
	if err != nil {
		return SavedSchemaBasic{}, err
	}
	createdAt, err := timeColumn(row, "created_at")
	if err != nil {
		return SavedSchemaBasic{}, err
	}
	return SavedSchemaBasic{ID: id, Name: name, Type: typeName, CreatedAt: createdAt}, nil
}

// stringColumn reads a text column, which drivers may return as a string or a byte slice.
func stringColumn(row map[string]interface{}, column string) (string, error) {
	switch v := row[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}

// timeColumn reads a timestamp column, which is stored as RFC 3339 text on SQLite.
func timeColumn(row map[string]interface{}, column string) (time.Time, error) {
	if t, ok := row[column].(time.Time); ok {
		return t.UTC(), nil
	}
	raw, err := stringColumn(row, column)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t.UTC(), nil
}
