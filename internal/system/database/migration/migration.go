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

// Package migration creates the tables the server needs when they do not exist yet.
package migration

import (
	"fmt"

	"github.com/asgardeo/markupgen/internal/system/database/client"
	"github.com/asgardeo/markupgen/internal/system/database/model"
	"github.com/asgardeo/markupgen/internal/system/log"
)

var (
	// QueryCreateSavedSchemasTable creates the table holding saved schema entries.
	QueryCreateSavedSchemasTable = model.DBQuery{
		ID: "MIG-00001",
		SQLiteQuery: `CREATE TABLE IF NOT EXISTS SAVED_SCHEMAS (
    SEQ INTEGER PRIMARY KEY AUTOINCREMENT,
    SCHEMA_ID VARCHAR(36) NOT NULL UNIQUE,
    NAME VARCHAR(255) NOT NULL,
    TYPE VARCHAR(50) NOT NULL,
    DATA TEXT NOT NULL,
    CREATED_AT TIMESTAMP NOT NULL
)`,
		PostgresQuery: `CREATE TABLE IF NOT EXISTS SAVED_SCHEMAS (
    SEQ BIGSERIAL PRIMARY KEY,
    SCHEMA_ID VARCHAR(36) NOT NULL UNIQUE,
    NAME VARCHAR(255) NOT NULL,
    TYPE VARCHAR(50) NOT NULL,
    DATA TEXT NOT NULL,
    CREATED_AT TIMESTAMPTZ NOT NULL
)`,
	}
	// QueryCreateSavedSchemasTypeIndex indexes saved entries by type.
	QueryCreateSavedSchemasTypeIndex = model.DBQuery{
		ID:    "MIG-00002",
		Query: "CREATE INDEX IF NOT EXISTS IDX_SAVED_SCHEMAS_TYPE ON SAVED_SCHEMAS (TYPE)",
	}
)

// Migrate creates the saved schema table and its index in a single transaction.
func Migrate(dbClient client.DBClientInterface) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBMigration"))

	if err := dbClient.ExecuteInTx(QueryCreateSavedSchemasTable, QueryCreateSavedSchemasTypeIndex); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", dbClient.GetDBType(), err)
	}

	logger.Debug("Database schema is up to date", log.String("dbType", dbClient.GetDBType()))
	return nil
}
