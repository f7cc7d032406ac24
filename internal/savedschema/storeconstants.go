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

import dbmodel "github.com/asgardeo/markupgen/internal/system/database/model"

var (
	// QueryGetSavedSchemaListCount is the query to count saved schemas.
	QueryGetSavedSchemaListCount = dbmodel.DBQuery{
		ID:    "SVS-00001",
		Query: "SELECT COUNT(*) AS TOTAL FROM SAVED_SCHEMAS",
	}
	// QueryGetSavedSchemaList is the query to list saved schemas in insertion order.
	QueryGetSavedSchemaList = dbmodel.DBQuery{
		ID: "SVS-00002",
		Query: "SELECT SCHEMA_ID, NAME, TYPE, CREATED_AT FROM SAVED_SCHEMAS " +
			"ORDER BY SEQ LIMIT $1 OFFSET $2",
	}
	// QueryCreateSavedSchema is the query to insert a saved schema.
	QueryCreateSavedSchema = dbmodel.DBQuery{
		ID:    "SVS-00003",
		Query: "INSERT INTO SAVED_SCHEMAS (SCHEMA_ID, NAME, TYPE, DATA, CREATED_AT) VALUES ($1, $2, $3, $4, $5)",
	}
	// QueryGetSavedSchemaByID is the query to get a saved schema by id.
	QueryGetSavedSchemaByID = dbmodel.DBQuery{
		ID:    "SVS-00004",
		Query: "SELECT SCHEMA_ID, NAME, TYPE, DATA, CREATED_AT FROM SAVED_SCHEMAS WHERE SCHEMA_ID = $1",
	}
	// QueryDeleteSavedSchema is the query to delete a saved schema by id.
	QueryDeleteSavedSchema = dbmodel.DBQuery{
		ID:    "SVS-00005",
		Query: "DELETE FROM SAVED_SCHEMAS WHERE SCHEMA_ID = $1",
	}
)
