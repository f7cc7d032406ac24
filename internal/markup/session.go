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
	"sync"

	"github.com/asgardeo/markupgen/internal/markup/form"
	"github.com/asgardeo/markupgen/internal/markup/value"
)

// sessionCacheName is the name of the cache holding editing sessions.
const sessionCacheName = "MarkupSessionCache"

// session owns the form state of one editor. All access goes through mu.
type session struct {
	mu           sync.Mutex
	id           string
	state        *form.State
	lastDocument *value.Record
}

func (s *session) response() *SessionResponse {
	return &SessionResponse{
		ID:     s.id,
		Type:   s.state.TypeName(),
		Fields: s.state.View(),
	}
}
