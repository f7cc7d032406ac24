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

// Package document wraps validated values into JSON-LD documents.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/asgardeo/markupgen/internal/markup/value"
)

const (
	// ContextTag is the vocabulary context of every generated document.
	ContextTag = "https://schema.org"
	// KeyContext is the document key holding the vocabulary context.
	KeyContext = "@context"
	// KeyType is the document key holding the type name.
	KeyType = "@type"
)

// ErrNotADocument is returned when a record carries no type tag.
var ErrNotADocument = errors.New("record is not a generated document")

// Assemble returns the document for a validated value tree: the context and type tags first,
// followed by the top level fields of tree in their order. tree is not validated.
func Assemble(typeName string, tree *value.Record) *value.Record {
	doc := value.NewRecord()
	doc.Set(KeyContext, ContextTag)
	doc.Set(KeyType, typeName)
	for _, k := range tree.Keys() {
		if k == KeyContext || k == KeyType {
			continue
		}
		v, _ := tree.Get(k)
		doc.Set(k, v)
	}
	return doc
}

// Split recovers the type name and the data fields of a generated document.
func Split(doc *value.Record) (string, *value.Record, error) {
	raw, ok := doc.Get(KeyType)
	typeName, isString := raw.(string)
	if !ok || !isString || strings.TrimSpace(typeName) == "" {
		return "", nil, ErrNotADocument
	}
	data := value.NewRecord()
	for _, k := range doc.Keys() {
		if k == KeyContext || k == KeyType {
			continue
		}
		v, _ := doc.Get(k)
		data.Set(k, v)
	}
	return typeName, data, nil
}

// Marshal serializes the document as indented JSON with keys in declaration order.
func Marshal(doc *value.Record) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return string(data), nil
}

// ScriptTag returns the document embedded in a JSON-LD script element.
func ScriptTag(doc *value.Record) (string, error) {
	body, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	return "<script type=\"application/ld+json\">\n" + body + "\n</script>", nil
}
