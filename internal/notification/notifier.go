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

// Package notification delivers transient user facing messages about generation and persistence.
package notification

import (
	"slices"
	"sync"
	"time"

	"github.com/asgardeo/markupgen/internal/system/log"
)

// Severity is the kind of a notification.
type Severity string

const (
	// SeverityInfo marks a neutral message.
	SeverityInfo Severity = "info"
	// SeveritySuccess marks a completed action.
	SeveritySuccess Severity = "success"
	// SeverityError marks a failed action.
	SeverityError Severity = "error"
)

// Messages emitted by the markup service.
const (
	MessageGenerated  = "Schema markup generated successfully!"
	MessageSaved      = "Schema saved successfully!"
	MessageLoaded     = "Schema loaded successfully!"
	MessageSaveFailed = "Failed to save schema"
	MessageLoadFailed = "Failed to load schema"
	MessageFixErrors  = "Please fix the errors in the form"
)

const defaultHistorySize = 50

// Event is a single notification.
type Event struct {
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotifierInterface accepts notifications. Delivery never fails from the caller's point of view.
type NotifierInterface interface {
	Notify(severity Severity, message string)
	Recent() []Event
}

// LogNotifier writes notifications to the log and keeps the most recent ones in memory.
type LogNotifier struct {
	mu      sync.Mutex
	history []Event
	limit   int
	now     func() time.Time
	logger  *log.Logger
}

// NewLogNotifier creates a notifier that remembers up to historySize events.
func NewLogNotifier(historySize int) *LogNotifier {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &LogNotifier{
		limit:  historySize,
		now:    time.Now,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Notifier")),
	}
}

// Notify records the event.
func (n *LogNotifier) Notify(severity Severity, message string) {
	event := Event{Severity: severity, Message: message, Timestamp: n.now()}

	switch severity {
	case SeverityError:
		n.logger.Warn(message, log.String("severity", string(severity)))
	default:
		n.logger.Info(message, log.String("severity", string(severity)))
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = append(n.history, event)
	if overflow := len(n.history) - n.limit; overflow > 0 {
		n.history = slices.Delete(n.history, 0, overflow)
	}
}

// Recent returns the remembered events, oldest first.
func (n *LogNotifier) Recent() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.history)
}
