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

package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type NotifierTestSuite struct {
	suite.Suite
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (suite *NotifierTestSuite) TestNotifyKeepsHistoryInOrder() {
	n := NewLogNotifier(10)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return fixed }

	n.Notify(SeveritySuccess, MessageGenerated)
	n.Notify(SeverityError, MessageSaveFailed)

	assert.Equal(suite.T(), []Event{
		{Severity: SeveritySuccess, Message: MessageGenerated, Timestamp: fixed},
		{Severity: SeverityError, Message: MessageSaveFailed, Timestamp: fixed},
	}, n.Recent())
}

func (suite *NotifierTestSuite) TestHistoryIsBounded() {
	n := NewLogNotifier(2)

	n.Notify(SeverityInfo, "one")
	n.Notify(SeverityInfo, "two")
	n.Notify(SeverityInfo, "three")

	recent := n.Recent()
	assert.Len(suite.T(), recent, 2)
	assert.Equal(suite.T(), "two", recent[0].Message)
	assert.Equal(suite.T(), "three", recent[1].Message)
}

func (suite *NotifierTestSuite) TestRecentReturnsCopy() {
	n := NewLogNotifier(0)
	assert.Equal(suite.T(), defaultHistorySize, n.limit)

	n.Notify(SeverityInfo, "one")
	recent := n.Recent()
	recent[0].Message = "changed"

	assert.Equal(suite.T(), "one", n.Recent()[0].Message)
}
