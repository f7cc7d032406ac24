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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
	clock time.Time
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

func (suite *InMemoryCacheTestSuite) SetupTest() {
	suite.clock = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *InMemoryCacheTestSuite) newCache(size int, ttl time.Duration) *inMemoryCache[string] {
	c := newInMemoryCache[string]("test", size, ttl)
	c.now = func() time.Time { return suite.clock }
	return c
}

func (suite *InMemoryCacheTestSuite) TestDefaults() {
	c := newInMemoryCache[string]("test", 0, 0)
	assert.Equal(suite.T(), defaultCacheSize, c.size)
	assert.Equal(suite.T(), defaultCacheTTL*time.Second, c.ttl)
}

func (suite *InMemoryCacheTestSuite) TestSetGetDelete() {
	c := suite.newCache(10, time.Minute)
	key := CacheKey{Key: "a"}

	c.Set(key, "one")
	v, ok := c.Get(key)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "one", v)

	c.Set(key, "two")
	v, _ = c.Get(key)
	assert.Equal(suite.T(), "two", v)

	c.Delete(key)
	_, ok = c.Get(key)
	assert.False(suite.T(), ok)

	stats := c.GetStats()
	assert.Equal(suite.T(), int64(2), stats.HitCount)
	assert.Equal(suite.T(), int64(1), stats.MissCount)
	assert.Equal(suite.T(), 0, stats.Size)
}

func (suite *InMemoryCacheTestSuite) TestLRUEviction() {
	c := suite.newCache(2, time.Minute)
	c.Set(CacheKey{Key: "a"}, "A")
	c.Set(CacheKey{Key: "b"}, "B")

	_, _ = c.Get(CacheKey{Key: "a"})
	c.Set(CacheKey{Key: "c"}, "C")

	_, ok := c.Get(CacheKey{Key: "b"})
	assert.False(suite.T(), ok)
	_, ok = c.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), ok)
	_, ok = c.Get(CacheKey{Key: "c"})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), int64(1), c.GetStats().EvictCount)
}

func (suite *InMemoryCacheTestSuite) TestExpiry() {
	c := suite.newCache(10, time.Minute)
	c.Set(CacheKey{Key: "a"}, "A")

	suite.clock = suite.clock.Add(30 * time.Second)
	_, ok := c.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), ok)

	// the hit renewed the entry
	suite.clock = suite.clock.Add(45 * time.Second)
	_, ok = c.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), ok)

	suite.clock = suite.clock.Add(2 * time.Minute)
	_, ok = c.Get(CacheKey{Key: "a"})
	assert.False(suite.T(), ok)
	assert.Equal(suite.T(), 0, c.GetStats().Size)
}

func (suite *InMemoryCacheTestSuite) TestCleanupExpired() {
	c := suite.newCache(10, time.Minute)
	c.Set(CacheKey{Key: "a"}, "A")
	suite.clock = suite.clock.Add(50 * time.Second)
	c.Set(CacheKey{Key: "b"}, "B")

	suite.clock = suite.clock.Add(20 * time.Second)
	assert.Equal(suite.T(), 1, c.CleanupExpired())
	assert.Equal(suite.T(), 1, c.GetStats().Size)
	_, ok := c.Get(CacheKey{Key: "b"})
	assert.True(suite.T(), ok)
}

func (suite *InMemoryCacheTestSuite) TestClear() {
	c := suite.newCache(10, time.Minute)
	c.Set(CacheKey{Key: "a"}, "A")
	_, _ = c.Get(CacheKey{Key: "a"})

	c.Clear()

	assert.Equal(suite.T(), CacheStat{Enabled: true, MaxSize: 10}, c.GetStats())
}
