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

// Package cache provides named in-memory caches with size bounded LRU eviction and TTL expiry.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/asgardeo/markupgen/internal/system/config"
	"github.com/asgardeo/markupgen/internal/system/log"
)

const loggerComponentName = "Cache"

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T)
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey)
	Clear()
	IsEnabled() bool
	GetStats() CacheStat
	CleanupExpired()
	Close()
}

// Cache implements the CacheInterface. A disabled cache accepts every call and stores nothing.
type Cache[T any] struct {
	name     string
	internal *inMemoryCache[T]
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCache creates a cache with the settings configured for the given name and starts its
// periodic cleanup of expired entries.
func NewCache[T any](cacheName string) CacheInterface[T] {
	return newCacheFromConfig[T](cacheName, config.GetServerRuntime().Config.Cache)
}

func newCacheFromConfig[T any](cacheName string, cacheConfig config.CacheConfig) *Cache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("cacheName", cacheName))

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheConfig.Disabled || cacheProperty.Disabled {
		logger.Debug("Cache is disabled, returning empty cache")
		return &Cache[T]{name: cacheName}
	}

	if cacheConfig.Type != "" && !strings.EqualFold(cacheConfig.Type, cacheTypeInMemory) {
		logger.Warn("Unknown cache type, defaulting to in-memory cache", log.String("type", cacheConfig.Type))
	}
	policy := cacheProperty.EvictionPolicy
	if policy == "" {
		policy = cacheConfig.EvictionPolicy
	}
	if policy != "" && !strings.EqualFold(policy, evictionPolicyLRU) {
		logger.Warn("Unsupported eviction policy, defaulting to LRU", log.String("evictionPolicy", policy))
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = cacheConfig.Size
	}
	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = cacheConfig.TTL
	}

	c := &Cache[T]{
		name:     cacheName,
		internal: newInMemoryCache[T](cacheName, size, time.Duration(ttl)*time.Second),
		stop:     make(chan struct{}),
	}
	c.startCleanupRoutine(getCleanupInterval(cacheConfig))
	return c
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.name
}

// Set stores a value in the cache.
func (c *Cache[T]) Set(key CacheKey, value T) {
	if c.IsEnabled() {
		c.internal.Set(key, value)
	}
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	if c.IsEnabled() {
		return c.internal.Get(key)
	}
	var zero T
	return zero, false
}

// Delete removes a value from the cache.
func (c *Cache[T]) Delete(key CacheKey) {
	if c.IsEnabled() {
		c.internal.Delete(key)
	}
}

// Clear removes all entries in the cache.
func (c *Cache[T]) Clear() {
	if c.IsEnabled() {
		c.internal.Clear()
	}
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.internal != nil
}

// GetStats returns the cache statistics.
func (c *Cache[T]) GetStats() CacheStat {
	if !c.IsEnabled() {
		return CacheStat{}
	}
	return c.internal.GetStats()
}

// CleanupExpired removes expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.IsEnabled() {
		return
	}
	if cleaned := c.internal.CleanupExpired(); cleaned > 0 {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
			log.String("cacheName", c.name)).Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
}

// Close stops the cleanup routine. The cache stays usable.
func (c *Cache[T]) Close() {
	if c.stop != nil {
		c.stopOnce.Do(func() { close(c.stop) })
	}
}

// startCleanupRoutine starts a background routine to clean up expired entries.
func (c *Cache[T]) startCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.CleanupExpired()
			case <-c.stop:
				return
			}
		}
	}()

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("cacheName", c.name)).Debug("Cache cleanup routine started", log.Any("interval", interval))
}

// getCacheProperty retrieves the cache property for the specified cache name.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{}
}

// getCleanupInterval retrieves the cleanup interval from the cache configuration.
func getCleanupInterval(cacheConfig config.CacheConfig) time.Duration {
	interval := cacheConfig.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return time.Duration(interval) * time.Second
}
