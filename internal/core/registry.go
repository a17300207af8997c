package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	schemaRegistry  = make(map[string]InputSchema)
	profileRegistry = make(map[string]FormatProfile)
	registryMu      sync.RWMutex
)

// RegisterSchema adds an input schema to the registry.
// Panics if the schema is invalid or a schema with the same key is already
// registered. Registration happens at init time, so a panic here is a
// programming error, not a runtime condition.
func RegisterSchema(s InputSchema) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("invalid schema: %v", err))
	}
	if _, exists := schemaRegistry[s.Key]; exists {
		panic(fmt.Sprintf("schema already registered: %s", s.Key))
	}

	schemaRegistry[s.Key] = s
}

// GetSchema returns an input schema by key.
// Returns false if not found.
func GetSchema(key string) (InputSchema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := schemaRegistry[key]
	return s, ok
}

// Schemas returns all registered input schemas.
// Sorted by key for consistent ordering.
func Schemas() []InputSchema {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]InputSchema, 0, len(schemaRegistry))
	for _, s := range schemaRegistry {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// RegisterProfile adds a format profile to the registry.
// Panics if the profile is invalid or a profile with the same key is
// already registered.
func RegisterProfile(p FormatProfile) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("invalid profile: %v", err))
	}
	if _, exists := profileRegistry[p.Key]; exists {
		panic(fmt.Sprintf("profile already registered: %s", p.Key))
	}

	profileRegistry[p.Key] = p
}

// GetProfile returns a format profile by key.
// Returns false if not found.
func GetProfile(key string) (FormatProfile, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := profileRegistry[key]
	return p, ok
}

// Profiles returns all registered format profiles.
// Sorted by key for consistent ordering.
func Profiles() []FormatProfile {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]FormatProfile, 0, len(profileRegistry))
	for _, p := range profileRegistry {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}
