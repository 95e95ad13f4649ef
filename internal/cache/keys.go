package cache

import "strings"

const (
	GlobalKeyPrefix = "flagquiz"

	ServiceQuiz  = "quiz"
	ServiceLearn = "learn"

	ObjectSession = "session"
	ObjectDeck    = "deck"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionKey is where a quiz session snapshot is stored.
func SessionKey(id string) string {
	return GenerateCacheKey(ServiceQuiz, ObjectSession, id)
}

// DeckKey is where a learn-mode deck snapshot is stored.
func DeckKey(id string) string {
	return GenerateCacheKey(ServiceLearn, ObjectDeck, id)
}
