package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "session",
			identifier:  "01HX",
			paramsKey:   nil,
			expectedKey: "flagquiz:quiz:session:01HX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "session",
			identifier:  "01HX",
			paramsKey:   []string{},
			expectedKey: "flagquiz:quiz:session:01HX",
		},
		{
			name:        "with one paramsKey",
			serviceName: "catalog",
			objectType:  "pool",
			identifier:  "Americas",
			paramsKey:   []string{"all"},
			expectedKey: "flagquiz:catalog:pool:Americas:all",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "catalog",
			objectType:  "pool",
			identifier:  "Europe",
			paramsKey:   []string{"Northern Europe", "v2"},
			expectedKey: "flagquiz:catalog:pool:Europe:Northern Europe_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestSessionAndDeckKeys(t *testing.T) {
	assert.Equal(t, "flagquiz:quiz:session:abc", SessionKey("abc"))
	assert.Equal(t, "flagquiz:learn:deck:abc", DeckKey("abc"))
}
