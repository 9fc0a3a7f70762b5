package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		query string
		want  domain.Category
	}{
		{
			name:  "unity teleportation query",
			query: "How to set up VR teleportation in Unity?",
			want:  domain.CategoryUnity,
		},
		{
			name:  "unreal multiplayer query",
			query: "Multiplayer setup in Unreal for a coop game",
			want:  domain.CategoryUnreal,
		},
		{
			name:  "shader occlusion query",
			query: "Occlusion shader with depth testing",
			want:  domain.CategoryShader,
		},
		{
			name:  "no keyword matches",
			query: "hello world, how do I get going?",
			want:  domain.CategoryGeneral,
		},
		{
			name:  "tie resolves toward unity",
			query: "unity unreal",
			want:  domain.CategoryUnity,
		},
		{
			name:  "case insensitive",
			query: "UNITY TELEPORT setup",
			want:  domain.CategoryUnity,
		},
		{
			name:  "empty query",
			query: "",
			want:  domain.CategoryGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.query))
		})
	}
}

func TestClassifier_Classify_deterministic(t *testing.T) {
	c := NewClassifier()
	query := "unity shader material rendering"

	first := c.Classify(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(query))
	}
}
