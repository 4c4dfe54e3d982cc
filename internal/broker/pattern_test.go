package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"*.grading", "create.grading", true},
		{"*.grading", "get.grading", true},
		{"*.grading", "create.delivery", false},
		{"*.grading", "grading", false},
		{"*.grading", "a.b.grading", false},
		{"*.update", "status.update", true},
		{"*.update", "result.update", true},
		{"*.update", "delivery.update", true},
		{"*.externalGrading", "create.externalGrading", true},
		{"*.externalGrading", "update.externalgrading", false},
		{"*.notify", "refund.notify", true},
		{"*.deadletter", "create.deadletter", true},
		{"#", "anything.at.all", true},
		{"#", "", true},
		{"create.#", "create", true},
		{"create.#", "create.grading.v2", true},
		{"#.notify", "refund.notify", true},
		{"#.notify", "notify", true},
		{"a.#.z", "a.z", true},
		{"a.#.z", "a.b.c.z", true},
		{"a.#.z", "a.b.c", false},
		{"create.grading", "create.grading", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesPattern(tt.pattern, tt.key))
		})
	}
}

func TestMatchesAny_QueueBindings(t *testing.T) {
	grading := []string{"*.grading", "*.update"}

	assert.True(t, MatchesAny(grading, "delivery.update"))
	assert.False(t, MatchesAny(grading, "delivery.notify"))
	assert.False(t, MatchesAny(nil, "create.grading"))
}
