package classifier

import (
	"testing"

	"github.com/neurosort/neurosort-api/internal/entity"
	"github.com/stretchr/testify/assert"
)

// TestResolve проверяет приоритет и чувствительность к регистру
func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected entity.Category
	}{
		{
			name:     "recyclable keyword alone",
			text:     "This is a plastic bottle. Recyclable.",
			expected: entity.CategoryRecyclable,
		},
		{
			name:     "recyclable wins over compost",
			text:     "Could be Compost, but the label says Recyclable",
			expected: entity.CategoryRecyclable,
		},
		{
			name:     "recyclable matched anywhere in the text",
			text:     "...after careful inspection: Recyclable material (PET)",
			expected: entity.CategoryRecyclable,
		},
		{
			name:     "non-recyclable answer still hits the recyclable branch",
			text:     "This item is Non-Recyclable",
			expected: entity.CategoryRecyclable,
		},
		{
			name:     "compost only",
			text:     "Banana peel, organic waste. Compost it.",
			expected: entity.CategoryCompost,
		},
		{
			name:     "no keyword falls through",
			text:     "I cannot tell what this object is.",
			expected: entity.CategoryNonRecyclable,
		},
		{
			name:     "lowercase keyword does not match",
			text:     "this looks recyclable to me",
			expected: entity.CategoryNonRecyclable,
		},
		{
			name:     "empty answer",
			text:     "",
			expected: entity.CategoryNonRecyclable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.text))
		})
	}
}
