package classifier

import (
	"strings"

	"github.com/neurosort/neurosort-api/internal/entity"
)

// Resolve maps the model's free-form answer to a category by a first-match-wins,
// case-sensitive substring scan. Priority: Recyclable > Compost > Non-Recyclable.
//
// Known fragility: this relies on the model mentioning the label verbatim.
// TODO: replace with a response_schema contract once the endpoint requests
// structured output from the model.
func Resolve(text string) entity.Category {
	if strings.Contains(text, "Recyclable") {
		return entity.CategoryRecyclable
	}
	if strings.Contains(text, "Compost") {
		return entity.CategoryCompost
	}
	return entity.CategoryNonRecyclable
}
