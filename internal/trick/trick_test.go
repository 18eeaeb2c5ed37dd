package trick_test

import (
	"testing"

	"github.com/learntoride/ltr/internal/trick"
	"github.com/stretchr/testify/assert"
)

func Test_Tags_WithCustom(t *testing.T) {
	tests := []struct {
		summary       string
		existing      trick.Tags
		input         string
		expected      trick.Tags
		expectedAdded bool
	}{
		{"normalises to uppercase and trims", trick.Tags{}, "  tamedog ", trick.Tags{"TAMEDOG"}, true},
		{"blank input is rejected", trick.Tags{"BS"}, "   ", trick.Tags{"BS"}, false},
		{"case-insensitive duplicate is rejected", trick.Tags{"Jumps"}, "JUMPS", trick.Tags{"Jumps"}, false},
		{"appends preserving existing order", trick.Tags{"BS", "180"}, "switch", trick.Tags{"BS", "180", "SWITCH"}, true},
	}

	for _, test := range tests {
		t.Run(test.summary, func(t *testing.T) {
			result, added := test.existing.WithCustom(test.input)
			assert.Equal(t, test.expected, result)
			assert.Equal(t, test.expectedAdded, added)
		})
	}
}

func Test_Tags_WithCustom_DoesNotMutateReceiver(t *testing.T) {
	original := trick.Tags{"BS"}
	result, added := original.WithCustom("new")

	assert.True(t, added)
	assert.Equal(t, trick.Tags{"BS"}, original)
	assert.Equal(t, trick.Tags{"BS", "NEW"}, result)
}

func Test_NewTags(t *testing.T) {
	tests := []struct {
		summary  string
		selected []string
		custom   []string
		expected trick.Tags
	}{
		{"selected tags kept verbatim", []string{"BS", "Jumps"}, nil, trick.Tags{"BS", "Jumps"}},
		{"blank selected entries dropped", []string{"BS", "", "  "}, nil, trick.Tags{"BS"}},
		{"case-insensitive duplicates collapse to first", []string{"Jumps", "JUMPS"}, nil, trick.Tags{"Jumps"}},
		{"custom tags normalised and appended", []string{"Rails"}, []string{"boardslide"}, trick.Tags{"Rails", "BOARDSLIDE"}},
		{"custom duplicate of selected is dropped", []string{"Rails"}, []string{"rails"}, trick.Tags{"Rails"}},
		{"nothing in, empty set out", nil, nil, trick.Tags{}},
	}

	for _, test := range tests {
		t.Run(test.summary, func(t *testing.T) {
			assert.Equal(t, test.expected, trick.NewTags(test.selected, test.custom))
		})
	}
}

func Test_Tags_ContainsAll(t *testing.T) {
	tags := trick.Tags{"BS", "180", "Jumps"}

	assert.True(t, tags.ContainsAll(nil))
	assert.True(t, tags.ContainsAll([]string{"BS"}))
	assert.True(t, tags.ContainsAll([]string{"Jumps", "180"}))
	assert.False(t, tags.ContainsAll([]string{"bs"}))
	assert.False(t, tags.ContainsAll([]string{"BS", "Rails"}))
}
