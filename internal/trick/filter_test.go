package trick_test

import (
	"testing"

	"github.com/learntoride/ltr/internal/trick"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func galleryFixture() []*trick.Trick {
	return []*trick.Trick{
		{Title: "Backside 180", Tags: trick.Tags{"BS", "180", "Jumps"}},
		{Title: "Frontside Boardslide", Tags: trick.Tags{"FS", "Boardslide", "Rails"}, Notes: strPtr("keep shoulders square")},
		{Title: "Method", Tags: trick.Tags{"Grabs", "Jumps"}},
		{Title: "Cab 360", Tags: trick.Tags{"Cab3", "Jumps"}, Notes: strPtr("pop off the heel edge")},
	}
}

func Test_Filter_Search(t *testing.T) {
	gallery := galleryFixture()

	tests := []struct {
		summary        string
		search         string
		expectedTitles []string
	}{
		{"empty search matches everything", "", []string{"Backside 180", "Frontside Boardslide", "Method", "Cab 360"}},
		{"whitespace only search matches everything", "   ", []string{"Backside 180", "Frontside Boardslide", "Method", "Cab 360"}},
		{"title substring case-insensitive", "bAcKsIdE", []string{"Backside 180"}},
		{"tag substring", "rails", []string{"Frontside Boardslide"}},
		{"notes substring", "heel edge", []string{"Cab 360"}},
		{"substring across multiple tricks preserves order", "180", []string{"Backside 180"}},
		{"no match", "tamedog", []string{}},
	}

	for _, test := range tests {
		t.Run(test.summary, func(t *testing.T) {
			result := trick.Filter(gallery, test.search, nil)

			titles := make([]string, 0)
			for _, item := range result {
				titles = append(titles, item.Title)
			}
			assert.Equal(t, test.expectedTitles, titles)
		})
	}
}

func Test_Filter_ActiveTags(t *testing.T) {
	gallery := galleryFixture()

	tests := []struct {
		summary        string
		activeTags     []string
		expectedTitles []string
	}{
		{"single tag", []string{"Jumps"}, []string{"Backside 180", "Method", "Cab 360"}},
		{"multiple tags require all", []string{"Jumps", "Grabs"}, []string{"Method"}},
		{"tag match is exact, not case-insensitive", []string{"jumps"}, []string{}},
		{"unknown tag matches nothing", []string{"Halfpipe"}, []string{}},
	}

	for _, test := range tests {
		t.Run(test.summary, func(t *testing.T) {
			result := trick.Filter(gallery, "", test.activeTags)

			titles := make([]string, 0)
			for _, item := range result {
				titles = append(titles, item.Title)
			}
			assert.Equal(t, test.expectedTitles, titles)
		})
	}
}

func Test_Filter_SearchAndTagsCombine(t *testing.T) {
	gallery := galleryFixture()

	result := trick.Filter(gallery, "cab", []string{"Jumps"})
	assert.Len(t, result, 1)
	assert.Equal(t, "Cab 360", result[0].Title)

	// Both constraints must hold.
	result = trick.Filter(gallery, "boardslide", []string{"Jumps"})
	assert.Empty(t, result)
}

func Test_Filter_DoesNotReorder(t *testing.T) {
	gallery := galleryFixture()

	result := trick.Filter(gallery, "", []string{"Jumps"})
	assert.Equal(t, []*trick.Trick{gallery[0], gallery[2], gallery[3]}, result)
}

func Test_Vocabulary(t *testing.T) {
	t.Run("union of in-use tags, sorted", func(t *testing.T) {
		vocabulary := trick.Vocabulary(galleryFixture())
		assert.Equal(t, []string{"180", "BS", "Boardslide", "Cab3", "FS", "Grabs", "Jumps", "Rails"}, vocabulary)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		vocabulary := trick.Vocabulary([]*trick.Trick{
			{Title: "A", Tags: trick.Tags{"Jumps"}},
			{Title: "B", Tags: trick.Tags{"Jumps"}},
		})
		assert.Equal(t, []string{"Jumps"}, vocabulary)
	})

	t.Run("empty library falls back to presets", func(t *testing.T) {
		vocabulary := trick.Vocabulary(nil)
		assert.Equal(t, trick.PresetTags, vocabulary)
	})
}
