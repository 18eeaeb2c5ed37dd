package trick

import (
	"sort"
	"strings"
)

// PresetTags is the fixed tag list offered by the admin form, and shown by
// the gallery's filter bar whenever the library itself carries no tags yet.
// Spins and grabs first, then features, then off-axis rotations.
var PresetTags = []string{
	"FS3", "FS5", "FS7", "FS9",
	"BS3", "BS5", "BS7", "BS9",
	"Cab3", "Cab5", "Cab7",
	"Indy", "Mute", "Stalefish", "Melon", "Tail", "Nose", "Tindy",
	"Kicker", "Rail", "Box", "Pipe", "Natural",
	"Cork", "Rodeo", "Misty", "Bio",
}

// Filter applies the gallery's filtering semantics to the ordered trick
// list provided:
//   - a non-empty (trimmed) search keeps only tricks whose title, any tag,
//     or notes contain the search text, compared case-insensitively;
//   - a non-empty active tag set keeps only tricks carrying ALL the active
//     tags (superset match, not any-of).
//
// The relative order of the input is preserved, and an empty search combined
// with an empty tag set returns the input untouched.
func Filter(tricks []*Trick, search string, activeTags []string) []*Trick {
	result := tricks

	if q := strings.ToLower(strings.TrimSpace(search)); q != "" {
		result = keep(result, func(t *Trick) bool { return t.matchesSearch(q) })
	}

	if len(activeTags) > 0 {
		result = keep(result, func(t *Trick) bool { return t.Tags.ContainsAll(activeTags) })
	}

	return result
}

// Vocabulary derives the tag vocabulary from the trick list: the union of
// every trick's tags, alphabetically sorted. When no trick carries a tag,
// the preset list is returned instead so the filter surface is never empty.
func Vocabulary(tricks []*Trick) []string {
	seen := make(map[string]struct{})
	vocabulary := make([]string, 0)
	for _, t := range tricks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				vocabulary = append(vocabulary, tag)
			}
		}
	}

	if len(vocabulary) == 0 {
		return PresetTags
	}

	sort.Strings(vocabulary)
	return vocabulary
}

// matchesSearch reports whether the (already lowercased) query appears in
// the trick's title, any of its tags, or its notes.
func (t *Trick) matchesSearch(query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}

	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return t.Notes != nil && strings.Contains(strings.ToLower(*t.Notes), query)
}

func keep(tricks []*Trick, predicate func(*Trick) bool) []*Trick {
	out := make([]*Trick, 0, len(tricks))
	for _, t := range tricks {
		if predicate(t) {
			out = append(out, t)
		}
	}

	return out
}
