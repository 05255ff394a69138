package alpha_test

import (
	"strings"
	"testing"

	"github.com/pkarls/gigography/alpha"
	"github.com/stretchr/testify/assert"
)

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

func TestKey(t *testing.T) {
	assert.Equal(t, "the beatles", alpha.Key("The Beatles", false))
	assert.Equal(t, "beatles", alpha.Key("The Beatles", true))
	assert.Equal(t, "the", alpha.Key("The The", true))
	// "the " with nothing after it is not an article
	assert.Equal(t, "the ", alpha.Key("The ", true))
	assert.Equal(t, "theremin", alpha.Key("Theremin", true))
}

func TestSortIgnoringArticle(t *testing.T) {
	artists := set("the Beatles", "ABBA", "Zebra", "123 Band")
	assert.Equal(t,
		[]string{"123 Band", "ABBA", "the Beatles", "Zebra"},
		alpha.Sort(artists, true))
}

func TestSortPlain(t *testing.T) {
	artists := set("The Zombies", "Aerosmith", "Big Star")
	assert.Equal(t,
		[]string{"Aerosmith", "Big Star", "The Zombies"},
		alpha.Sort(artists, false))
	assert.Equal(t,
		[]string{"Aerosmith", "Big Star", "The Zombies"},
		alpha.Sort(artists, true))
}

func TestSortIsDeterministicAcrossCase(t *testing.T) {
	artists := set("abba", "ABBA")
	assert.Equal(t, []string{"ABBA", "abba"}, alpha.Sort(artists, false))
}

func TestGroupIsExhaustive(t *testing.T) {
	sorted := alpha.Sort(set(
		"123 Band", "!!!", "ABBA", "the Beatles", "Zebra", "Édith Piaf",
	), true)

	sections := alpha.Group(sorted, true)
	assert.Len(t, sections, 27)

	placed := map[string]int{}
	for _, section := range sections {
		for _, name := range section.Artists {
			placed[name]++
		}
	}
	for _, name := range sorted {
		assert.Equal(t, 1, placed[name], "artist %q should land in exactly one section", name)
	}
}

func TestGroupBuckets(t *testing.T) {
	sorted := alpha.Sort(set("123 Band", "Édith Piaf", "the Beatles", "ABBA"), true)
	sections := alpha.Group(sorted, true)

	assert.Equal(t, "# (Numbers & Symbols)", sections[0].Heading)
	// Non-ASCII initials share the symbols bucket with numbers.
	assert.Equal(t, []string{"123 Band", "Édith Piaf"}, sections[0].Artists)
	assert.Equal(t, []string{"ABBA"}, sections[1].Artists)
	assert.Equal(t, []string{"the Beatles"}, sections[2].Artists)
}

func TestGroupWithoutArticleStripping(t *testing.T) {
	sections := alpha.Group([]string{"the Beatles"}, false)
	assert.Equal(t, []string{"the Beatles"}, sections['T'-'A'+1].Artists)
}

func TestWriteList(t *testing.T) {
	var buf strings.Builder
	err := alpha.WriteList(&buf, []string{"ABBA", "Zebra"})
	assert.NoError(t, err)
	assert.Equal(t,
		"Artists (2 unique):\n"+
			strings.Repeat("-", 50)+"\n"+
			"ABBA\n"+
			"Zebra\n",
		buf.String())
}

func TestWriteGrouped(t *testing.T) {
	sorted := alpha.Sort(set("123 Band", "ABBA", "the Beatles", "Zebra"), true)

	var buf strings.Builder
	err := alpha.WriteGrouped(&buf, sorted, true)
	assert.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Artists (4 unique):\n"))
	assert.Contains(t, out, "\n=== # (Numbers & Symbols) ===\n123 Band\n")
	assert.Contains(t, out, "\n=== A ===\nABBA\n")
	assert.Contains(t, out, "\n=== B ===\nthe Beatles\n")
	assert.Contains(t, out, "\n=== Z ===\nZebra\n")
	// 23 of the 26 letter sections are empty.
	assert.Equal(t, 23, strings.Count(out, "(none)"))
	assert.Equal(t, 27, strings.Count(out, "===")/2)
}
