package lastfm_test

import (
	"testing"

	"github.com/pkarls/gigography/lastfm"
	"github.com/stretchr/testify/assert"
)

const lineupHTML = `
<html><body>
  <h1 class="event-detail-artists">  Radiohead  </h1>
  <a class="link-block-target" href="/music/Radiohead">Radiohead</a>
  <a class="link-block-target" href="/music/Mogwai">Mogwai</a>
  <a class="link-block-target" href="/music/nobody">   </a>
  <section class="lineup-section">
    <ul>
      <li><a>Sigur Rós</a><a>second anchor is ignored</a></li>
      <li><a>Radiohead</a></li>
      <li>no anchor here</li>
    </ul>
  </section>
  <div class="lineup">
    <ul><li><a>FallbackOnly</a></li></ul>
  </div>
</body></html>`

func TestArtistsUnionsHeuristics(t *testing.T) {
	artists := lastfm.Artists(doc(t, lineupHTML))

	// "Radiohead" appears in all three heuristics but once in the set;
	// the div.lineup fallback is ignored when section.lineup-section
	// is present.
	assert.Equal(t, map[string]struct{}{
		"Radiohead": {},
		"Mogwai":    {},
		"Sigur Rós": {},
	}, artists)
}

func TestArtistsUsingSubset(t *testing.T) {
	artists := lastfm.ArtistsUsing(doc(t, lineupHTML), lastfm.HeuristicHeadings)
	assert.Equal(t, map[string]struct{}{"Radiohead": {}}, artists)

	artists = lastfm.ArtistsUsing(doc(t, lineupHTML), lastfm.HeuristicLineupList)
	assert.Equal(t, map[string]struct{}{"Radiohead": {}, "Sigur Rós": {}}, artists)
}

func TestArtistsLineupDivFallback(t *testing.T) {
	artists := lastfm.ArtistsUsing(doc(t, `
		<div class="lineup"><ul>
			<li><a> Boards of Canada </a></li>
			<li><a>Autechre</a></li>
		</ul></div>
	`), lastfm.HeuristicLineupList)
	assert.Equal(t, map[string]struct{}{
		"Boards of Canada": {},
		"Autechre":         {},
	}, artists)
}

func TestArtistsHeadingLevels(t *testing.T) {
	artists := lastfm.ArtistsUsing(doc(t, `
		<h2 class="event-detail-artists">Low</h2>
		<h3 class="event-detail-artists other-class">Codeine</h3>
		<h4 class="event-detail-artists">too deep, ignored</h4>
	`), lastfm.HeuristicHeadings)
	assert.Equal(t, map[string]struct{}{"Low": {}, "Codeine": {}}, artists)
}

func TestArtistsNoMatchIsEmptyNotError(t *testing.T) {
	artists := lastfm.Artists(doc(t, `<html><body><p>markup drifted again</p></body></html>`))
	assert.Empty(t, artists)
}
