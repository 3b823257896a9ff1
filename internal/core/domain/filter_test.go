package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestAdFilterValidate(t *testing.T) {
	assert.NoError(t, AdFilter{AdType: AdTypePopunder, Category: CategoryAdult}.Validate())
	assert.ErrorIs(t, AdFilter{AdType: "", Category: CategoryAdult}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, AdFilter{AdType: AdTypePopunder, Category: "news"}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, AdFilter{AdType: AdTypePopunder, Category: CategoryAdult, MinBid: -1}.Validate(), ErrInvalidRequest)
}

func TestAdFilterWithoutDoesNotAlias(t *testing.T) {
	base := AdFilter{Exclude: make([]string, 1, 4)}
	base.Exclude[0] = "a"

	first := base.Without("b")
	second := base.Without("c")

	assert.Equal(t, []string{"a"}, base.Exclude)
	assert.Equal(t, []string{"a", "b"}, first.Exclude)
	assert.Equal(t, []string{"a", "c"}, second.Exclude)
	assert.True(t, first.Excludes("b"))
	assert.False(t, first.Excludes("c"))
}

func TestNewViewerRecord(t *testing.T) {
	rec := NewViewerRecord(Viewer{IP: "1.2.3.4", UserAgent: "curl/8"}, "c1", fixedTime)
	assert.Equal(t, ViewerKey{IP: "1.2.3.4", CampaignID: "c1"}, rec.ViewerKey)
	assert.Equal(t, int64(1), rec.VisitCount)
	assert.Equal(t, fixedTime, rec.FirstSeenAt)
	assert.Equal(t, fixedTime, rec.LastSeenAt)
}

func TestViewerKeyCompare(t *testing.T) {
	a := ViewerKey{IP: "9.9.9.9", CampaignID: "c1"}
	b := ViewerKey{IP: "1.1.1.1", CampaignID: "c2"}
	c := ViewerKey{IP: "2.2.2.2", CampaignID: "c2"}

	assert.Negative(t, a.Compare(b), "campaign id decides first")
	assert.Negative(t, b.Compare(c))
	assert.Positive(t, c.Compare(b))
	assert.Zero(t, c.Compare(c))
}
