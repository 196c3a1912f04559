package matching

import (
	"testing"
	"time"

	"campusfind/lostfound-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func lostItem() model.Item {
	return model.Item{
		Name:     "Blue Wallet",
		Category: "Wallet",
		Location: "Library",
		Date:     base,
		Status:   model.StatusLost,
	}
}

func TestScoreFullMatch(t *testing.T) {
	newItem := lostItem()
	cand := model.Item{
		Name:     "blue wallet",
		Category: "wallet",
		Location: "library",
		Date:     base.Add(-24 * time.Hour),
		Status:   model.StatusFound,
	}

	score, ok := Score(newItem, cand)
	require.True(t, ok)
	assert.Equal(t, 100, score)
}

func TestScoreCategoryGate(t *testing.T) {
	newItem := lostItem()

	cases := []struct {
		name         string
		newCategory  string
		candCategory string
	}{
		{"candidate empty", "Wallet", ""},
		{"new empty", "", "Wallet"},
		{"both empty", "", ""},
		{"different", "Wallet", "Phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := newItem
			n.Category = tc.newCategory

			cand := lostItem()
			cand.Status = model.StatusFound
			cand.Category = tc.candCategory

			score, ok := Score(n, cand)
			assert.False(t, ok)
			assert.Zero(t, score)
		})
	}
}

func TestScoreCategoryCaseInsensitive(t *testing.T) {
	newItem := lostItem()
	newItem.Category = "WALLET"

	cand := lostItem()
	cand.Status = model.StatusFound
	cand.Category = "wallet"

	_, ok := Score(newItem, cand)
	assert.True(t, ok)
}

func TestLocationScore(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"Library", "library", 30},
		{" Library ", "Library", 30},
		{"Main Library", "Library", 20},
		{"Library", "Main Library", 20},
		{"Gate A", "Gate B", 0},
		{"", "Library", 0},
		{"Library", "", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, locationScore(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestRecencyScore(t *testing.T) {
	cases := []struct {
		name string
		diff time.Duration
		want int
	}{
		{"same moment", 0, 15},
		{"exactly 3 days", 72 * time.Hour, 15},
		{"just past 3 days", 72*time.Hour + 6*time.Hour, 10},
		{"exactly 7 days", 7 * 24 * time.Hour, 10},
		{"just past 7 days", 7*24*time.Hour + 6*time.Hour, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := model.Item{Date: base}
			b := model.Item{Date: base.Add(-tc.diff)}

			assert.Equal(t, tc.want, recencyScore(a, b))
			// Symmetric in either direction
			assert.Equal(t, tc.want, recencyScore(b, a))
		})
	}
}

func TestNameScore(t *testing.T) {
	cases := []struct {
		newName, candName string
		want              int
	}{
		{"Blue Wallet", "blue wallet", 15},
		{"black wallet", "black leather wallet", 10},
		{"black wallet", "red phone", 0},
		{"", "wallet", 0},
		{"wallet", "", 0},
		// Repeated words count once
		{"wallet wallet wallet", "wallet case", 5},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, nameScore(tc.newName, tc.candName), "%q vs %q", tc.newName, tc.candName)
	}
}

func TestDescriptionBonus(t *testing.T) {
	assert.Equal(t, 0, descriptionBonus("", "anything"))
	assert.Equal(t, 0, descriptionBonus("anything", ""))

	// "black", "leather", "wallet" appear, "zipper" doesn't. Short words
	// like "a" never count.
	got := descriptionBonus(
		"black leather wallet zipper",
		"Found a BLACK LEATHER wallet near the gym",
	)
	assert.Equal(t, 6, got)

	// Six shared long words would be 12, capped at 10
	got = descriptionBonus(
		"alpha bravo charlie delta echoes foxtrot",
		"alpha bravo charlie delta echoes foxtrot",
	)
	assert.Equal(t, 10, got)
}

func TestRankThreshold(t *testing.T) {
	newItem := model.Item{
		Name:     "blue nike running shoe lost near gym",
		Category: "Other",
		Date:     base,
		Status:   model.StatusLost,
	}

	// 40 category + 15 recency + 4 name (2 of 7 words) = 59
	under := model.Item{
		Name:     "nike shoe",
		Category: "Other",
		Date:     base,
		Status:   model.StatusFound,
	}

	score, ok := Score(newItem, under)
	require.True(t, ok)
	require.Equal(t, 59, score)

	assert.Empty(t, Rank(newItem, []model.Item{under}))

	// 40 category + 15 recency + 5 name (1 of 3 words) = 60
	newItem.Name = "red umbrella here"
	at := model.Item{
		Name:     "red thing",
		Category: "Other",
		Date:     base,
		Status:   model.StatusFound,
	}

	score, ok = Score(newItem, at)
	require.True(t, ok)
	require.Equal(t, 60, score)

	matches := Rank(newItem, []model.Item{at})
	require.Len(t, matches, 1)
	assert.Equal(t, 60, matches[0].Score)
}

func TestRankSkipsSameStatus(t *testing.T) {
	newItem := lostItem()

	twin := lostItem() // identical but also Lost
	assert.Empty(t, Rank(newItem, []model.Item{twin}))
}

func TestRankTopFiveStable(t *testing.T) {
	newItem := model.Item{
		Name:     "some phone",
		Category: "Phone",
		Location: "Library",
		Date:     base,
		Status:   model.StatusLost,
	}

	cand := func(id int64, daysAgo int) model.Item {
		return model.Item{
			ID:       id,
			Name:     "unrelated",
			Category: "Phone",
			Location: "Library",
			Date:     base.Add(-time.Duration(daysAgo) * 24 * time.Hour),
			Status:   model.StatusFound,
		}
	}

	// Base 70 (category + exact location) plus recency:
	// ids 1,2 -> 85; ids 3,4 -> 80; ids 5,6 -> 70
	candidates := []model.Item{
		cand(5, 10), cand(3, 5), cand(1, 1), cand(6, 12), cand(4, 6), cand(2, 2),
	}

	matches := Rank(newItem, candidates)
	require.Len(t, matches, 5)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}

	// Equal scores keep enumeration order, so id 6 (the later of the two
	// 70-pointers) is the one cut
	ids := make([]int64, 0, 5)
	for _, m := range matches {
		ids = append(ids, m.Item.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids)
}

func TestRankDeterministic(t *testing.T) {
	newItem := lostItem()

	candidates := []model.Item{}
	for i := int64(1); i <= 8; i++ {
		c := lostItem()
		c.ID = i
		c.Status = model.StatusFound
		c.Date = base.Add(-time.Duration(i) * 24 * time.Hour)
		candidates = append(candidates, c)
	}

	first := Rank(newItem, candidates)
	for range 10 {
		assert.Equal(t, first, Rank(newItem, candidates))
	}
}
