// Package matching scores a newly posted item against the pool of items
// with the opposite status to surface probable matches. The scoring is a
// pure function of the new item and the candidate pool: no I/O, no
// randomness, identical output across runs.
package matching

import (
	"math"
	"sort"
	"strings"

	"campusfind/lostfound-api/model"
)

const (
	categoryWeight = 40
	locationExact  = 30
	locationNear   = 20
	recencyClose   = 15
	recencyNear    = 10
	nameExact      = 15

	descriptionBonusCap  = 10
	descriptionWordScore = 2
	descriptionMinWord   = 3

	// Candidates below this total are not worth showing
	scoreThreshold = 60

	maxMatches = 5
)

// Match pairs a candidate item with its total score.
type Match struct {
	Item  model.Item `json:"item"`
	Score int        `json:"score"`
}

// Rank scores every candidate of the opposite status against newItem and
// returns at most the top five scoring at least the threshold, descending.
// Candidates with equal scores keep their enumeration order.
func Rank(newItem model.Item, candidates []model.Item) []Match {
	opposite := newItem.OppositeStatus()

	var matches []Match
	for _, cand := range candidates {
		if cand.Status != opposite {
			continue
		}

		score, ok := Score(newItem, cand)
		if !ok || score < scoreThreshold {
			continue
		}

		matches = append(matches, Match{Item: cand, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	return matches
}

// Score computes the weighted multi-factor score between two items. The
// second return is false when the category gate fails, which disqualifies
// the candidate outright regardless of the other factors.
func Score(newItem, cand model.Item) (int, bool) {
	// Category is mandatory: empty on either side or any case-insensitive
	// difference drops the candidate
	if cand.Category == "" || newItem.Category == "" ||
		!strings.EqualFold(cand.Category, newItem.Category) {
		return 0, false
	}
	score := categoryWeight

	score += locationScore(newItem.Location, cand.Location)
	score += recencyScore(newItem, cand)
	score += nameScore(newItem.Name, cand.Name)
	score += descriptionBonus(newItem.Description, cand.Description)

	return score, true
}

func locationScore(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	switch {
	case a == b:
		return locationExact
	case strings.Contains(a, b) || strings.Contains(b, a):
		return locationNear
	default:
		return 0
	}
}

func recencyScore(a, b model.Item) int {
	days := math.Abs(a.Date.Sub(b.Date).Hours() / 24)

	switch {
	case days <= 3:
		return recencyClose
	case days <= 7:
		return recencyNear
	default:
		return 0
	}
}

func nameScore(newName, candName string) int {
	if newName == "" || candName == "" {
		return 0
	}

	newName = strings.ToLower(strings.TrimSpace(newName))
	candName = strings.ToLower(strings.TrimSpace(candName))

	if newName == candName {
		return nameExact
	}

	newWords := strings.Fields(newName)
	candWords := strings.Fields(candName)

	seen := make(map[string]bool, len(candWords))
	for _, w := range candWords {
		seen[w] = true
	}

	common := 0
	counted := make(map[string]bool, len(newWords))
	for _, w := range newWords {
		if seen[w] && !counted[w] {
			common++
			counted[w] = true
		}
	}

	if common == 0 {
		return 0
	}

	longest := len(newWords)
	if len(candWords) > longest {
		longest = len(candWords)
	}

	return nameExact * common / longest
}

// descriptionBonus rewards shared descriptive words on top of the 100-point
// base. Words of the new item's description longer than three characters
// that appear anywhere in the candidate's description each add two points,
// capped at ten.
func descriptionBonus(newDesc, candDesc string) int {
	if newDesc == "" || candDesc == "" {
		return 0
	}

	candDesc = strings.ToLower(candDesc)

	count := 0
	for _, w := range strings.Fields(strings.ToLower(newDesc)) {
		if len(w) > descriptionMinWord && strings.Contains(candDesc, w) {
			count++
		}
	}

	if count == 0 {
		return 0
	}

	bonus := count * descriptionWordScore
	if bonus > descriptionBonusCap {
		bonus = descriptionBonusCap
	}

	return bonus
}
