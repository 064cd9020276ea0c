// Package scoring turns raw answer batches into scored results. Everything
// here is pure and deterministic: the same batch always produces the same
// totals, so results can be recomputed outside the request path.
package scoring

import (
	"sort"
	"strconv"
	"strings"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

// ProfileSeparator joins the top-two dimension codes, e.g. "R–I".
const ProfileSeparator = "–"

// ScoreInterests folds a flat item-id → answer batch into per-dimension
// totals and the ranked two-letter profile.
//
// The leading character of each item id names its dimension. Entries whose
// prefix is not one of the six codes, whose value does not parse as an
// integer, or whose value is negative are silently skipped — malformed input
// degrades gracefully instead of aborting the flow.
func ScoreInterests(answers model.AnswerBatch) (model.InterestScore, model.InterestProfile) {
	totals := model.ZeroInterestScore()

	for itemID, raw := range answers {
		if itemID == "" {
			continue
		}
		code := itemID[:1]
		if _, ok := totals[code]; !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || v < 0 {
			continue
		}
		totals[code] += v
	}

	return totals, rankProfile(totals)
}

// rankProfile picks the two highest-scoring codes, descending by score.
// Equal scores break alphabetically, which keeps the profile deterministic
// for any batch.
func rankProfile(totals model.InterestScore) model.InterestProfile {
	ranked := make([]string, len(model.DimensionCodes))
	copy(ranked, model.DimensionCodes)
	sort.SliceStable(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return model.InterestProfile(ranked[0] + ProfileSeparator + ranked[1])
}

// ScoreSelfEfficacy sums every parseable integer answer in the batch,
// regardless of item id, and derives the band from the total. Non-numeric
// values are ignored.
func ScoreSelfEfficacy(answers model.AnswerBatch) model.SelfEfficacyScore {
	total := 0
	for _, raw := range answers {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		total += v
	}
	return model.SelfEfficacyScore{Total: total, Band: BandFor(total)}
}

// BandFor maps a self-efficacy total to its categorical band.
func BandFor(total int) string {
	switch {
	case total <= 30:
		return model.BandLow
	case total <= 45:
		return model.BandMedium
	default:
		return model.BandHigh
	}
}

// AggregateSubmissions reduces a scan result into the panel's summary view.
// Pure fold, independent of which store produced the rows.
func AggregateSubmissions(rows []model.Submission) model.PanelAggregate {
	agg := model.PanelAggregate{
		ProfileFrequencies: make(map[string]int),
	}
	if len(rows) == 0 {
		return agg
	}

	sum := 0
	for _, row := range rows {
		sum += row.EfficacyTotal
		if row.Profile != "" {
			agg.ProfileFrequencies[row.Profile]++
		}
	}
	agg.Count = len(rows)
	agg.MeanEfficacy = float64(sum) / float64(len(rows))
	return agg
}
