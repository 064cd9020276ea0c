package scoring

import (
	"reflect"
	"testing"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

func TestScoreInterestsExampleBatch(t *testing.T) {
	answers := model.AnswerBatch{
		"R1": "4", "R2": "3", "I1": "5", "A1": "1", "S1": "2", "E1": "0", "C1": "0",
	}

	score, profile := ScoreInterests(answers)

	want := model.InterestScore{"R": 7, "I": 5, "A": 1, "S": 2, "E": 0, "C": 0}
	if !reflect.DeepEqual(score, want) {
		t.Fatalf("score = %v, want %v", score, want)
	}
	if profile != "R–I" {
		t.Fatalf("profile = %q, want %q", profile, "R–I")
	}
}

func TestScoreInterestsAlwaysSixCodes(t *testing.T) {
	cases := []struct {
		name    string
		answers model.AnswerBatch
	}{
		{"empty batch", model.AnswerBatch{}},
		{"nil batch", nil},
		{"single dimension", model.AnswerBatch{"R1": "5"}},
		{"all malformed", model.AnswerBatch{"R1": "x", "Z9": "4", "": "1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, _ := ScoreInterests(tc.answers)
			if len(score) != 6 {
				t.Fatalf("got %d codes, want 6: %v", len(score), score)
			}
			for _, code := range model.DimensionCodes {
				total, ok := score[code]
				if !ok {
					t.Fatalf("code %q missing from %v", code, score)
				}
				if total < 0 {
					t.Fatalf("code %q is negative: %d", code, total)
				}
			}
		})
	}
}

func TestScoreInterestsIgnoresMalformedEntries(t *testing.T) {
	answers := model.AnswerBatch{
		"R1": "4",
		"R2": "cuatro", // non-numeric
		"R3": "-2",     // negative
		"X1": "9",      // unknown prefix
		"":   "9",      // empty id
		"r1": "9",      // codes are case-sensitive
	}

	score, _ := ScoreInterests(answers)
	if score["R"] != 4 {
		t.Fatalf("R = %d, want 4", score["R"])
	}
	for _, code := range []string{"I", "A", "S", "E", "C"} {
		if score[code] != 0 {
			t.Fatalf("%s = %d, want 0", code, score[code])
		}
	}
}

func TestScoreInterestsTieBreakAlphabetical(t *testing.T) {
	// All six dimensions tie at zero: profile must be the first two codes
	// alphabetically, not instrument order.
	_, profile := ScoreInterests(model.AnswerBatch{})
	if profile != "A–C" {
		t.Fatalf("profile = %q, want %q", profile, "A–C")
	}

	// Tie on the second slot only.
	_, profile = ScoreInterests(model.AnswerBatch{"R1": "5", "I1": "3", "E1": "3"})
	if profile != "R–E" {
		t.Fatalf("profile = %q, want %q", profile, "R–E")
	}
}

func TestScoreInterestsIdempotent(t *testing.T) {
	answers := model.AnswerBatch{"R1": "4", "I1": "2", "A3": "7", "C2": "1"}

	s1, p1 := ScoreInterests(answers)
	s2, p2 := ScoreInterests(answers)

	if !reflect.DeepEqual(s1, s2) || p1 != p2 {
		t.Fatalf("repeated scoring diverged: %v/%q vs %v/%q", s1, p1, s2, p2)
	}
}

func TestScoreSelfEfficacyBandBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, model.BandLow},
		{30, model.BandLow},
		{31, model.BandMedium},
		{45, model.BandMedium},
		{46, model.BandHigh},
		{100, model.BandHigh},
	}

	for _, tc := range cases {
		if got := BandFor(tc.total); got != tc.want {
			t.Errorf("BandFor(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestScoreSelfEfficacySumsEveryParseableValue(t *testing.T) {
	answers := model.AnswerBatch{
		"AE1":      "10",
		"AE2":      "20",
		"whatever": "16", // id is irrelevant for this instrument
		"AE3":      "n/a",
	}

	got := ScoreSelfEfficacy(answers)
	if got.Total != 46 {
		t.Fatalf("total = %d, want 46", got.Total)
	}
	if got.Band != model.BandHigh {
		t.Fatalf("band = %q, want %q", got.Band, model.BandHigh)
	}
}

func TestAggregateSubmissions(t *testing.T) {
	now := time.Now()
	rows := []model.Submission{
		{CompletedAt: now, Profile: "R–I", EfficacyTotal: 40},
		{CompletedAt: now, Profile: "R–I", EfficacyTotal: 50},
		{CompletedAt: now, Profile: "S–A", EfficacyTotal: 30},
	}

	agg := AggregateSubmissions(rows)

	if agg.Count != 3 {
		t.Fatalf("count = %d, want 3", agg.Count)
	}
	if agg.MeanEfficacy != 40 {
		t.Fatalf("mean = %v, want 40", agg.MeanEfficacy)
	}
	if agg.ProfileFrequencies["R–I"] != 2 || agg.ProfileFrequencies["S–A"] != 1 {
		t.Fatalf("frequencies = %v", agg.ProfileFrequencies)
	}
}

func TestAggregateSubmissionsEmpty(t *testing.T) {
	agg := AggregateSubmissions(nil)
	if agg.Count != 0 || agg.MeanEfficacy != 0 {
		t.Fatalf("empty aggregate = %+v", agg)
	}
	if agg.ProfileFrequencies == nil {
		t.Fatal("frequency table must be non-nil even when empty")
	}
}
