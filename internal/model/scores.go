package model

// DimensionCodes are the six fixed RIASEC interest categories, in canonical
// instrument order. Codes are case-sensitive single letters; an item belongs
// to the dimension named by the leading character of its item id.
var DimensionCodes = []string{"R", "I", "A", "S", "E", "C"}

// DimensionNames maps each code to its Spanish label for reports.
var DimensionNames = map[string]string{
	"R": "Realista",
	"I": "Investigativo",
	"A": "Artístico",
	"S": "Social",
	"E": "Emprendedor",
	"C": "Convencional",
}

// InterestScore maps each of the six dimension codes to a non-negative
// total. Every code is present even when zero.
type InterestScore map[string]int

// ZeroInterestScore returns a fresh score map with all six codes at zero.
func ZeroInterestScore() InterestScore {
	s := make(InterestScore, len(DimensionCodes))
	for _, code := range DimensionCodes {
		s[code] = 0
	}
	return s
}

// InterestProfile is the two highest-scoring dimension codes joined with an
// en dash, e.g. "R–I". Ties break alphabetically.
type InterestProfile string

// Self-efficacy bands derived from the inventory total.
const (
	BandLow    = "Baja"  // total ≤ 30
	BandMedium = "Media" // 31–45
	BandHigh   = "Alta"  // > 45
)

// SelfEfficacyScore is the summed inventory total plus its derived band.
type SelfEfficacyScore struct {
	Total int    `json:"total"`
	Band  string `json:"band"`
}

// AnswerBatch is one instrument's flat item-id → raw-answer submission.
// Values are numeric strings as posted by the form; malformed entries are
// ignored during scoring rather than rejected.
type AnswerBatch map[string]string

// AnswerBatchRequest wraps an answer batch for JSON clients. Form clients
// post the batch as the form body itself.
type AnswerBatchRequest struct {
	Answers AnswerBatch `json:"answers" binding:"required"`
}
