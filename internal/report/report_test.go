package report

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

func completedSession() *model.SessionState {
	completed := time.Date(2025, 6, 12, 15, 30, 0, 0, time.UTC)
	return &model.SessionState{
		Token: "t",
		State: model.StateClosed,
		Identity: model.RespondentIdentity{
			Name: "Ana", Surname: "Rojas", Contact: "ana@example.com",
			Institution: "Liceo Norte", Cohort: "4A",
		},
		Interests: model.InterestScore{"R": 7, "I": 5, "A": 1, "S": 2, "E": 0, "C": 0},
		Profile:   "R–I",
		Efficacy:  model.SelfEfficacyScore{Total: 46, Band: model.BandHigh},
		Reflection: model.ReflectionAnswers{
			Motivation: "Me motiva ayudar a otras personas y entender cómo funcionan las cosas.",
			KeySkill:   "Escuchar",
			Projection: "Estudiar una carrera del área de la salud.",
		},
		StartedAt:    completed.Add(-20 * time.Minute),
		CompletedAt:  &completed,
		SubmissionID: 7,
	}
}

func TestBuildViewMirrorsSession(t *testing.T) {
	s := completedSession()
	v := BuildView(s)

	if v.Profile != "R–I" || v.EfficacyBand != model.BandHigh || v.EfficacyTotal != 46 {
		t.Fatalf("view = %+v", v)
	}
	if v.Interpretation == "" {
		t.Fatal("interpretation text missing for a known band")
	}
	if !v.AssessmentClosed || v.SubmissionID != 7 {
		t.Fatalf("view = %+v", v)
	}
}

func TestBuildViewDefaultsForFreshSession(t *testing.T) {
	s := &model.SessionState{State: model.StateRegistered}
	v := BuildView(s)

	if v.Profile != model.Unavailable || v.EfficacyBand != model.Unavailable {
		t.Fatalf("view = %+v", v)
	}
	if v.Interpretation != "" {
		t.Fatalf("interpretation for unset band = %q, want empty", v.Interpretation)
	}
	want := model.ZeroInterestScore()
	if !reflect.DeepEqual(v.Scores, want) {
		t.Fatalf("scores = %v, want zero-filled", v.Scores)
	}
}

func TestInterpretiveTextPerBand(t *testing.T) {
	for _, band := range []string{model.BandLow, model.BandMedium, model.BandHigh} {
		if InterpretiveText(band) == "" {
			t.Errorf("no text for band %q", band)
		}
	}
	if got := InterpretiveText("Altísima"); got != "" {
		t.Errorf("unknown band text = %q, want empty", got)
	}
}

func TestBuildDocumentDeterministic(t *testing.T) {
	s := completedSession()
	at := time.Date(2025, 6, 12, 16, 0, 0, 0, time.UTC)

	d1 := BuildDocument(s, at)
	d2 := BuildDocument(s, at)
	if !reflect.DeepEqual(d1, d2) {
		t.Fatal("documents differ for identical input")
	}

	p1, err := EncodePDF(d1)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	p2, err := EncodePDF(d2)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytesEqualIgnoringCreationDate(p1, p2) {
		t.Fatal("pdf output differs for identical input")
	}
}

// gofpdf stamps a CreationDate trailer entry from the wall clock; pin it so
// the byte comparison is meaningful.
func bytesEqualIgnoringCreationDate(a, b []byte) bool {
	return string(stripCreationDate(a)) == string(stripCreationDate(b))
}

func stripCreationDate(pdf []byte) []byte {
	s := string(pdf)
	if i := strings.Index(s, "/CreationDate"); i >= 0 {
		if j := strings.Index(s[i:], ")"); j >= 0 {
			s = s[:i] + s[i+j:]
		}
	}
	return []byte(s)
}

func TestBuildDocumentSectionOrder(t *testing.T) {
	doc := BuildDocument(completedSession(), time.Unix(0, 0))

	var all []string
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			all = append(all, line.Text)
		}
	}
	joined := strings.Join(all, "\n")

	order := []string{
		reportTitle,
		"Identificación",
		"Resultados cuantitativos",
		"Puntajes por dimensión",
		"Motivación",
		"Habilidad principal percibida",
		"Proyección a futuro",
		"Nota ética",
	}
	pos := -1
	for _, marker := range order {
		next := strings.Index(joined, marker)
		if next <= pos {
			t.Fatalf("section %q out of order", marker)
		}
		pos = next
	}
}

func TestBuildDocumentPlaceholdersForEmptyReflections(t *testing.T) {
	s := completedSession()
	s.Reflection = model.ReflectionAnswers{}

	doc := BuildDocument(s, time.Unix(0, 0))

	count := 0
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			if line.Text == noAnswer {
				count++
			}
		}
	}
	if count != 3 {
		t.Fatalf("placeholder rendered %d times, want 3", count)
	}
}

func TestBuildDocumentPaginatesLongReflections(t *testing.T) {
	s := completedSession()
	s.Reflection.Motivation = strings.Repeat("una respuesta bastante extensa sobre motivación personal ", 80)

	doc := BuildDocument(s, time.Unix(0, 0))
	if len(doc.Pages) < 2 {
		t.Fatalf("got %d pages, expected pagination", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if len(page.Lines) == 0 {
			t.Fatalf("page %d is empty", i)
		}
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := strings.Repeat("palabra ", 200)
	for _, line := range wrap(text, wrapWidth) {
		if n := len([]rune(line)); n > wrapWidth {
			t.Fatalf("line of %d runes exceeds width %d", n, wrapWidth)
		}
	}
}

func TestWrapKeepsLongWordWhole(t *testing.T) {
	long := strings.Repeat("x", wrapWidth+10)
	lines := wrap("corta "+long+" fin", wrapWidth)
	found := false
	for _, line := range lines {
		if line == long {
			found = true
		}
	}
	if !found {
		t.Fatalf("long word was split: %v", lines)
	}
}
