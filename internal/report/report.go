// Package report assembles a completed (or partially completed) session
// into its two output shapes: the structured view the frontend renders, and
// the paginated document behind the PDF download. Assembly is a pure
// transformation — given the same session and generation timestamp it
// produces byte-identical output.
package report

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

// ReportView mirrors every session field for on-screen rendering, with the
// band's interpretive text resolved.
type ReportView struct {
	Identity         model.RespondentIdentity `json:"identity"`
	Scores           model.InterestScore      `json:"scores"`
	Profile          string                   `json:"profile"`
	EfficacyTotal    int                      `json:"efficacy_total"`
	EfficacyBand     string                   `json:"efficacy_band"`
	Interpretation   string                   `json:"interpretation"`
	Reflection       model.ReflectionAnswers  `json:"reflection"`
	StartedAt        time.Time                `json:"started_at"`
	CompletedAt      *time.Time               `json:"completed_at,omitempty"`
	SubmissionID     int64                    `json:"submission_id,omitempty"`
	AssessmentClosed bool                     `json:"closed"`
}

// BuildView renders the session into the on-screen report payload. Unset
// fields come through as their defined defaults, so the view is renderable
// at any point in the flow.
func BuildView(s *model.SessionState) ReportView {
	return ReportView{
		Identity:         s.Identity,
		Scores:           s.ScoresOrZero(),
		Profile:          s.ProfileOrDefault(),
		EfficacyTotal:    s.Efficacy.Total,
		EfficacyBand:     s.BandOrDefault(),
		Interpretation:   InterpretiveText(s.Efficacy.Band),
		Reflection:       s.Reflection,
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
		SubmissionID:     s.SubmissionID,
		AssessmentClosed: s.Closed(),
	}
}

// ─── Paginated document ─────────────────────────────────────────────

// LineStyle selects the typographic treatment of a document line.
type LineStyle int

const (
	StyleTitle LineStyle = iota
	StyleSubtitle
	StyleHeading
	StyleBody
	StyleSpacer
)

// Line heights in points, by style. Pagination is computed from these, so
// they are layout constants, not presentation hints.
var lineHeights = map[LineStyle]float64{
	StyleTitle:    28,
	StyleSubtitle: 20,
	StyleHeading:  24,
	StyleBody:     16,
	StyleSpacer:   10,
}

// A4 layout constants (points).
const (
	pageHeight   = 842
	topMargin    = 56
	bottomMargin = 64
	leftMargin   = 56

	// wrapWidth is the fixed column width, in characters, for body text.
	wrapWidth = 88
)

// DocLine is one rendered line. Lines are the pagination unit: a line is
// never split across pages.
type DocLine struct {
	Text  string
	Style LineStyle
}

// DocPage is one page of lines.
type DocPage struct {
	Lines []DocLine
}

// Document is the paginated text-block representation of the report,
// independent of the PDF encoding.
type Document struct {
	Pages []DocPage
}

// BuildDocument renders the session into the fixed-order paginated document.
// generatedAt is injected so output is reproducible; it is the only
// wall-clock-dependent line.
func BuildDocument(s *model.SessionState, generatedAt time.Time) Document {
	b := newDocBuilder()

	// Header.
	b.add(StyleTitle, reportTitle)
	b.add(StyleSubtitle, reportSubtitle)
	b.add(StyleBody, "Generado: "+generatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	b.spacer()

	// Identification.
	b.add(StyleHeading, "Identificación")
	b.add(StyleBody, "Nombre: "+strings.TrimSpace(s.Identity.Name+" "+s.Identity.Surname))
	b.add(StyleBody, "Contacto: "+s.Identity.Contact)
	b.add(StyleBody, "Establecimiento: "+s.Identity.Institution)
	b.add(StyleBody, "Curso: "+s.Identity.Cohort)
	b.spacer()

	// Quantitative results.
	b.add(StyleHeading, "Resultados cuantitativos")
	b.add(StyleBody, "Perfil de intereses: "+s.ProfileOrDefault())
	b.add(StyleBody, fmt.Sprintf("Autoeficacia vocacional: %d puntos — nivel %s", s.Efficacy.Total, s.BandOrDefault()))
	if text := InterpretiveText(s.Efficacy.Band); text != "" {
		b.paragraph(text)
	}
	b.spacer()

	// Per-dimension scores.
	b.add(StyleHeading, "Puntajes por dimensión")
	scores := s.ScoresOrZero()
	for _, code := range model.DimensionCodes {
		b.add(StyleBody, fmt.Sprintf("%s (%s): %d", code, model.DimensionNames[code], scores[code]))
	}
	b.spacer()

	// Reflective sections.
	reflectiveSections := []struct {
		title string
		text  string
	}{
		{"Motivación", s.Reflection.Motivation},
		{"Habilidad principal percibida", s.Reflection.KeySkill},
		{"Proyección a futuro", s.Reflection.Projection},
	}
	for _, sec := range reflectiveSections {
		b.add(StyleHeading, sec.title)
		text := sec.text
		if strings.TrimSpace(text) == "" {
			text = noAnswer
		}
		b.paragraph(text)
		b.spacer()
	}

	// Closing ethics note.
	b.add(StyleHeading, "Nota ética")
	b.paragraph(ethicsNote)

	return b.document()
}

// ─── Builder ────────────────────────────────────────────────────────

type docBuilder struct {
	pages   []DocPage
	current DocPage
	y       float64
}

func newDocBuilder() *docBuilder {
	return &docBuilder{y: topMargin}
}

// add appends one line, starting a new page when the line would fall below
// the bottom margin.
func (b *docBuilder) add(style LineStyle, text string) {
	h := lineHeights[style]
	if b.y+h > pageHeight-bottomMargin {
		b.pages = append(b.pages, b.current)
		b.current = DocPage{}
		b.y = topMargin
	}
	b.current.Lines = append(b.current.Lines, DocLine{Text: text, Style: style})
	b.y += h
}

// paragraph wraps body text at the fixed column width.
func (b *docBuilder) paragraph(text string) {
	for _, line := range wrap(text, wrapWidth) {
		b.add(StyleBody, line)
	}
}

func (b *docBuilder) spacer() {
	b.add(StyleSpacer, "")
}

func (b *docBuilder) document() Document {
	pages := append(b.pages, b.current)
	return Document{Pages: pages}
}

// wrap breaks text into lines of at most width characters, splitting on
// spaces. A single word longer than the width gets a line of its own rather
// than being broken mid-word.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
