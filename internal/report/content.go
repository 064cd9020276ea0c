package report

import "github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"

// Interpretive guidance per self-efficacy band. This is domain content the
// assembler consumes as-is; the wording belongs to the orientation team, not
// to the code.
var interpretiveTexts = map[string]string{
	model.BandLow: "Tu nivel de autoeficacia vocacional es bajo. Esto sugiere que aún no " +
		"confías plenamente en tu capacidad para tomar decisiones sobre tu futuro. " +
		"Conversa con tu orientador u orientadora: explorar opciones acompañado suele " +
		"fortalecer esa confianza.",
	model.BandMedium: "Tu nivel de autoeficacia vocacional es medio. Confías en varias de tus " +
		"capacidades para decidir tu camino, aunque hay áreas donde todavía dudas. " +
		"Profundizar en las dimensiones de tu perfil de intereses puede ayudarte a " +
		"consolidar esa seguridad.",
	model.BandHigh: "Tu nivel de autoeficacia vocacional es alto. Muestras una confianza " +
		"sólida en tu capacidad para planificar y decidir tu futuro. Usa tu perfil de " +
		"intereses como guía para explorar alternativas concretas de estudio o trabajo.",
}

// InterpretiveText returns the canned guidance for a band, or the empty
// string for an unrecognized band. The empty string is an expected edge
// case, not an error: the report simply omits the paragraph.
func InterpretiveText(band string) string {
	return interpretiveTexts[band]
}

// Fixed report strings.
const (
	reportTitle    = "Informe de Resultados"
	reportSubtitle = "Test de Orientación Vocacional — Metasistema"

	// noAnswer renders in place of an empty reflective response; reflective
	// sections are never left blank.
	noAnswer = "— Sin respuesta —"

	ethicsNote = "Nota ética: este informe es un apoyo a la reflexión vocacional y no " +
		"constituye un diagnóstico. Los resultados describen intereses y percepciones " +
		"declaradas al momento de responder, y deben interpretarse junto a un " +
		"profesional de orientación. La información entregada es confidencial."
)
