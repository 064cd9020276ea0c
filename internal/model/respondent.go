package model

// RespondentIdentity holds who is taking the assessment. Captured once at
// registration and immutable for the rest of the session. Every field is
// optional free text — the instrument is anonymous-friendly by design; only
// consent is enforced.
type RespondentIdentity struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Contact     string `json:"contact"`
	Institution string `json:"institution"`
	Cohort      string `json:"cohort"`
}

// RegistrationRequest is the registration step payload. Field names follow
// the original Spanish form.
type RegistrationRequest struct {
	Name        string `form:"nombre" json:"nombre"`
	Surname     string `form:"apellido" json:"apellido"`
	Contact     string `form:"correo" json:"correo" binding:"omitempty,max=254"`
	Institution string `form:"establecimiento" json:"establecimiento"`
	Cohort      string `form:"curso" json:"curso"`
	Consent     string `form:"consent" json:"consent"`
}

// Consented reports whether the consent box was checked. HTML checkboxes
// post "on" when ticked and are absent otherwise; any non-empty value other
// than an explicit negative counts.
func (r RegistrationRequest) Consented() bool {
	switch r.Consent {
	case "", "0", "false", "no":
		return false
	}
	return true
}

// Identity converts the request into the immutable identity record.
func (r RegistrationRequest) Identity() RespondentIdentity {
	return RespondentIdentity{
		Name:        r.Name,
		Surname:     r.Surname,
		Contact:     r.Contact,
		Institution: r.Institution,
		Cohort:      r.Cohort,
	}
}

// ReflectionRequest carries the three open reflective prompts. Each answer
// may be empty; the report renders a placeholder instead of blank output.
type ReflectionRequest struct {
	Motivation string `form:"motivacion" json:"motivacion"`
	KeySkill   string `form:"habilidad" json:"habilidad"`
	Projection string `form:"proyeccion" json:"proyeccion"`
}
