package domain

// CaseKindMotion — значение поля Soort у Zaak, обозначающее motie.
const CaseKindMotion = "Motie"

// RelationSubmitter — значение ZaakActor.Relatie для индиенера (автора) motie.
const RelationSubmitter = "Indiener"

// Motion — упрощённое представление motie.
//
// Строится из одной записи Zaak upstream API на время одного запроса.
// Поля, отсутствующие в upstream, сериализуются как null.
type Motion struct {
	// ID — GUID записи Zaak.
	ID *string `json:"id"`

	// Number — номер дела (например, "2024Z01234").
	Number *string `json:"nummer"`

	Title   *string `json:"titel"`
	Subject *string `json:"onderwerp"`

	// StartedAt — дата начала (GestartOp) в исходном формате upstream.
	StartedAt *string `json:"gestartOp"`

	Status *string `json:"status"`

	// CabinetAppreciation — оценка motie кабинетом (Kabinetsappreciatie).
	CabinetAppreciation *string `json:"kabinetsappreciatie"`

	// Submitters — индиенеры в порядке upstream. Всегда не nil.
	Submitters []Submitter `json:"indieners"`
}

// Submitter — автор motie.
type Submitter struct {
	Name  *string `json:"naam"`
	Party *string `json:"fractie"`
}

// FilteredMotion — motie с картой голосов фракций (ответ фильтра).
type FilteredMotion struct {
	Motion

	// Votes — голос каждой фракции, ключ — название фракции.
	Votes map[string]PartyVote `json:"stemmingen"`
}

// FilterRequest — критерии фильтрации моций по голосам фракций.
//
// Пересечение множеств не проверяется.
type FilterRequest struct {
	// For — фракции, обязанные голосовать "Voor".
	For []string `json:"voor_partijen"`

	// Against — фракции, обязанные голосовать "Tegen".
	Against []string `json:"tegen_partijen"`
}
