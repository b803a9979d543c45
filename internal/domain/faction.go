package domain

// Faction — активная фракция парламента.
type Faction struct {
	ID *string `json:"id"`

	// Name — название на нидерландском (NaamNL).
	Name *string `json:"naam"`

	Abbreviation *string `json:"afkorting"`

	// Seats — число мест. 0, если upstream не передал значение.
	Seats int `json:"zetels"`
}
