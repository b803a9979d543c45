package domain

// VoteKind — итог голосования фракции (Stemming.Soort).
type VoteKind = string

const (
	// VoteFor — фракция голосовала "за".
	VoteFor VoteKind = "Voor"

	// VoteAgainst — фракция голосовала "против".
	VoteAgainst VoteKind = "Tegen"
)

// Vote — одна запись Stemming из Besluit.
type Vote struct {
	ID *string `json:"id"`

	// Kind — Voor, Tegen или другое значение upstream.
	Kind *string `json:"soort"`

	ActorName  *string `json:"actorNaam"`
	ActorParty *string `json:"actorFractie"`

	// PartySize — число мест фракции на момент голосования.
	PartySize *int `json:"fractieGrootte"`

	// Mistake — голос отмечен как ошибочный (Vergissing). По умолчанию false.
	Mistake bool `json:"vergissing"`
}

// PartyVote — сводный голос одной фракции.
type PartyVote struct {
	Party string  `json:"fractie"`
	Kind  *string `json:"stemming"`
	Size  *int    `json:"grootte"`
}

// PartyVotes — голоса фракций, по одному на фракцию.
//
// Order хранит порядок первого появления фракции, ByParty — доступ по имени.
// Инвариант: у двух записей не бывает одинакового ключа.
type PartyVotes struct {
	Order   []string
	ByParty map[string]PartyVote
}

// NewPartyVotes создаёт пустую сводку.
func NewPartyVotes() PartyVotes {
	return PartyVotes{ByParty: make(map[string]PartyVote)}
}

// Add добавляет голос фракции. Повторный голос той же фракции игнорируется.
// Возвращает false, если фракция уже была.
func (p *PartyVotes) Add(v PartyVote) bool {
	if p.ByParty == nil {
		p.ByParty = make(map[string]PartyVote)
	}
	if _, ok := p.ByParty[v.Party]; ok {
		return false
	}
	p.ByParty[v.Party] = v
	p.Order = append(p.Order, v.Party)
	return true
}

// Get возвращает голос фракции.
func (p PartyVotes) Get(party string) (PartyVote, bool) {
	v, ok := p.ByParty[party]
	return v, ok
}

// List возвращает голоса в порядке первого появления фракций.
func (p PartyVotes) List() []PartyVote {
	out := make([]PartyVote, 0, len(p.Order))
	for _, party := range p.Order {
		out = append(out, p.ByParty[party])
	}
	return out
}

// Len — число фракций.
func (p PartyVotes) Len() int {
	return len(p.Order)
}
