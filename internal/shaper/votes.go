package shaper

import (
	"github.com/shaiso/kamermoties/internal/domain"
	"github.com/shaiso/kamermoties/internal/odata"
)

// Поля Besluit и Stemming.
const (
	fieldDecisions = "Besluit"
	fieldVotes     = "Stemming"
	fieldKind      = "Soort"
	fieldPartySize = "FractieGrootte"
	fieldMistake   = "Vergissing"
)

// Votes возвращает все Stemming записи Zaak плоским списком.
//
// Порядок: решения (Besluit) как в upstream, внутри каждого — голоса как в upstream.
func Votes(rec odata.Record) []domain.Vote {
	var out []domain.Vote
	for _, decision := range rec.List(fieldDecisions) {
		for _, v := range decision.List(fieldVotes) {
			out = append(out, domain.Vote{
				ID:         v.String(fieldID),
				Kind:       v.String(fieldKind),
				ActorName:  v.String(fieldActorName),
				ActorParty: v.String(fieldActorParty),
				PartySize:  v.Int(fieldPartySize),
				Mistake:    v.Bool(fieldMistake),
			})
		}
	}
	return out
}

// AggregateByParty сводит голоса к одному на фракцию.
//
// Побеждает первый голос фракции в порядке обхода, последующие игнорируются.
// Голоса без фракции пропускаются.
func AggregateByParty(votes []domain.Vote) domain.PartyVotes {
	out := domain.NewPartyVotes()
	for _, v := range votes {
		if v.ActorParty == nil {
			continue
		}
		out.Add(domain.PartyVote{
			Party: *v.ActorParty,
			Kind:  v.Kind,
			Size:  v.PartySize,
		})
	}
	return out
}

// PartyVotes — Votes и AggregateByParty за один вызов.
func PartyVotes(rec odata.Record) domain.PartyVotes {
	return AggregateByParty(Votes(rec))
}
