// Package filter отбирает моции по голосам фракций.
package filter

import "github.com/shaiso/kamermoties/internal/domain"

// Matches возвращает true, если каждая фракция из voor голосовала "Voor",
// а каждая фракция из tegen — "Tegen".
//
// Фракция без голоса не проходит ни одно условие. Пустые множества
// проходят всегда. Имена сравниваются точно.
func Matches(votes domain.PartyVotes, voor, tegen []string) bool {
	return allVoted(votes, voor, domain.VoteFor) && allVoted(votes, tegen, domain.VoteAgainst)
}

func allVoted(votes domain.PartyVotes, parties []string, kind domain.VoteKind) bool {
	for _, party := range parties {
		v, ok := votes.Get(party)
		if !ok || v.Kind == nil || *v.Kind != kind {
			return false
		}
	}
	return true
}
