package shaper

import (
	"github.com/shaiso/kamermoties/internal/domain"
	"github.com/shaiso/kamermoties/internal/odata"
)

// Поля Zaak.
const (
	fieldID                  = "Id"
	fieldNumber              = "Nummer"
	fieldTitle               = "Titel"
	fieldSubject             = "Onderwerp"
	fieldStartedAt           = "GestartOp"
	fieldStatus              = "Status"
	fieldCabinetAppreciation = "Kabinetsappreciatie"
	fieldCaseActors          = "ZaakActor"
)

// Поля ZaakActor.
const (
	fieldRelation   = "Relatie"
	fieldActorName  = "ActorNaam"
	fieldActorParty = "ActorFractie"
)

// Поля Fractie.
const (
	fieldNameNL       = "NaamNL"
	fieldAbbreviation = "Afkorting"
	fieldSeats        = "AantalZetels"
)

// ShapeMotion строит Motion из записи Zaak.
func ShapeMotion(rec odata.Record) domain.Motion {
	return domain.Motion{
		ID:                  rec.String(fieldID),
		Number:              rec.String(fieldNumber),
		Title:               rec.String(fieldTitle),
		Subject:             rec.String(fieldSubject),
		StartedAt:           rec.String(fieldStartedAt),
		Status:              rec.String(fieldStatus),
		CabinetAppreciation: rec.String(fieldCabinetAppreciation),
		Submitters:          Submitters(rec),
	}
}

// Submitters возвращает индиенеров Zaak в порядке ZaakActor.
//
// Учитываются только записи с Relatie == "Indiener" (точное совпадение).
// Дубликаты не удаляются.
func Submitters(rec odata.Record) []domain.Submitter {
	out := []domain.Submitter{}
	for _, actor := range rec.List(fieldCaseActors) {
		rel := actor.String(fieldRelation)
		if rel == nil || *rel != domain.RelationSubmitter {
			continue
		}
		out = append(out, domain.Submitter{
			Name:  actor.String(fieldActorName),
			Party: actor.String(fieldActorParty),
		})
	}
	return out
}

// ShapeFaction строит Faction из записи Fractie. AantalZetels по умолчанию 0.
func ShapeFaction(rec odata.Record) domain.Faction {
	return domain.Faction{
		ID:           rec.String(fieldID),
		Name:         rec.String(fieldNameNL),
		Abbreviation: rec.String(fieldAbbreviation),
		Seats:        rec.IntOr(fieldSeats, 0),
	}
}
