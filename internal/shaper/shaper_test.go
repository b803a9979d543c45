package shaper

import (
	"testing"

	"github.com/shaiso/kamermoties/internal/odata"
)

func TestShapeMotion_AllFields(t *testing.T) {
	rec := odata.ParseRecord(`{
		"Id": "0a1b",
		"Nummer": "2024Z00001",
		"Titel": "Motie van het lid X",
		"Onderwerp": "over woningbouw",
		"GestartOp": "2024-01-15T00:00:00+01:00",
		"Status": "Vrijgegeven",
		"Kabinetsappreciatie": "Oordeel Kamer",
		"ZaakActor": [
			{"Relatie": "Indiener", "ActorNaam": "Jansen", "ActorFractie": "VVD"},
			{"Relatie": "Medeindiener", "ActorNaam": "De Vries", "ActorFractie": "CDA"},
			{"Relatie": "Indiener", "ActorNaam": "Bakker", "ActorFractie": "D66"},
			{"Relatie": "indiener", "ActorNaam": "Lower", "ActorFractie": "SP"},
			{"Relatie": "Indiener", "ActorNaam": "Jansen", "ActorFractie": "VVD"}
		]
	}`)

	m := ShapeMotion(rec)

	checks := map[string]*string{
		"Nummer":              m.Number,
		"Titel":               m.Title,
		"Onderwerp":           m.Subject,
		"GestartOp":           m.StartedAt,
		"Status":              m.Status,
		"Kabinetsappreciatie": m.CabinetAppreciation,
	}
	for field, v := range checks {
		if v == nil {
			t.Errorf("%s should be set", field)
		}
	}
	if *m.ID != "0a1b" {
		t.Errorf("expected id 0a1b, got %s", *m.ID)
	}

	// Только "Indiener", порядок сохранён, дубликаты не удаляются
	if len(m.Submitters) != 3 {
		t.Fatalf("expected 3 submitters, got %d", len(m.Submitters))
	}
	wantNames := []string{"Jansen", "Bakker", "Jansen"}
	for i, s := range m.Submitters {
		if s.Name == nil || *s.Name != wantNames[i] {
			t.Errorf("submitter %d: expected %s, got %v", i, wantNames[i], s.Name)
		}
	}
	if *m.Submitters[1].Party != "D66" {
		t.Errorf("expected D66, got %s", *m.Submitters[1].Party)
	}
}

func TestShapeMotion_MissingFields(t *testing.T) {
	m := ShapeMotion(odata.ParseRecord(`{"Id": "x"}`))

	if m.Title != nil || m.Number != nil || m.Subject != nil || m.StartedAt != nil ||
		m.Status != nil || m.CabinetAppreciation != nil {
		t.Errorf("missing fields should be nil: %+v", m)
	}
	if m.Submitters == nil {
		t.Error("submitters should be an empty list, not nil")
	}
	if len(m.Submitters) != 0 {
		t.Errorf("expected no submitters, got %d", len(m.Submitters))
	}
}

func TestShapeMotion_SubmitterWithoutNames(t *testing.T) {
	m := ShapeMotion(odata.ParseRecord(`{"ZaakActor": [{"Relatie": "Indiener"}, {"ActorNaam": "NoRelation"}]}`))

	if len(m.Submitters) != 1 {
		t.Fatalf("expected 1 submitter, got %d", len(m.Submitters))
	}
	if m.Submitters[0].Name != nil || m.Submitters[0].Party != nil {
		t.Errorf("expected nil name and party, got %+v", m.Submitters[0])
	}
}

func TestShapeFaction(t *testing.T) {
	f := ShapeFaction(odata.ParseRecord(`{"Id": "f1", "NaamNL": "Volkspartij voor Vrijheid en Democratie", "Afkorting": "VVD", "AantalZetels": 24}`))

	if *f.ID != "f1" || *f.Abbreviation != "VVD" {
		t.Errorf("unexpected faction: %+v", f)
	}
	if *f.Name != "Volkspartij voor Vrijheid en Democratie" {
		t.Errorf("unexpected name: %s", *f.Name)
	}
	if f.Seats != 24 {
		t.Errorf("expected 24 seats, got %d", f.Seats)
	}
}

func TestShapeFaction_SeatsDefault(t *testing.T) {
	for _, raw := range []string{`{"Id": "f1"}`, `{"Id": "f1", "AantalZetels": null}`} {
		f := ShapeFaction(odata.ParseRecord(raw))
		if f.Seats != 0 {
			t.Errorf("%s: expected 0 seats, got %d", raw, f.Seats)
		}
		if f.Name != nil || f.Abbreviation != nil {
			t.Errorf("%s: missing fields should be nil", raw)
		}
	}
}
