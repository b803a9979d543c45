package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/shaiso/kamermoties/internal/domain"
	"github.com/shaiso/kamermoties/internal/odata"
)

const twoMotions = `{"value": [
	{
		"Id": "m1", "Titel": "Motie A",
		"ZaakActor": [{"Relatie": "Indiener", "ActorNaam": "Jansen", "ActorFractie": "VVD"}],
		"Besluit": [{"Stemming": [
			{"Soort": "Voor", "ActorFractie": "VVD", "FractieGrootte": 24},
			{"Soort": "Tegen", "ActorFractie": "PVV", "FractieGrootte": 37}
		]}]
	},
	{
		"Id": "m2", "Titel": "Motie B",
		"Besluit": [{"Stemming": [
			{"Soort": "Tegen", "ActorFractie": "VVD", "FractieGrootte": 24},
			{"Soort": "Tegen", "ActorFractie": "PVV", "FractieGrootte": 37}
		]}]
	}
]}`

// upstream — mock OData API, запоминает последний запрос.
type upstream struct {
	server *httptest.Server
	calls  atomic.Int32
	last   atomic.Pointer[url.URL]
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		u.last.Store(r.URL)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) service() *Service {
	return New(odata.NewClient(odata.Config{BaseURL: u.server.URL}), nil)
}

func TestFilterMotions_EndToEnd(t *testing.T) {
	up := newUpstream(t, http.StatusOK, twoMotions)

	motions, err := up.service().FilterMotions(context.Background(), domain.FilterRequest{
		For:     []string{"VVD"},
		Against: []string{"PVV"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(motions) != 1 {
		t.Fatalf("expected 1 motion, got %d", len(motions))
	}
	m := motions[0]
	if *m.ID != "m1" {
		t.Errorf("expected m1, got %s", *m.ID)
	}
	if len(m.Votes) != 2 {
		t.Errorf("expected full vote map with 2 parties, got %d", len(m.Votes))
	}
	if pvv := m.Votes["PVV"]; *pvv.Kind != "Tegen" || *pvv.Size != 37 {
		t.Errorf("unexpected PVV vote: %+v", pvv)
	}
	if len(m.Submitters) != 1 {
		t.Errorf("expected 1 submitter, got %d", len(m.Submitters))
	}

	q := up.last.Load().Query()
	if q.Get("$top") != "100" {
		t.Errorf("expected $top=100, got %q", q.Get("$top"))
	}
	if q.Get("$expand") != filterExpand {
		t.Errorf("unexpected $expand: %q", q.Get("$expand"))
	}
	if q.Get("$skip") != "" {
		t.Errorf("filter should fetch a single page, got $skip=%q", q.Get("$skip"))
	}
}

func TestFilterMotions_EmptyCriteria(t *testing.T) {
	up := newUpstream(t, http.StatusOK, twoMotions)

	motions, err := up.service().FilterMotions(context.Background(), domain.FilterRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(motions) != 2 {
		t.Errorf("empty criteria should keep all motions, got %d", len(motions))
	}
}

func TestFilterMotions_UpstreamFailure(t *testing.T) {
	up := newUpstream(t, http.StatusInternalServerError, `{}`)

	_, err := up.service().FilterMotions(context.Background(), domain.FilterRequest{For: []string{"VVD"}})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if !errors.Is(err, odata.ErrUnavailable) {
		t.Errorf("cause should be preserved, got %v", err)
	}
}

func TestListMotions_Paging(t *testing.T) {
	up := newUpstream(t, http.StatusOK, twoMotions)

	page, err := up.service().ListMotions(context.Background(), 3, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 3 || page.Limit != 20 {
		t.Errorf("unexpected page/limit: %d/%d", page.Page, page.Limit)
	}
	if len(page.Motions) != 2 {
		t.Fatalf("expected 2 motions, got %d", len(page.Motions))
	}

	q := up.last.Load().Query()
	if q.Get("$top") != "20" || q.Get("$skip") != "40" {
		t.Errorf("unexpected paging: top=%q skip=%q", q.Get("$top"), q.Get("$skip"))
	}
	if q.Get("$filter") != "Verwijderd eq false and Soort eq 'Motie'" {
		t.Errorf("unexpected $filter: %q", q.Get("$filter"))
	}
	if q.Get("$orderby") != "GestartOp desc" {
		t.Errorf("unexpected $orderby: %q", q.Get("$orderby"))
	}
}

func TestListMotions_Defaults(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{"value": []}`)

	page, err := up.service().ListMotions(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != DefaultPage || page.Limit != DefaultLimit {
		t.Errorf("expected defaults, got %d/%d", page.Page, page.Limit)
	}
	if page.Motions == nil {
		t.Error("motions should be an empty list, not nil")
	}
}

func TestMotionVotes(t *testing.T) {
	const id = "5c9e3c0c-9a8d-4a5c-9f2b-6a3d5f9b1e20"
	up := newUpstream(t, http.StatusOK, `{"value": [{"Id": "`+id+`", "Titel": "Motie A",
		"Besluit": [{"Stemming": [
			{"Soort": "Voor", "ActorFractie": "VVD", "FractieGrootte": 24},
			{"Soort": "Tegen", "ActorFractie": "VVD", "FractieGrootte": 24},
			{"Soort": "Tegen", "ActorFractie": "SP", "FractieGrootte": 5}
		]}]}]}`)

	mv, err := up.service().MotionVotes(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.MotionID != id || mv.Title == nil || *mv.Title != "Motie A" {
		t.Errorf("unexpected motion: %+v", mv)
	}
	if len(mv.Votes) != 2 {
		t.Fatalf("expected 2 party votes, got %d", len(mv.Votes))
	}
	if mv.Votes[0].Party != "VVD" || *mv.Votes[0].Kind != "Voor" {
		t.Errorf("first VVD vote should win, got %+v", mv.Votes[0])
	}

	q := up.last.Load().Query()
	if q.Get("$filter") != "Id eq guid'"+id+"'" {
		t.Errorf("unexpected $filter: %q", q.Get("$filter"))
	}
}

func TestMotionVotes_NotFound(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{"value": []}`)

	_, err := up.service().MotionVotes(context.Background(), "5c9e3c0c-9a8d-4a5c-9f2b-6a3d5f9b1e20")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMotionVotes_InvalidID(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{"value": []}`)

	_, err := up.service().MotionVotes(context.Background(), "x' or true or Id eq guid'y")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if up.calls.Load() != 0 {
		t.Error("invalid id must not reach upstream")
	}
}

func TestMotionVotes_UpstreamFailure(t *testing.T) {
	up := newUpstream(t, http.StatusBadGateway, ``)

	_, err := up.service().MotionVotes(context.Background(), "5c9e3c0c-9a8d-4a5c-9f2b-6a3d5f9b1e20")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestListFactions(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{"value": [
		{"Id": "f1", "NaamNL": "BBB", "Afkorting": "BBB", "AantalZetels": 7},
		{"Id": "f2", "NaamNL": "Nieuw", "Afkorting": "NW"}
	]}`)

	factions, err := up.service().ListFactions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(factions) != 2 {
		t.Fatalf("expected 2 factions, got %d", len(factions))
	}
	if factions[0].Seats != 7 || factions[1].Seats != 0 {
		t.Errorf("unexpected seats: %d, %d", factions[0].Seats, factions[1].Seats)
	}

	q := up.last.Load().Query()
	if q.Get("$filter") != "Verwijderd eq false and DatumInactief eq null" {
		t.Errorf("unexpected $filter: %q", q.Get("$filter"))
	}
	if q.Get("$orderby") != "NaamNL" {
		t.Errorf("unexpected $orderby: %q", q.Get("$orderby"))
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 50, 1, 50},
		{0, 0, 1, 50},
		{-2, -5, 1, 50},
		{4, 1000, 4, MaxLimit},
	}
	for _, tt := range tests {
		p, l := NormalizePage(tt.page, tt.limit)
		if p != tt.wantPage || l != tt.wantLimit {
			t.Errorf("NormalizePage(%d, %d) = %d, %d; want %d, %d",
				tt.page, tt.limit, p, l, tt.wantPage, tt.wantLimit)
		}
	}
}
