package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// SubmitterResponse — индиенер motie.
type SubmitterResponse struct {
	Name  *string `json:"naam"`
	Party *string `json:"fractie"`
}

// PartyVoteResponse — голос фракции.
type PartyVoteResponse struct {
	Party string  `json:"fractie"`
	Kind  *string `json:"stemming"`
	Size  *int    `json:"grootte"`
}

// MotionResponse — motie из API.
type MotionResponse struct {
	ID                  *string                      `json:"id"`
	Number              *string                      `json:"nummer"`
	Title               *string                      `json:"titel"`
	Subject             *string                      `json:"onderwerp"`
	StartedAt           *string                      `json:"gestartOp"`
	Status              *string                      `json:"status"`
	CabinetAppreciation *string                      `json:"kabinetsappreciatie"`
	Submitters          []SubmitterResponse          `json:"indieners"`
	Votes               map[string]PartyVoteResponse `json:"stemmingen,omitempty"`
}

// MotionsResponse — страница моций.
type MotionsResponse struct {
	Motions []MotionResponse `json:"moties"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Total   int              `json:"total"`
}

// MotionVotesResponse — голоса по одной motie.
type MotionVotesResponse struct {
	MotionID    string              `json:"motie_id"`
	MotionTitle *string             `json:"motie_titel"`
	Votes       []PartyVoteResponse `json:"stemmingen"`
}

// FactionResponse — фракция из API.
type FactionResponse struct {
	ID           *string `json:"id"`
	Name         *string `json:"naam"`
	Abbreviation *string `json:"afkorting"`
	Seats        int     `json:"zetels"`
}

// --- Request types ---

// FilterRequest — критерии фильтра.
type FilterRequest struct {
	For     []string `json:"voor_partijen"`
	Against []string `json:"tegen_partijen"`
}

// FilterResponse — результат фильтра.
type FilterResponse struct {
	Motions []MotionResponse `json:"moties"`
	Filter  FilterRequest    `json:"filter"`
	Total   int              `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для kamermoties API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// Больше таймаута upstream, чтобы дождаться ответа API
			Timeout: 45 * time.Second,
		},
	}
}

// ListMotions возвращает страницу моций.
func (c *Client) ListMotions(ctx context.Context, page, limit int) (*MotionsResponse, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/moties"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp MotionsResponse
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return &resp, err
}

// MotionVotes возвращает голоса фракций по motie.
func (c *Client) MotionVotes(ctx context.Context, id string) (*MotionVotesResponse, error) {
	var resp MotionVotesResponse
	err := c.do(ctx, http.MethodGet, "/moties/"+url.PathEscape(id)+"/stemmingen", nil, &resp)
	return &resp, err
}

// FilterMotions отбирает моции по голосам фракций.
func (c *Client) FilterMotions(ctx context.Context, req FilterRequest) (*FilterResponse, error) {
	var resp FilterResponse
	err := c.do(ctx, http.MethodPost, "/moties/filter", req, &resp)
	return &resp, err
}

// ListFactions возвращает активные фракции.
func (c *Client) ListFactions(ctx context.Context) ([]FactionResponse, error) {
	var resp struct {
		Factions []FactionResponse `json:"fracties"`
	}
	err := c.do(ctx, http.MethodGet, "/fracties", nil, &resp)
	return resp.Factions, err
}

// --- HTTP helpers ---

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error == "" {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("API error: HTTP %d: %s", resp.StatusCode, er.Error)
}
