package station

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/report_intake/internal/models"
)

// SearchRequest - тело запроса поиска участков
type SearchRequest struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

// SearchClient - сервис поиска ближайших полицейских участков
type SearchClient interface {
	Search(ctx context.Context, req SearchRequest) ([]models.StationCandidate, error)
}

// HTTPSearchClient обращается к бэкенду по HTTP
type HTTPSearchClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPSearchClient(baseURL, token string, timeout time.Duration) *HTTPSearchClient {
	return &HTTPSearchClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search выполняет POST /police-stations/search
func (c *HTTPSearchClient) Search(ctx context.Context, sr SearchRequest) ([]models.StationCandidate, error) {
	body, err := json.Marshal(sr)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal station search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/police-stations/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create station search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Op: "station search", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Op: "station search", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.ServerRejection{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	return decodeCandidates(raw)
}

// decodeCandidates принимает как голый массив, так и обертку {success, data}
func decodeCandidates(raw []byte) ([]models.StationCandidate, error) {
	var list []models.StationCandidate
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Data []models.StationCandidate `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode station search response: %w", err)
	}
	return wrapped.Data, nil
}
