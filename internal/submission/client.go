package submission

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

// CreateResponse - ответ эндпоинта создания заявления
type CreateResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Msg     string          `json:"msg,omitempty"`
	Detail  string          `json:"detail,omitempty"`
}

// ReportAPI - эндпоинт создания заявления
type ReportAPI interface {
	CreateReport(ctx context.Context, payload *Payload) (*CreateResponse, error)
}

// HTTPReportAPI отправляет multipart-форму на бэкенд
type HTTPReportAPI struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPReportAPI(baseURL, token string, timeout time.Duration) *HTTPReportAPI {
	return &HTTPReportAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateReport выполняет POST /reports. Успехом считается только ответ с success=true.
func (c *HTTPReportAPI) CreateReport(ctx context.Context, payload *Payload) (*CreateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reports", bytes.NewReader(payload.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create report request: %w", err)
	}
	req.Header.Set("Content-Type", payload.ContentType)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Op: "create report", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Op: "create report", Err: err}
	}

	var out CreateResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.ServerRejection{StatusCode: resp.StatusCode, Message: rejectionMessage(&out, raw, decodeErr)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode report response: %w", decodeErr)
	}
	if !out.Success {
		return nil, &models.ServerRejection{StatusCode: resp.StatusCode, Message: rejectionMessage(&out, raw, nil)}
	}
	return &out, nil
}

func rejectionMessage(out *CreateResponse, raw []byte, decodeErr error) string {
	if decodeErr == nil {
		if out.Msg != "" {
			return out.Msg
		}
		if out.Detail != "" {
			return out.Detail
		}
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return "report was not accepted"
}
