package submission

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPReportAPI_CreateReport_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "reporter-42", r.FormValue("reporter"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"rep-1"}}`))
	}))
	defer server.Close()

	payload, err := BuildPayload(submittableDraft(), FSOpener{FS: testFS()})
	require.NoError(t, err)

	resp, err := NewHTTPReportAPI(server.URL, "tok", time.Second).CreateReport(context.Background(), payload)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"_id":"rep-1"}`, string(resp.Data))
}

func TestHTTPReportAPI_CreateReport_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"success false", http.StatusOK, `{"success":false,"msg":"duplicate report"}`, "duplicate report"},
		{"bad request detail", http.StatusBadRequest, `{"detail":"location is malformed"}`, "location is malformed"},
		{"plain text", http.StatusInternalServerError, `boom`, "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewHTTPReportAPI(server.URL, "", time.Second).CreateReport(context.Background(), &Payload{ContentType: "multipart/form-data; boundary=x"})

			var rejection *models.ServerRejection
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, tc.status, rejection.StatusCode)
			assert.Equal(t, tc.message, rejection.Message)
		})
	}
}

func TestHTTPReportAPI_CreateReport_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPReportAPI(url, "", time.Second).CreateReport(context.Background(), &Payload{})

	var netErr *models.NetworkError
	assert.ErrorAs(t, err, &netErr)
}
