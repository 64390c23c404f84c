package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"WebHub/internal/domain/models"
	xhttp "WebHub/pkg/http"
)

type recordedCall struct {
	api string
	err error
}

type fakeMetrics struct{ calls []recordedCall }

func (f *fakeMetrics) RecordLookup(string) {}

func (f *fakeMetrics) RecordUpstream(api string, _ float64, err error) {
	f.calls = append(f.calls, recordedCall{api: api, err: err})
}

func (f *fakeMetrics) RecordJournalWrite(string, error) {}

func TestGetJSONSetsHeadersAndRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "v", r.Header.Get("X-Test"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	m := &fakeMetrics{}
	b := NewBase(nil, m, map[string]string{"X-Test": "v"})

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, b.GetJSON(context.Background(), "ping", srv.URL, nil, &out))
	require.True(t, out.OK)
	require.Len(t, m.calls, 1)
	require.Equal(t, "ping", m.calls[0].api)
	require.NoError(t, m.calls[0].err)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		upstream   bool
		wantStatus int
	}{
		{name: "status", err: &xhttp.StatusError{Code: 503}, upstream: true, wantStatus: 503},
		{name: "transport", err: &xhttp.TransportError{Err: errors.New("dial tcp: refused")}, upstream: true},
		{name: "decode", err: errors.New("decode json: unexpected EOF")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Classify("quotes", tt.err)

			var ue *models.UpstreamError
			require.Equal(t, tt.upstream, errors.As(err, &ue))
			if tt.upstream {
				require.Equal(t, "quotes", ue.API)
				require.Equal(t, tt.wantStatus, ue.Status)
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}
