package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsdesk/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{DefaultPage: 1, DefaultLimit: 20, MaxLimit: 100}

	tests := []struct {
		name    string
		query   string
		want    pagination.Params
		wantErr string
	}{
		{
			name:  "both parameters",
			query: "page=2&limit=30",
			want:  pagination.Params{Page: 2, Limit: 30},
		},
		{
			name:  "empty query takes defaults",
			query: "",
			want:  pagination.Params{Page: 1, Limit: 20},
		},
		{
			name:  "page only",
			query: "page=3",
			want:  pagination.Params{Page: 3, Limit: 20},
		},
		{
			name:  "limit only",
			query: "limit=50",
			want:  pagination.Params{Page: 1, Limit: 50},
		},
		{
			name:  "limit at the cap is accepted",
			query: "limit=100",
			want:  pagination.Params{Page: 1, Limit: 100},
		},
		{
			name:    "page zero",
			query:   "page=0",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "negative page",
			query:   "page=-2",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "non-numeric page",
			query:   "page=latest",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "limit zero",
			query:   "limit=0",
			wantErr: "limit must be between 1 and 100",
		},
		{
			name:    "limit over the cap",
			query:   "limit=101",
			wantErr: "limit must be between 1 and 100",
		},
		{
			name:    "non-numeric limit",
			query:   "limit=all",
			wantErr: "limit must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/articles?"+tt.query, nil)
			got, err := pagination.ParseQueryParams(req, config)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseQueryParams(%q) succeeded, want error", tt.query)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseQueryParams(%q) error: %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}
