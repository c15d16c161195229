package igdomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsight_FirstValue(t *testing.T) {
	var resp InsightsResponse
	raw := `{"data":[
		{"name":"reach","values":[{"value":120}]},
		{"name":"saved","total_value":{"value":7}},
		{"name":"impressions","values":[]}
	]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.JSONEq(t, "120", string(resp.Data[0].FirstValue()))
	assert.JSONEq(t, "7", string(resp.Data[1].FirstValue()))
	assert.Nil(t, resp.Data[2].FirstValue())
}

func TestErrorResponse_IsTokenExpired(t *testing.T) {
	tests := []struct {
		name string
		resp *ErrorResponse
		want bool
	}{
		{name: "code 190", resp: &ErrorResponse{Error: &ErrorDetails{Code: 190}}, want: true},
		{name: "oauth subcode", resp: &ErrorResponse{Error: &ErrorDetails{Type: "OAuthException", ErrorSubcode: 463}}, want: true},
		{name: "other", resp: &ErrorResponse{Error: &ErrorDetails{Code: 100}}, want: false},
		{name: "nil", resp: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.IsTokenExpired())
		})
	}
}
