package pgsql

import (
	"testing"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSaleFilter(t *testing.T) {
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		scope     domain.SaleScope
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "admin sees everything in the window",
			scope:     domain.SaleScope{Since: since},
			wantWhere: "WHERE s.created_at >= $1",
			wantArgs:  []any{since},
		},
		{
			name:      "retailer",
			scope:     domain.SaleScope{Since: since, RetailerID: "r-1"},
			wantWhere: "WHERE s.created_at >= $1 AND s.retailer_id = $2",
			wantArgs:  []any{since, "r-1"},
		},
		{
			name:      "agent",
			scope:     domain.SaleScope{Since: since, AgentProfileID: "a-1"},
			wantWhere: "WHERE s.created_at >= $1 AND r.agent_profile_id = $2",
			wantArgs:  []any{since, "a-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := saleFilter(tt.scope)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
