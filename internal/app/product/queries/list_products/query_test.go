package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
)

type recordingReadModel struct {
	filter *contracts.ListFilter
}

func (r *recordingReadModel) GetProductByID(context.Context, string) (*contracts.ProductDTO, error) {
	return nil, nil
}

func (r *recordingReadModel) ListProducts(_ context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	r.filter = filter
	return &contracts.ListResult{Page: filter.Page, Limit: filter.Limit}, nil
}

func TestQuery_Execute(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want contracts.ListFilter
	}{
		{
			name: "defaults",
			req:  Request{},
			want: contracts.ListFilter{Page: 1, Limit: 10},
		},
		{
			name: "explicit page and limit",
			req:  Request{Page: 3, Limit: 25},
			want: contracts.ListFilter{Page: 3, Limit: 25},
		},
		{
			name: "limit capped",
			req:  Request{Page: 1, Limit: 500},
			want: contracts.ListFilter{Page: 1, Limit: 100},
		},
		{
			name: "filters trimmed",
			req:  Request{CategoryID: " cat-1 ", Search: "  mouse "},
			want: contracts.ListFilter{CategoryID: "cat-1", Search: "mouse", Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := &recordingReadModel{}
			_, err := NewQuery(rm, 10, 100).Execute(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *rm.filter)
		})
	}
}
