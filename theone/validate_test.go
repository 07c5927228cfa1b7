package theone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestValidatePositiveInteger(t *testing.T) {
	tests := []struct {
		name    string
		value   *int
		wantErr bool
	}{
		{name: "unset", value: nil},
		{name: "one", value: intPtr(1)},
		{name: "large", value: intPtr(1000)},
		{name: "zero", value: intPtr(0), wantErr: true},
		{name: "negative", value: intPtr(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveInteger(tt.value, "limit")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "limit must be a positive integer.", err.Error())
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.True(t, errors.Is(err, ErrSDK))
		})
	}
}

func TestValidateNonNegativeInteger(t *testing.T) {
	tests := []struct {
		name    string
		value   *int
		wantErr bool
	}{
		{name: "unset", value: nil},
		{name: "zero", value: intPtr(0)},
		{name: "positive", value: intPtr(7)},
		{name: "negative", value: intPtr(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegativeInteger(tt.value, "offset")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "offset must be a non-negative integer.", err.Error())

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "offset", vErr.Param)
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "object id", id: twoTowersID},
		{name: "empty", id: "", wantErr: true},
		{name: "blank", id: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id, "id")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "id must not be empty.", err.Error())
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name    string
		opts    []PageOption
		want    map[string]string
		absent  []string
		wantErr string
	}{
		{
			name:   "defaults",
			want:   map[string]string{"limit": "100"},
			absent: []string{"page", "offset"},
		},
		{
			name:   "limit and page",
			opts:   []PageOption{Limit(2), Page(1)},
			want:   map[string]string{"limit": "2", "page": "1"},
			absent: []string{"offset"},
		},
		{
			name:   "zero offset is still sent",
			opts:   []PageOption{Offset(0)},
			want:   map[string]string{"limit": "100", "offset": "0"},
			absent: []string{"page"},
		},
		{
			name: "last option wins",
			opts: []PageOption{Limit(5), Limit(10)},
			want: map[string]string{"limit": "10"},
		},
		{name: "zero limit", opts: []PageOption{Limit(0)}, wantErr: "limit must be a positive integer."},
		{name: "negative limit", opts: []PageOption{Limit(-1)}, wantErr: "limit must be a positive integer."},
		{name: "zero page", opts: []PageOption{Page(0)}, wantErr: "page must be a positive integer."},
		{name: "negative offset", opts: []PageOption{Offset(-1)}, wantErr: "offset must be a non-negative integer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := pageParams(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for k, v := range tt.want {
				assert.Equal(t, v, params.Get(k), k)
			}
			for _, k := range tt.absent {
				assert.False(t, params.Has(k), "unexpected %s parameter", k)
			}
		})
	}
}
