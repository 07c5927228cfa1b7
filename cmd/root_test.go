package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/onering/config"
	"github.com/s0up4200/onering/filter"
	"github.com/s0up4200/onering/theone"
)

func TestPageOptionsForwardsOnlyChangedFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want theone.PageOptions
	}{
		{
			name: "nothing given",
			args: nil,
		},
		{
			name: "limit only",
			args: []string{"--limit", "5"},
			want: theone.PageOptions{Limit: intPtr(5)},
		},
		{
			name: "zero page is forwarded",
			args: []string{"--page", "0", "--offset", "3"},
			want: theone.PageOptions{Page: intPtr(0), Offset: intPtr(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "list"}
			addPageFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			var got theone.PageOptions
			for _, opt := range pageOptions(cmd) {
				opt(&got)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFilter(t *testing.T) {
	cfg = &config.Config{
		Filter: config.FilterConfig{
			Presets: map[string]string{"oscars": "Wins > 3"},
		},
	}
	compiler = filter.NewExprCompiler()
	t.Cleanup(func() {
		filterExpr, preset = "", ""
	})

	t.Run("no filter", func(t *testing.T) {
		filterExpr, preset = "", ""
		f, err := getFilter()
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("preset", func(t *testing.T) {
		filterExpr, preset = "", "Oscars"
		f, err := getFilter()
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.True(t, f.Evaluate(theone.Movie{AcademyAwardWins: intPtr(11)}))
	})

	t.Run("expression wins over preset", func(t *testing.T) {
		filterExpr, preset = `Name == "The Two Towers"`, "oscars"
		f, err := getFilter()
		require.NoError(t, err)
		assert.True(t, f.Evaluate(theone.Movie{Name: "The Two Towers"}))
	})

	t.Run("unknown preset", func(t *testing.T) {
		filterExpr, preset = "", "missing"
		_, err := getFilter()
		assert.ErrorContains(t, err, "preset 'missing' not found")
	})

	t.Run("invalid expression", func(t *testing.T) {
		filterExpr, preset = "Wins >", ""
		_, err := getFilter()
		assert.ErrorContains(t, err, "invalid filter expression")
	})
}

func intPtr(n int) *int { return &n }
