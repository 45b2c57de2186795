package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"", nil},
		{"sp", nil},
		{"ελ", nil},
		{"ελλ", []string{}},
		{"nba", []string{"nba"}},
		{"SPORTS", []string{"sky sports", "bein sports", "fox sports"}},
		{"  league ", []string{"premier league", "champions league"}},
		{"cricket", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Search(tt.term)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ch := Channels()
	ch[0].Name = "changed"
	require.NotEqual(t, "changed", Channels()[0].Name)

	tiers := Pricing()
	tiers[0].FeatureKeys[0] = "changed"
	require.Equal(t, "features.tvChannels", Pricing()[0].FeatureKeys[0])

	f := Features()
	f[0].Devices[0] = "changed"
	require.Equal(t, "fab fa-android", Features()[0].Devices[0])
}

func TestSectionIDsFollowNavOrder(t *testing.T) {
	require.Equal(t, []string{"home", "channels", "features", "pricing", "support"}, SectionIDs())
}

func TestTier(t *testing.T) {
	p, ok := Tier("semiannual")
	require.True(t, ok)
	assert.Equal(t, 38, p.Price)
	assert.True(t, p.Popular)

	_, ok = Tier("lifetime")
	require.False(t, ok)
}

func TestMediaItemsHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, items := range [][]MediaItem{Channels(), Showcase(), Leagues()} {
		for _, it := range items {
			require.NotEmpty(t, it.ID)
			require.False(t, seen[it.ID], "duplicate id %s", it.ID)
			seen[it.ID] = true
		}
	}
}
