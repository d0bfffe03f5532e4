package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Styles(t *testing.T) {
	for _, style := range []string{"", "dark", "light", "plain"} {
		r, err := New(60, style)
		require.NoError(t, err, "style %q", style)
		require.Equal(t, 60, r.Width())
	}
}

func TestRender_PlainKeepsText(t *testing.T) {
	r, err := New(60, "plain")
	require.NoError(t, err)

	out, err := r.Render("Plans include a **monthly allowance**.\n\n- JSON\n- Parquet")
	require.NoError(t, err)

	require.Contains(t, out, "monthly allowance")
	require.Contains(t, out, "JSON")
	require.Contains(t, out, "Parquet")
	require.NotContains(t, out, "**")
}

func TestRender_PlainDropsEmphasisMarkers(t *testing.T) {
	r, err := New(60, "plain")
	require.NoError(t, err)

	out, err := r.Render("Retention is *per bucket* and ~~unlimited~~ capped.")
	require.NoError(t, err)

	require.Contains(t, out, "per bucket")
	require.Contains(t, out, "unlimited")
	require.NotContains(t, out, "*")
	require.NotContains(t, out, "~~")
}

func TestRender_Memoizes(t *testing.T) {
	r, err := New(40, "plain")
	require.NoError(t, err)

	first, err := r.Render("# Title")
	require.NoError(t, err)
	require.Len(t, r.cache, 1)

	second := r.MustRender("# Title")
	require.Equal(t, first, second)
	require.Len(t, r.cache, 1)
}
