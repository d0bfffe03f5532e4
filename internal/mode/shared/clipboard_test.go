package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldUseOSC52(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected bool
	}{
		{"no env vars set", map[string]string{}, false},
		{"SSH_TTY set", map[string]string{"SSH_TTY": "/dev/pts/0"}, true},
		{"SSH_CLIENT set", map[string]string{"SSH_CLIENT": "192.168.1.1 12345 22"}, true},
		{"TMUX set", map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}, true},
		{"screen set", map[string]string{"STY": "1234.pts-0.host"}, true},
		{"unrelated var", map[string]string{"TERM": "xterm"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			require.Equal(t, tt.expected, shouldUseOSC52(getenv))
		})
	}
}

// stubClipboard replaces the platform writers for one test.
func stubClipboard(t *testing.T, missing bool) (*string, *string) {
	t.Helper()
	var local, osc string
	prevWrite, prevMissing, prevOSC := writeAll, clipboardMissing, writeOSC52
	writeAll = func(text string) error { local = text; return nil }
	clipboardMissing = func() bool { return missing }
	writeOSC52 = func(text string) { osc = text }
	t.Cleanup(func() { writeAll, clipboardMissing, writeOSC52 = prevWrite, prevMissing, prevOSC })
	return &local, &osc
}

func clearRemoteEnv(t *testing.T) {
	for _, v := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		t.Setenv(v, "")
	}
}

func TestSystemClipboard_UsesPlatformClipboard(t *testing.T) {
	clearRemoteEnv(t)
	local, osc := stubClipboard(t, false)

	require.NoError(t, SystemClipboard{}.Copy("9b2f6c1e"))
	require.Equal(t, "9b2f6c1e", *local)
	require.Empty(t, *osc)
}

func TestSystemClipboard_OSC52OverSSH(t *testing.T) {
	clearRemoteEnv(t)
	t.Setenv("SSH_TTY", "/dev/pts/3")
	local, osc := stubClipboard(t, true)

	require.NoError(t, SystemClipboard{}.Copy("9b2f6c1e"))
	require.Equal(t, "9b2f6c1e", *osc)
	require.Empty(t, *local)
}

func TestSystemClipboard_Unsupported(t *testing.T) {
	clearRemoteEnv(t)
	local, _ := stubClipboard(t, true)

	require.ErrorIs(t, SystemClipboard{}.Copy("9b2f6c1e"), ErrNoClipboard)
	require.Empty(t, *local)
}

func TestMemoryClipboard(t *testing.T) {
	c := &MemoryClipboard{}
	require.NoError(t, c.Copy("sk_live"))
	require.Equal(t, "sk_live", c.Text)

	c.Err = errors.New("boom")
	require.Error(t, c.Copy("other"))
	require.Equal(t, "sk_live", c.Text)
}
