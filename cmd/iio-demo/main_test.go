package main

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/status"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, platform.ProfileHost, cfg.Profile)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg, err = parseFlags([]string{"-profile", "aducm3029", "-listen", "127.0.0.1:0", "-advertise"})
	require.NoError(t, err)
	assert.Equal(t, "aducm3029", cfg.Profile)
	assert.Equal(t, "127.0.0.1:0", cfg.Listen)
	assert.True(t, cfg.Advertise)

	_, err = parseFlags([]string{"-log-level", "loud"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"extra"})
	assert.Error(t, err)
}

func TestLoadProfile(t *testing.T) {
	prof, err := loadProfile(Config{Profile: platform.ProfileXilinxPS, Listen: "127.0.0.1:4000"})
	require.NoError(t, err)
	assert.Equal(t, platform.ProfileXilinxPS, prof.Name)
	assert.Equal(t, "127.0.0.1:4000", prof.UART.Address)

	_, err = loadProfile(Config{Profile: "nope"})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: host\nuart:\n  baud_rate: 230400\n"), 0o600))
	prof, err = loadProfile(Config{Profile: platform.ProfileADuCM, ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, platform.ProfileHost, prof.Name)
	assert.Equal(t, uint32(230400), prof.UART.BaudRate)
}

func TestRunFailsOnUnknownProfile(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-profile", "nope", "-log-level", "error"}))
}

func TestRunReturnsFailingStageCode(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	code := run([]string{"-profile", "host", "-listen", busy.Addr().String(), "-log-level", "error"})
	assert.Equal(t, int(status.EIO), code)
	assert.Equal(t, 251, code&0xff, "what the shell reports as $?")
}

func TestNewProtocolLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture")
	l, closeLog, err := newProtocolLogger(path, newLogger("error"))
	require.NoError(t, err)
	require.NotNil(t, l)
	closeLog()

	_, err = os.Stat(path + ".ilog")
	assert.NoError(t, err)
}
