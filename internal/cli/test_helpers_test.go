package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rwx-cloud/longlines/internal/cli"
	"github.com/rwx-cloud/longlines/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testSetup contains common test setup data
type testSetup struct {
	config     cli.Config
	service    cli.Service
	settings   *config.MemoryBackend
	mockStdin  *strings.Reader
	mockStdout *strings.Builder
	mockStderr *strings.Builder
	logs       *observer.ObservedLogs
	tmp        string
	originalWd string
}

// setupTest creates a service around in-memory streams and a temporary working directory
func setupTest(t *testing.T) *testSetup {
	return setupTestWithStdin(t, "")
}

func setupTestWithStdin(t *testing.T, stdin string) *testSetup {
	setup := &testSetup{}

	var err error
	setup.tmp, err = os.MkdirTemp(os.TempDir(), "cli-service")
	require.NoError(t, err)

	setup.tmp, err = filepath.EvalSymlinks(setup.tmp)
	require.NoError(t, err)

	setup.originalWd, err = os.Getwd()
	require.NoError(t, err)

	err = os.Chdir(setup.tmp)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	setup.logs = logs
	setup.settings = config.NewMemoryBackend()
	setup.mockStdin = strings.NewReader(stdin)
	setup.mockStdout = &strings.Builder{}
	setup.mockStderr = &strings.Builder{}

	setup.config = cli.Config{
		Stdin:           setup.mockStdin,
		Stdout:          setup.mockStdout,
		Stderr:          setup.mockStderr,
		Logger:          zap.New(core).Sugar(),
		SettingsBackend: setup.settings,
	}

	setup.service, err = cli.NewService(setup.config)
	require.NoError(t, err)

	t.Cleanup(func() {
		err := os.Chdir(setup.originalWd)
		require.NoError(t, err)
		err = os.RemoveAll(setup.tmp)
		require.NoError(t, err)
	})

	return setup
}
