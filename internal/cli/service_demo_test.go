package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestService_Demo(t *testing.T) {
	t.Run("prints the sample sentence wrapped at 13", func(t *testing.T) {
		s := setupTest(t)

		require.NoError(t, s.service.Demo())
		require.Equal(t, "This long\nline is\nreally not\nthat long,\nbut it is not\nshort\neither.\n\n", s.mockStdout.String())
	})
}
