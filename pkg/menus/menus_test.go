package menus

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, c := range Choices() {
		got, err := Parse(fmt.Sprintf(" %d\n", int(c)))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, bad := range []string{"0", "10", "-1", "two", ""} {
		_, err := Parse(bad)
		assert.True(t, errors.Is(err, ErrUnknownChoice), bad)
	}
}

func TestRender(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(Render()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "1. Add Current Season Race", lines[0])
	assert.Equal(t, "9. Exit", lines[8])
}

func TestString(t *testing.T) {
	assert.Equal(t, "Display F1 Crash Statistics", CrashStatistics.String())
	assert.Equal(t, "Choice(42)", Choice(42).String())
	assert.False(t, Choice(42).Valid())
}
