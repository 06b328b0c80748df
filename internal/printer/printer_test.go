package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestVerdict_Colored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	detect := Verdict("DETECT")
	assert.Contains(t, detect, "DETECT")
	assert.True(t, strings.Contains(detect, "\x1b["), "DETECT should carry an ANSI escape")

	miss := Verdict("MISS")
	assert.Contains(t, miss, "MISS")
	assert.NotEqual(t, detect, miss)
}

func TestVerdict_Plain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	assert.Equal(t, "DETECT", Verdict("DETECT"))
	assert.Equal(t, "MISS", Verdict("MISS"))
}

func captureColorOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevOut := color.Output
	prevNoColor := color.NoColor
	var buf bytes.Buffer
	color.Output = &buf
	color.NoColor = true
	t.Cleanup(func() {
		color.Output = prevOut
		color.NoColor = prevNoColor
	})
	return &buf
}

func TestSuccess_PrefixesCheckmark(t *testing.T) {
	buf := captureColorOutput(t)

	Success("session complete\n")
	assert.Equal(t, "✓ session complete\n", buf.String())

	buf.Reset()
	Success("✓ already prefixed\n")
	assert.Equal(t, "✓ already prefixed\n", buf.String())
}

func TestWarning_PrefixesEmoji(t *testing.T) {
	buf := captureColorOutput(t)

	Warning("could not place ship of length %d\n", 3)
	assert.Equal(t, "⚠️  could not place ship of length 3\n", buf.String())
}

func TestStep_PrefixesArrow(t *testing.T) {
	buf := captureColorOutput(t)

	Step("scanning a %dx%d board\n", 8, 8)
	assert.Equal(t, "→ scanning a 8x8 board\n", buf.String())
}

func TestError_ReturnsTitle(t *testing.T) {
	err := Error("Setup failed", "the fleet does not fit on the board", []string{
		"Reduce the number of ships",
		"Increase board.size in qfleet.yml",
	})
	assert.EqualError(t, err, "Setup failed")
}
