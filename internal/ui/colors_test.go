package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tfsum/internal/config"
)

func TestParseColorToAnsi(t *testing.T) {
	assert.Equal(t, "\033[38;2;255;51;51m", parseColorToAnsi("#ff3333"))
	// Short form expands per channel.
	assert.Equal(t, "\033[38;2;255;255;255m", parseColorToAnsi("#fff"))
	// Invalid input falls back to white.
	assert.Equal(t, "\033[37m", parseColorToAnsi("not-a-color"))
}

func TestInitColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Colors.Error = "#000000"
	InitColors(cfg)
	t.Cleanup(func() { InitColors(config.DefaultConfig()) })

	assert.Equal(t, "\033[38;2;0;0;0m", ColorError)
	assert.Equal(t, "#000000", GetHexColorByName("error"))
}

func TestActionColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, ActionColor("create"))
	assert.Equal(t, ColorWarning, ActionColor("update"))
	assert.Equal(t, ColorError, ActionColor("delete"))
	assert.Equal(t, ColorFaint, ActionColor("no-op"))
}

func TestImpactColor(t *testing.T) {
	assert.Equal(t, ColorError, ImpactColor("high"))
	assert.Equal(t, ColorWarning, ImpactColor("medium"))
	assert.Equal(t, ColorSuccess, ImpactColor("low"))
}
