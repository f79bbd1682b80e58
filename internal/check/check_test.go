package check

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestEnsureFfprobe_Missing(t *testing.T) {
	t.Setenv("PATH", "")
	assert.ErrorIs(t, EnsureFfprobe(), ErrFfprobeNotFound)
}

func TestEnsureFfprobe_Present(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}
	assert.NoError(t, EnsureFfprobe())
}

func TestRunCheck_Missing(t *testing.T) {
	t.Setenv("PATH", "")

	var buf bytes.Buffer
	assert.False(t, RunCheck(&buf))
	assert.Contains(t, buf.String(), "not found in PATH")
}

func TestRunCheck_Present(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}

	var buf bytes.Buffer
	assert.True(t, RunCheck(&buf))
	assert.Contains(t, buf.String(), "ffprobe: ")
	assert.Contains(t, buf.String(), "ffprobe version")
}
