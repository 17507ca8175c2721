//go:build !wasm

package dialogs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_WritesMessage(t *testing.T) {
	var out bytes.Buffer
	p := &Terminal{Out: &out}

	p.Present("Save failed")

	assert.Equal(t, "[!] Save failed\n", out.String())
}

func TestTerminal_WaitsForAcknowledgement(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\nleft over")
	p := &Terminal{Out: &out, In: in, Prompt: "press enter "}

	p.Present("Save failed")

	assert.Equal(t, "[!] Save failed\npress enter ", out.String())
}

func TestTerminal_NilStreams(t *testing.T) {
	assert.NotPanics(t, func() { (&Terminal{}).Present("nowhere") })
}
