package dialogs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vcrobe/nojs-toast/toast"
)

// Terminal presents fallback toasts on a text stream. When In is set the
// call blocks until a line is read from it, the way an alert blocks the page.
type Terminal struct {
	Out    io.Writer
	In     io.Reader
	Prompt string
}

var _ toast.Presenter = (*Terminal)(nil)

func (t *Terminal) Present(message string) {
	if t.Out != nil {
		fmt.Fprintf(t.Out, "[!] %s\n", message)
	}
	if t.In == nil {
		return
	}
	if t.Out != nil && t.Prompt != "" {
		fmt.Fprint(t.Out, t.Prompt)
	}
	// Errors and EOF both end the wait.
	_, _ = bufio.NewReader(t.In).ReadString('\n')
}
