// Package terminal renders toasts as bordered boxes on a text stream, a
// toast.WidgetFactory for headless hosts built on dom.Memory.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcrobe/nojs-toast/toast"
)

var (
	successColor = lipgloss.Color("#22C55E")
	errorColor   = lipgloss.Color("#EF4444")
	warningColor = lipgloss.Color("#F59E0B")
	infoColor    = lipgloss.Color("#3B82F6")
	mutedColor   = lipgloss.Color("#6B7280")
)

// Factory builds terminal widgets writing to Out.
type Factory struct {
	Out io.Writer
	// Width caps the box width; zero leaves it unbounded.
	Width int
}

var _ toast.WidgetFactory = (*Factory)(nil)

// textContainer is what the factory needs from a container element.
type textContainer interface {
	TextContent() string
	Attr(name string) string
}

// NewWidget implements toast.WidgetFactory.
func (f *Factory) NewWidget(container toast.Element, opts toast.Options) (toast.Widget, error) {
	if f.Out == nil {
		return nil, errors.New("terminal: no output stream")
	}
	c, ok := container.(textContainer)
	if !ok {
		return nil, fmt.Errorf("terminal: container %T cannot be read", container)
	}
	return &widget{out: f.Out, container: c, opts: opts, width: f.Width}, nil
}

type widget struct {
	out       io.Writer
	container textContainer
	opts      toast.Options
	width     int
}

// Show renders the container's current text. The text is read at show time
// so the last write before showing wins.
func (w *widget) Show() {
	fmt.Fprintln(w.out, Render(w.container.TextContent(), w.container.Attr("class"), w.opts, w.width))
}

// Render draws message in a rounded box colored after the Bootstrap
// contextual class found in class.
func Render(message, class string, opts toast.Options, width int) string {
	color := colorFor(class)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}

	body := message
	if opts.Autohide {
		body += "\n" + lipgloss.NewStyle().Foreground(mutedColor).
			Render(fmt.Sprintf("dismisses in %s", opts.Delay))
	}
	return style.Render(body)
}

func colorFor(class string) lipgloss.Color {
	for _, c := range strings.Fields(class) {
		switch c {
		case "text-bg-success":
			return successColor
		case "text-bg-danger":
			return errorColor
		case "text-bg-warning":
			return warningColor
		case "text-bg-info":
			return infoColor
		}
	}
	return mutedColor
}
