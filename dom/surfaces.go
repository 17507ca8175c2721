package dom

import (
	"sort"

	"github.com/vcrobe/nojs-toast/toast"
	"github.com/vcrobe/nojs-toast/vdom"
)

// Variant returns the Bootstrap contextual class used for a level.
func Variant(level toast.Level) string {
	switch level {
	case toast.LevelSuccess:
		return "success"
	case toast.LevelError:
		return "danger"
	case "warning":
		return "warning"
	case "info":
		return "info"
	}
	return "secondary"
}

// Surfaces converts targets into toast markup descriptions, ordered by level
// name so the generated markup is stable.
func Surfaces(targets toast.Targets) []vdom.ToastSurface {
	levels := make([]string, 0, len(targets))
	for level := range targets {
		levels = append(levels, string(level))
	}
	sort.Strings(levels)

	surfaces := make([]vdom.ToastSurface, 0, len(levels))
	for _, name := range levels {
		level := toast.Level(name)
		t := targets[level]
		surfaces = append(surfaces, vdom.ToastSurface{
			ContainerID: t.ContainerID,
			MessageID:   t.MessageID,
			Variant:     Variant(level),
		})
	}
	return surfaces
}
