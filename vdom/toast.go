package vdom

import "fmt"

// ToastSurface describes one toast the page should carry.
type ToastSurface struct {
	ContainerID string
	MessageID   string
	// Variant is a Bootstrap contextual class suffix such as "success" or "danger".
	Variant string
}

// Toast builds the Bootstrap markup for a single toast surface:
//
//	<div id="{container}" class="toast ... text-bg-{variant}" role="alert" ...>
//	  <div class="d-flex">
//	    <div class="toast-body"><span id="{message}"></span></div>
//	    <button class="btn-close ..." data-bs-dismiss="toast"></button>
//	  </div>
//	</div>
func Toast(s ToastSurface) *VNode {
	variant := s.Variant
	if variant == "" {
		variant = "secondary"
	}

	body := Div(map[string]string{"class": "toast-body"})
	if s.MessageID != "" {
		body.Children = append(body.Children, Span("", map[string]string{"id": s.MessageID}))
	}

	return Div(map[string]string{
		"id":          s.ContainerID,
		"class":       fmt.Sprintf("toast align-items-center text-bg-%s border-0", variant),
		"role":        "alert",
		"aria-live":   "assertive",
		"aria-atomic": "true",
	},
		Div(map[string]string{"class": "d-flex"},
			body,
			Button("", map[string]string{
				"type":            "button",
				"class":           "btn-close btn-close-white me-2 m-auto",
				"data-bs-dismiss": "toast",
				"aria-label":      "Close",
			}),
		),
	)
}

// ToastContainer wraps toast surfaces in the fixed-position stack Bootstrap
// uses to place toasts in the bottom-right corner.
func ToastContainer(surfaces ...ToastSurface) *VNode {
	root := Div(map[string]string{"class": "toast-container position-fixed bottom-0 end-0 p-3"})
	for _, s := range surfaces {
		root.Children = append(root.Children, Toast(s))
	}
	return root
}
