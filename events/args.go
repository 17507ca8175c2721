// Package events exposes Go callbacks to page scripts.
package events

// NotifyArgs converts loosely typed script arguments into the arguments of
// a notify call: a message and an optional success flag defaulting to true.
// Missing or empty messages become "".
func NotifyArgs(args []any) (message string, isSuccess bool) {
	isSuccess = true
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			message = s
		}
	}
	if len(args) > 1 {
		if b, ok := args[1].(bool); ok {
			isSuccess = b
		}
	}
	return message, isSuccess
}
