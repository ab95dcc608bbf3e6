package utils

// ChatKindLabel maps a platform chat kind to the label used in user-facing
// text.
func ChatKindLabel(kind string) string {
	switch kind {
	case "group", "supergroup":
		return "group"
	case "channel":
		return "channel"
	default:
		return "chat"
	}
}
