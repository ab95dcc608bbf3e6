package pipeline

// Payload is one plain text message under moderation. HasLinkEntity is set
// when the platform's rich-text annotations already mark a URL or text-link
// span, so the link filter does not have to re-parse what the platform parsed.
type Payload struct {
	ChatID        int64
	SenderID      int64
	Text          string
	HasLinkEntity bool
}
