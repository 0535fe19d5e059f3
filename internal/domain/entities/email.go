package entities

// EmailNotification is a templated message handed to the mail relay.
type EmailNotification struct {
	To       string
	ReplyTo  string
	Subject  string
	Template string         // template name without extension, e.g. "contact_confirmation"
	Data     map[string]any // template data
}
