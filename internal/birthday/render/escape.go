package render

import "strings"

// markdownV2Specials is the character set Telegram requires escaped in
// MarkdownV2 text.
const markdownV2Specials = "_*[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 escapes user-supplied text for MarkdownV2 rendering.
// Every outgoing name and date passes through here before formatting.
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownV2Specials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
