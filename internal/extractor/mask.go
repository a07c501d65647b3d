package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

// BuildMaskPrompt builds the PII masking prompt for one transcript.
func BuildMaskPrompt(transcript string) string {
	return fmt.Sprintf(maskPrompt, transcript)
}

const maskPrompt = `You are a PII (Personally Identifiable Information) detection and masking tool. Review the following transcript and mask any sensitive personal information.

Masking formats, exactly as shown:
- Names: keep the first name and mask the last name ("John Santos" becomes "John [LASTNAME]"). The agent's name in the transcript metadata (after "Agent Name:") is never masked.
- Usernames: "[USERNAME]".
- Passwords: "[PASSWORD]".
- Email addresses: "[EMAIL]".
- Phone numbers: "[PHONE]".
- Home or work addresses: "[ADDRESS]".
- Identification or passport numbers: "[ID]".
- Credit or debit card numbers: keep only the last four digits ("4111-1111-1111-1234" becomes "[CARD: **** **** **** 1234]").
- PINs or access codes: "[PIN/CODE]".

Rules:
1. Do not change non-sensitive content.
2. Keep the full transcript, its structure and its dialogue. Do not summarize.
3. Do not mask metadata identifiers such as Call IDs or Eureka IDs.

Transcript to process:
---
%s
---

Return ONLY the masked transcript, with no introduction or explanation.`

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	cardRe  = regexp.MustCompile(`\b(?:\d[ -]?){12,18}\d\b`)
	phoneRe = regexp.MustCompile(`\b\d{3}[-. ]\d{3}[-. ]\d{4}\b`)
)

// MockMask masks emails, card numbers and phone numbers with the same
// placeholders the live masker uses. Names are left alone.
func MockMask(transcript string) string {
	out := emailRe.ReplaceAllString(transcript, "[EMAIL]")
	out = cardRe.ReplaceAllStringFunc(out, func(card string) string {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, card)
		return "[CARD: **** **** **** " + digits[len(digits)-4:] + "]"
	})
	return phoneRe.ReplaceAllString(out, "[PHONE]")
}
