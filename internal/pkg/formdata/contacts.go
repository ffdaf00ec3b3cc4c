package formdata

import (
	"fmt"
	"glucolog-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var (
	emailRegex      = regexp.MustCompile(constvars.RegexEmail)
	allDigitsRegex  = regexp.MustCompile(constvars.RegexAllDigits)
	phoneStripRegex = regexp.MustCompile(constvars.RegexPhoneStripChars)
)

// DecodeContacts decodes a contact-list value into validated emails and
// phones. Entries that fail validation produce a per-index entry in errs
// ("contacts.<i>") and are excluded; a malformed entry never aborts the
// rest of the list.
//
// Classification is first-match-wins: an entry is an email when its coded
// type mentions "email" or the value contains "@", otherwise a phone. An
// email-like phone-extension string will therefore land in the email
// bucket; upstream accepts that ambiguity.
func (e *Extractor) DecodeContacts(raw interface{}) (emails, phones []string, errs map[string]string) {
	errs = make(map[string]string)

	list, ok := raw.([]interface{})
	if !ok {
		return nil, nil, errs
	}

	for i, entryRaw := range list {
		entry, ok := entryRaw.(map[string]interface{})
		if !ok {
			continue
		}

		// Older form versions wrap the entry fields under "values",
		// newer ones present them directly.
		fields := entry
		if wrapped, ok := entry["values"].(map[string]interface{}); ok {
			fields = wrapped
		}

		typeText := contactTypeText(fields["type"])
		value := strings.TrimSpace(e.contactValue(fields["value"]))
		key := fmt.Sprintf("contacts.%d", i)

		if value == "" {
			errs[key] = "contact value is empty"
			continue
		}

		isEmail := strings.Contains(strings.ToLower(typeText), "email") || strings.Contains(value, "@")
		if isEmail {
			if emailRegex.MatchString(value) {
				emails = append(emails, value)
			} else {
				errs[key] = fmt.Sprintf("%q is not a valid email address", value)
			}
			continue
		}

		stripped := phoneStripRegex.ReplaceAllString(value, "")
		if stripped != "" && allDigitsRegex.MatchString(stripped) {
			phones = append(phones, value)
		} else {
			errs[key] = fmt.Sprintf("%q is not a valid phone number", value)
		}
	}

	return emails, phones, errs
}

// contactTypeText accepts both a {code, text} pair and a plain string;
// upstream form versions emit either.
func contactTypeText(raw interface{}) string {
	switch v := raw.(type) {
	case map[string]interface{}:
		text, _ := v["text"].(string)
		return text
	case string:
		return v
	default:
		return ""
	}
}

// contactValue reads a contact string that may arrive as a serialized
// rich-text payload or as a plain string.
func (e *Extractor) contactValue(raw interface{}) string {
	if text := e.RichText(raw); text != "" {
		return text
	}
	value, _ := raw.(string)
	return value
}
