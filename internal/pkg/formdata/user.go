package formdata

import (
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"strings"
)

// ExtractUserInfo decodes a registration form submission. Data-quality
// problems (malformed user id, bad contacts) never fail the call; they are
// accumulated into the record's Errors map and Valid is set accordingly, so
// the caller can hand field-level feedback back to the form.
func (e *Extractor) ExtractUserInfo(input interface{}) (*models.UserRegistrationRecord, error) {
	submission, err := ParseSubmission(input)
	if err != nil {
		return nil, err
	}

	record := &models.UserRegistrationRecord{
		Name: strings.TrimSpace(submission.StringAt(constvars.RegistrationPathName)),
		Address: models.Address{
			Street:     submission.StringAt(constvars.RegistrationPathStreet),
			City:       submission.StringAt(constvars.RegistrationPathCity),
			District:   submission.StringAt(constvars.RegistrationPathDistrict),
			PostalCode: submission.StringAt(constvars.RegistrationPathPostalCode),
			Country:    submission.StringAt(constvars.RegistrationPathCountry),
		},
		Gender:    submission.FirstCodedCodeAt(constvars.RegistrationPathGender),
		Height:    toNumber(submission.Value(constvars.RegistrationPathHeight)),
		Weight:    toNumber(submission.Value(constvars.RegistrationPathWeight)),
		BirthDate: submission.StringAt(constvars.RegistrationPathBirthDate),
		Errors:    make(map[string]string),
	}

	record.UserID = strings.TrimSpace(submission.StringAt(constvars.RegistrationPathUserID))
	if record.UserID == "" || !allDigitsRegex.MatchString(record.UserID) {
		record.Errors["user_id"] = "must contain only digits"
	}

	emails, phones, contactErrs := e.DecodeContacts(submission.Value(constvars.RegistrationPathContacts))
	record.Emails = emails
	record.Phones = phones
	for field, message := range contactErrs {
		record.Errors[field] = message
	}

	record.Valid = len(record.Errors) == 0
	return record, nil
}
