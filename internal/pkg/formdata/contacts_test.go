package formdata

import (
	"glucolog-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContacts(t *testing.T) {
	extractor := NewExtractor(nil)

	t.Run("classifies emails and phones", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"type": "Email", "value": "ana@example.com"},
			map[string]interface{}{"type": "Telefone", "value": "+55 (11) 98765-4321"},
		}

		emails, phones, errs := extractor.DecodeContacts(raw)
		assert.Equal(t, []string{"ana@example.com"}, emails)
		assert.Equal(t, []string{"+55 (11) 98765-4321"}, phones)
		assert.Empty(t, errs)
	})

	t.Run("values wrapper from older form versions", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{
				"values": map[string]interface{}{
					"type":  map[string]interface{}{"code": "email", "text": "E-mail"},
					"value": "joao@example.com",
				},
			},
		}

		emails, phones, errs := extractor.DecodeContacts(raw)
		assert.Equal(t, []string{"joao@example.com"}, emails)
		assert.Empty(t, phones)
		assert.Empty(t, errs)
	})

	t.Run("rich text contact value", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{
				"type":  "Email",
				"value": `{"blocks":[{"key":"a","text":"maria@example.com","type":"unstyled"}],"entityMap":{}}`,
			},
		}

		emails, _, errs := extractor.DecodeContacts(raw)
		assert.Equal(t, []string{"maria@example.com"}, emails)
		assert.Empty(t, errs)
	})

	t.Run("value containing @ is treated as email regardless of type", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"type": "Telefone", "value": "carlos@example.com"},
		}

		emails, phones, errs := extractor.DecodeContacts(raw)
		assert.Equal(t, []string{"carlos@example.com"}, emails)
		assert.Empty(t, phones)
		assert.Empty(t, errs)
	})

	t.Run("invalid entries produce per index errors", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"type": "Email", "value": "not-an-email@"},
			map[string]interface{}{"type": "Telefone", "value": "12a34"},
			map[string]interface{}{"type": "Telefone", "value": "11 2345-6789"},
		}

		emails, phones, errs := extractor.DecodeContacts(raw)
		assert.Empty(t, emails)
		assert.Equal(t, []string{"11 2345-6789"}, phones)
		require.Len(t, errs, 2)
		assert.Contains(t, errs, "contacts.0")
		assert.Contains(t, errs, "contacts.1")
	})

	t.Run("empty value is an error", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"type": "Email", "value": ""},
		}

		_, _, errs := extractor.DecodeContacts(raw)
		assert.Contains(t, errs, "contacts.0")
	})

	t.Run("non list input yields nothing", func(t *testing.T) {
		emails, phones, errs := extractor.DecodeContacts(nil)
		assert.Empty(t, emails)
		assert.Empty(t, phones)
		assert.Empty(t, errs)
	})
}

func TestExtractUserInfo(t *testing.T) {
	extractor := NewExtractor(nil)

	t.Run("valid registration", func(t *testing.T) {
		submission := map[string]interface{}{
			constvars.RegistrationPathName:       "Ana Souza",
			constvars.RegistrationPathUserID:     "12345678",
			constvars.RegistrationPathStreet:     "Rua das Flores 100",
			constvars.RegistrationPathCity:       "São Paulo",
			constvars.RegistrationPathDistrict:   "Centro",
			constvars.RegistrationPathPostalCode: "01000-000",
			constvars.RegistrationPathCountry:    "Brasil",
			constvars.RegistrationPathContacts: []interface{}{
				map[string]interface{}{"type": "Email", "value": "ana@example.com"},
				map[string]interface{}{"type": "Telefone", "value": "11 98765-4321"},
			},
			constvars.RegistrationPathGender: []interface{}{
				map[string]interface{}{"code": "female", "text": "Feminino"},
			},
			constvars.RegistrationPathHeight:    165.0,
			constvars.RegistrationPathWeight:    "62.5",
			constvars.RegistrationPathBirthDate: "1990-06-01",
		}

		record, err := extractor.ExtractUserInfo(submission)
		require.NoError(t, err)

		assert.True(t, record.Valid)
		assert.Empty(t, record.Errors)
		assert.Equal(t, "Ana Souza", record.Name)
		assert.Equal(t, "12345678", record.UserID)
		assert.Equal(t, "São Paulo", record.Address.City)
		assert.Equal(t, []string{"ana@example.com"}, record.Emails)
		assert.Equal(t, []string{"11 98765-4321"}, record.Phones)
		assert.Equal(t, "female", record.Gender)
		require.NotNil(t, record.Height)
		assert.Equal(t, 165.0, *record.Height)
		assert.Equal(t, "1990-06-01", record.BirthDate)
	})

	t.Run("non digit user id is a field error not a failure", func(t *testing.T) {
		record, err := extractor.ExtractUserInfo(map[string]interface{}{
			constvars.RegistrationPathUserID: "abc123",
		})
		require.NoError(t, err)

		assert.False(t, record.Valid)
		assert.Contains(t, record.Errors, "user_id")
	})

	t.Run("contact errors are merged by index", func(t *testing.T) {
		record, err := extractor.ExtractUserInfo(map[string]interface{}{
			constvars.RegistrationPathUserID: "99887766",
			constvars.RegistrationPathContacts: []interface{}{
				map[string]interface{}{"type": "Email", "value": "broken@"},
			},
		})
		require.NoError(t, err)

		assert.False(t, record.Valid)
		assert.Contains(t, record.Errors, "contacts.0")
		assert.NotContains(t, record.Errors, "user_id")
	})

	t.Run("unparseable submission fails", func(t *testing.T) {
		_, err := extractor.ExtractUserInfo("{broken")
		assert.Error(t, err)
	})
}
