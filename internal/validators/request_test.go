package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/models"
)

func TestRequestValidator_Valid(t *testing.T) {
	v := NewRequestValidator(English)

	err := v.Validate(context.Background(), models.RegisterRequest{
		Email:    "ann@example.com",
		Password: "longenough",
		Username: "ann",
	})

	assert.NoError(t, err)
}

func TestRequestValidator_Failures(t *testing.T) {
	tests := []struct {
		name      string
		obj       any
		lang      Language
		wantField string
		wantRule  string
		wantMsg   string
	}{
		{
			name:      "blank title",
			obj:       models.DiaryRequest{Title: "   "},
			lang:      English,
			wantField: "title",
			wantRule:  "notblank",
			wantMsg:   "title must not be blank",
		},
		{
			name:      "missing title in russian",
			obj:       &models.DiaryRequest{},
			lang:      Russian,
			wantField: "title",
			wantRule:  "required",
			wantMsg:   "поле title обязательно",
		},
		{
			name:      "short password",
			obj:       models.PasswordResetConfirm{Token: "t", Password: "short"},
			lang:      English,
			wantField: "password",
			wantRule:  "min",
			wantMsg:   "password must be at least 8 characters long",
		},
		{
			name: "bad receiver e-mail",
			obj: models.CapsuleRequest{
				Title: "t", Content: "c", Deadline: time.Now(),
				ReceiverEmails: []string{"ok@example.com", "nope"},
			},
			lang:      English,
			wantField: "receiverEmails[1]",
			wantRule:  "email",
		},
		{
			name:      "negative offset",
			obj:       models.LayoutReport{SubPageID: "s1", Offset: -3},
			lang:      English,
			wantField: "offset",
			wantRule:  "gte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestValidator(tt.lang).Validate(context.Background(), tt.obj)

			require.ErrorIs(t, err, ErrValidation)
			var failures ValidationErrors
			require.True(t, errors.As(err, &failures))
			require.NotEmpty(t, failures)
			assert.Equal(t, tt.wantField, failures[0].Field)
			assert.Equal(t, tt.wantRule, failures[0].Rule)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, failures[0].Message)
			}
		})
	}
}

func TestRequestValidator_PartialFields(t *testing.T) {
	v := NewRequestValidator(English)

	err := v.Validate(context.Background(), models.RegisterRequest{Email: "ann@example.com"}, "Email")

	assert.NoError(t, err)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator(English)

	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.DiaryRequest)(nil)), ErrUnsupportedType)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Russian, ParseLanguage("ru"))
	assert.Equal(t, English, ParseLanguage("de"))
}
