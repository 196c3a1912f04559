package validators

import (
	"testing"

	"campusfind/lostfound-api/model"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Ab1", ErrPasswordTooShort},
		{"no uppercase", "password1", ErrPasswordNoUpper},
		{"no digit", "Passwords", ErrPasswordNoDigit},
		{"valid", "Sup3rSecret", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := PasswordValidator(tc.password)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestEmailValidator(t *testing.T) {
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	assert.NoError(t, EmailValidator("jordan.reyes@campus.edu"))
}

func TestItemValidator(t *testing.T) {
	valid := func() *model.Item {
		return &model.Item{
			Name:     "Blue Wallet",
			Category: "Wallet",
			Location: "Library",
			Status:   model.StatusLost,
		}
	}

	assert.NoError(t, ItemValidator(valid()))

	item := valid()
	item.Name = ""
	assert.ErrorIs(t, ItemValidator(item), ErrItemNameEmpty)

	item = valid()
	item.Category = ""
	assert.ErrorIs(t, ItemValidator(item), ErrItemCategoryEmpty)

	item = valid()
	item.Category = "Skateboard"
	assert.ErrorIs(t, ItemValidator(item), ErrItemCategoryBad)

	item = valid()
	item.Location = ""
	assert.ErrorIs(t, ItemValidator(item), ErrItemLocationEmpty)

	item = valid()
	item.Status = "Misplaced"
	assert.ErrorIs(t, ItemValidator(item), ErrItemStatusBad)
}
