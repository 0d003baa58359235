package presentation

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

const phoneRegexPattern = `^(?=(?:\D*\d){6,})[0-9+()/ -]+$`

var (
	phoneExp = regexp2.MustCompile(phoneRegexPattern, regexp2.None)

	errInvalidPhone = errors.New("must contain at least 6 digits and only digits, spaces or + ( ) / -")
)

// Labels offered by the booking form.
var (
	PackageTypes = []interface{}{"basic", "standard", "premium"}
	Statuses     = []interface{}{domain.StatusUpcoming, domain.StatusCompleted, domain.StatusCancelled}
)

func (p CelebrantProfile) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.Name, validation.Required, validation.RuneLength(3, 101)),
		validation.Field(&p.DateOfBirth, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if s == "" {
				return nil
			}
			_, err := ParseDate(s)
			return err
		})),
		validation.Field(&p.ParentPhone, validation.Required, validation.RuneLength(1, 20), validation.By(phone)),
		validation.Field(&p.ParentEmail, validation.Required, validation.RuneLength(1, 100), is.Email),
		validation.Field(&p.Notes, validation.RuneLength(0, 500)),
	)
}

func (e PartyEvent) Validate() error {
	return validation.ValidateStruct(
		&e,
		validation.Field(&e.CelebrantID, validation.Required, is.Digit),
		validation.Field(&e.Date, validation.Required, validation.Date(DateLayout).Error(ErrMalformedDate.Error())),
		validation.Field(&e.StartTime, validation.Required, validation.Date(ClockLayout).Error(ErrMalformedTime.Error())),
		validation.Field(&e.EndTime, validation.Date(ClockLayout).Error(ErrMalformedTime.Error())),
		validation.Field(&e.PackageType, validation.Required, validation.In(PackageTypes...)),
		validation.Field(&e.GuestCount, validation.Required, validation.Min(1)),
		validation.Field(&e.Status, validation.Required, validation.In(Statuses...)),
		validation.Field(&e.Price, validation.Min(0.0)),
		validation.Field(&e.Deposit, validation.Min(0.0)),
		validation.Field(&e.Notes, validation.RuneLength(0, 100)),
	)
}

func phone(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := phoneExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPhone
	}
	return nil
}
