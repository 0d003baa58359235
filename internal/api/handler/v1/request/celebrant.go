package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/presentation"
)

// CelebrantRequest is the body of POST and PUT /Celebrants. Field rules are
// checked by the service; Validate only checks what must parse here.
type CelebrantRequest struct {
	Code        uint    `json:"code"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth" example:"2015-06-01"`
	Note        *string `json:"note"`
}

func (req *CelebrantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DateOfBirth, validation.By(date)),
	)
}

func (req *CelebrantRequest) ToDomain() domain.Celebrant {
	c := domain.Celebrant{
		Code:      req.Code,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Note:      req.Note,
	}

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		if dob, err := presentation.ParseDate(*req.DateOfBirth); err == nil {
			c.DateOfBirth = &dob
		}
	}

	return c
}

func date(value interface{}) error {
	value, _ = validation.Indirect(value)
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	_, err := presentation.ParseDate(s)
	return err
}
