package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IssueRequest struct {
	Username string        `validate:"required,alphanum,min=3,max=30"`
	TTL      time.Duration `validate:"required,gt=0"`
}

func ValidateIssue(req IssueRequest) error {
	return validate.Struct(req)
}
