package dto

import (
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the enum validators used by the binding
// tags above on gin's validator engine. Call once at startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("partytype", validPartyType)
	_ = v.RegisterValidation("accounttype", validAccountType)
	_ = v.RegisterValidation("txsubject", validTransactionSubject)
}

var validPartyType validator.Func = func(fl validator.FieldLevel) bool {
	return domain.PartyType(fl.Field().String()).Valid()
}

var validAccountType validator.Func = func(fl validator.FieldLevel) bool {
	return domain.AccountType(fl.Field().String()).Valid()
}

var validTransactionSubject validator.Func = func(fl validator.FieldLevel) bool {
	return domain.TransactionSubject(fl.Field().String()).Valid()
}
