package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
)

const maxNameLength = 100

// characterFields are the character metadata a user can type in. Nil fields
// were not given and are not checked.
type characterFields struct {
	Name  *string
	Level *int
}

func (f characterFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.NilOrNotEmpty.Error("name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&f.Level,
			validation.NilOrNotEmpty.Error("level must be at least 1"),
			validation.Min(1).Error("level must be at least 1"),
		),
	)
}

// itemFields are the item values a user can type in
type itemFields struct {
	Name     string
	Quantity int
	Weight   float64
	Value    float64
	Rarity   string
}

func (f itemFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("item name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&f.Quantity,
			validation.Required.Error("quantity must be at least 1"),
			validation.Min(1).Error("quantity must be at least 1"),
		),
		validation.Field(&f.Weight, validation.Min(0.0).Error("weight cannot be negative")),
		validation.Field(&f.Value, validation.Min(0.0).Error("value cannot be negative")),
		validation.Field(&f.Rarity, validation.By(isRarity)),
	)
}

// coinFields are a currency amount and denomination a user can type in
type coinFields struct {
	Amount       int
	Denomination string
}

func (f coinFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Amount, validation.Min(0).Error("amount cannot be negative")),
		validation.Field(&f.Denomination,
			validation.Required.Error("denomination is required"),
			validation.By(isDenomination),
		),
	)
}

func isRarity(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := entities.ParseRarity(s)
	return err
}

func isDenomination(value interface{}) error {
	s, _ := value.(string)
	_, err := entities.ParseDenomination(s)
	return err
}

// checkInput runs ozzo validation and reports failures as invalid arguments
func checkInput(v validation.Validatable) error {
	if err := v.Validate(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid input")
	}
	return nil
}
