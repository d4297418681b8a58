package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Denomination names one of the four coin types
type Denomination string

const (
	DenominationCopper   Denomination = "copper"
	DenominationSilver   Denomination = "silver"
	DenominationGold     Denomination = "gold"
	DenominationPlatinum Denomination = "platinum"
)

// Rate returns the value of one coin in copper pieces, or 0 for an unknown denomination
func (d Denomination) Rate() int {
	switch d {
	case DenominationCopper:
		return 1
	case DenominationSilver:
		return 10
	case DenominationGold:
		return 100
	case DenominationPlatinum:
		return 1000
	default:
		return 0
	}
}

// IsValid checks if the denomination is known
func (d Denomination) IsValid() bool {
	return d.Rate() > 0
}

// Abbreviation returns the short coin name, e.g. "gp"
func (d Denomination) Abbreviation() string {
	switch d {
	case DenominationCopper:
		return "cp"
	case DenominationSilver:
		return "sp"
	case DenominationGold:
		return "gp"
	case DenominationPlatinum:
		return "pp"
	default:
		return ""
	}
}

// AllDenominations returns every denomination from most to least valuable
func AllDenominations() []Denomination {
	return []Denomination{
		DenominationPlatinum,
		DenominationGold,
		DenominationSilver,
		DenominationCopper,
	}
}

// ParseDenomination accepts full names or abbreviations, ignoring case
func ParseDenomination(s string) (Denomination, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDenominations() {
		if name == string(d) || name == d.Abbreviation() {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown denomination: %q", s)
}

// Currency holds a character's coins
type Currency struct {
	Platinum int
	Gold     int
	Silver   int
	Copper   int
}

// Conversion describes the outcome of converting coins between denominations
type Conversion struct {
	Amount int
	From   Denomination
	To     Denomination
	// Result is the exact converted amount, possibly fractional.
	Result decimal.Decimal
	// Credited is the whole number of coins added to To when applied.
	Credited int
}

// TotalInCopper returns the value of all coins in copper pieces
func (c Currency) TotalInCopper() int {
	return c.Copper + c.Silver*10 + c.Gold*100 + c.Platinum*1000
}

// String formats the coins the way the character sheet shows them
func (c Currency) String() string {
	return fmt.Sprintf("PP: %d, GP: %d, SP: %d, CP: %d", c.Platinum, c.Gold, c.Silver, c.Copper)
}

// Balance returns the number of coins held in a denomination
func (c Currency) Balance(d Denomination) int {
	p := c.field(d)
	if p == nil {
		return 0
	}
	return *p
}

// SetBalance replaces the number of coins held in a denomination
func (c *Currency) SetBalance(d Denomination, amount int) error {
	p := c.field(d)
	if p == nil {
		return fmt.Errorf("unknown denomination: %q", d)
	}
	*p = amount
	return nil
}

// Convert computes amount × rate(from) / rate(to) without changing any balance
func (c Currency) Convert(amount int, from, to Denomination) (decimal.Decimal, error) {
	if !from.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown denomination: %q", from)
	}
	if !to.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown denomination: %q", to)
	}

	copper := decimal.NewFromInt(int64(amount)).Mul(decimal.NewFromInt(int64(from.Rate())))
	return copper.Div(decimal.NewFromInt(int64(to.Rate()))), nil
}

// ApplyConversion moves amount coins out of from and credits the truncated
// converted value to to. Any fractional remainder is lost and from may go
// negative; callers wanting a guard must check Balance first.
func (c *Currency) ApplyConversion(amount int, from, to Denomination) (Conversion, error) {
	result, err := c.Convert(amount, from, to)
	if err != nil {
		return Conversion{}, err
	}

	credited := int(result.IntPart())
	*c.field(from) -= amount
	*c.field(to) += credited

	return Conversion{
		Amount:   amount,
		From:     from,
		To:       to,
		Result:   result,
		Credited: credited,
	}, nil
}

func (c *Currency) field(d Denomination) *int {
	switch d {
	case DenominationCopper:
		return &c.Copper
	case DenominationSilver:
		return &c.Silver
	case DenominationGold:
		return &c.Gold
	case DenominationPlatinum:
		return &c.Platinum
	default:
		return nil
	}
}
