package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price est un montant en euros stocké en NUMERIC(6,2).
// Sur le fil il circule toujours comme une chaîne à deux décimales ("5.50").
type Price struct {
	d decimal.Decimal
}

func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("prix invalide %q: %w", s, err)
	}
	if d.IsNegative() {
		return Price{}, fmt.Errorf("prix négatif %q", s)
	}
	if d.Exponent() < -2 {
		return Price{}, fmt.Errorf("prix %q: deux décimales maximum", s)
	}
	return Price{d: d}, nil
}

func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) String() string { return p.d.StringFixed(2) }

func (p Price) Equal(o Price) bool { return p.d.Equal(o.d) }

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Tolère un nombre JSON nu ("price": 5.5) en plus de la chaîne.
		s = string(data)
	}
	parsed, err := NewPrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *Price) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = Price{}
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		*p = Price{d: d}
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		*p = Price{d: d}
	case float64:
		*p = Price{d: decimal.NewFromFloat(v)}
	case int64:
		*p = Price{d: decimal.NewFromInt(v)}
	default:
		return fmt.Errorf("type %T non supporté pour Price", value)
	}
	return nil
}

// GormDataType force la colonne décimale attendue par le schéma.
func (Price) GormDataType() string { return "decimal(6,2)" }
