package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CostCategory is one entry of the backend's budget breakdown.
type CostCategory struct {
	Name   string
	Amount float64
}

// EstimatedCosts is the budget breakdown keyed by category name. Category
// names are unique and display order follows the response order, which a
// plain map would lose, so the JSON object is decoded token by token.
type EstimatedCosts struct {
	categories []CostCategory
	index      map[string]int
}

func NewEstimatedCosts(categories ...CostCategory) EstimatedCosts {
	var ec EstimatedCosts
	for _, c := range categories {
		ec.set(c.Name, c.Amount)
	}
	return ec
}

func (ec *EstimatedCosts) set(name string, amount float64) {
	if ec.index == nil {
		ec.index = make(map[string]int)
	}
	if i, ok := ec.index[name]; ok {
		// Duplicate key: last value wins, first position kept.
		ec.categories[i].Amount = amount
		return
	}
	ec.index[name] = len(ec.categories)
	ec.categories = append(ec.categories, CostCategory{Name: name, Amount: amount})
}

// Categories returns the breakdown in response order.
func (ec EstimatedCosts) Categories() []CostCategory {
	out := make([]CostCategory, len(ec.categories))
	copy(out, ec.categories)
	return out
}

// Amount returns the cost for a category name.
func (ec EstimatedCosts) Amount(name string) (float64, bool) {
	i, ok := ec.index[name]
	if !ok {
		return 0, false
	}
	return ec.categories[i].Amount, true
}

func (ec EstimatedCosts) Len() int {
	return len(ec.categories)
}

// Total sums all categories.
func (ec EstimatedCosts) Total() float64 {
	var total float64
	for _, c := range ec.categories {
		total += c.Amount
	}
	return total
}

func (ec *EstimatedCosts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("estimated_costs: expected object, got %v", tok)
	}

	ec.categories = nil
	ec.index = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("estimated_costs: non-string key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return fmt.Errorf("estimated_costs: category %q has non-numeric cost %v", key, valTok)
		}
		amount, err := num.Float64()
		if err != nil {
			return fmt.Errorf("estimated_costs: category %q: %w", key, err)
		}

		ec.set(key, amount)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (ec EstimatedCosts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range ec.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(c.Amount, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
