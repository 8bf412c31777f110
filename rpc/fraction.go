package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/storage"
)

func calculate(method string, params []interface{}) (map[string]interface{}, error) {
	a, b, err := readFractionPair(params)
	if err != nil {
		return nil, err
	}
	var f common.Fraction
	switch method {
	case "add":
		f, err = a.Add(b)
	case "sub":
		f, err = a.Sub(b)
	case "mul":
		f, err = a.Mul(b)
	case "div":
		f, err = a.Div(b)
	}
	if err != nil {
		return nil, err
	}
	return fractionView(f), nil
}

func compare(params []interface{}) (map[string]interface{}, error) {
	a, b, err := readFractionPair(params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"cmp":   a.Cmp(b),
		"equal": a.Equal(b),
	}, nil
}

func transform(method string, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	f, err := readFraction(params[0])
	if err != nil {
		return nil, err
	}
	switch method {
	case "neg":
		f, err = f.Neg()
	case "inv":
		f, err = f.Inv()
	}
	if err != nil {
		return nil, err
	}
	return fractionView(f), nil
}

func parse(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	f, err := readFraction(params[0])
	if err != nil {
		return nil, err
	}
	return fractionView(f), nil
}

func fromFloat(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	var s string
	switch v := params[0].(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	default:
		return nil, fmt.Errorf("invalid decimal %v", params[0])
	}
	f, err := common.NewFractionFromDecimalString(s)
	if err != nil {
		return nil, err
	}
	return fractionView(f), nil
}

func toFloat(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	f, err := readFraction(params[0])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"value":   f,
		"float":   f.Float64(),
		"decimal": f.Decimal().String(),
	}, nil
}

func putFraction(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	name, err := readName(params[0])
	if err != nil {
		return nil, err
	}
	f, err := readFraction(params[1])
	if err != nil {
		return nil, err
	}
	r, err := store.WriteFraction(name, f)
	if err != nil {
		return nil, err
	}
	return recordView(r), nil
}

func getFraction(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name, err := readName(params[0])
	if err != nil {
		return nil, err
	}
	r, err := store.ReadFraction(name)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("fraction %s not found", name)
	}
	return recordView(r), nil
}

func removeFraction(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name, err := readName(params[0])
	if err != nil {
		return nil, err
	}
	err = store.RemoveFraction(name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name}, nil
}

func listFractions(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	var prefix string
	switch len(params) {
	case 0:
	case 1:
		p, ok := params[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid prefix %v", params[0])
		}
		prefix = p
	default:
		return nil, errors.New("invalid params count")
	}
	records, err := store.ListFractions(prefix)
	if err != nil {
		return nil, err
	}
	list := make([]map[string]interface{}, len(records))
	for i, r := range records {
		list[i] = recordView(r)
	}
	return map[string]interface{}{"fractions": list}, nil
}

func readFractionPair(params []interface{}) (common.Fraction, common.Fraction, error) {
	if len(params) != 2 {
		return common.Zero, common.Zero, errors.New("invalid params count")
	}
	a, err := readFraction(params[0])
	if err != nil {
		return common.Zero, common.Zero, err
	}
	b, err := readFraction(params[1])
	if err != nil {
		return common.Zero, common.Zero, err
	}
	return a, b, nil
}

func readFraction(p interface{}) (common.Fraction, error) {
	switch v := p.(type) {
	case string:
		return common.ParseFraction(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return common.Zero, fmt.Errorf("%w: %s", common.ErrFormatMismatch, v)
		}
		return common.NewFractionFromInt(n), nil
	}
	return common.Zero, fmt.Errorf("%w: %v", common.ErrFormatMismatch, p)
}

func readName(p interface{}) (string, error) {
	name, ok := p.(string)
	if !ok || name == "" {
		return "", fmt.Errorf("invalid name %v", p)
	}
	return name, nil
}

func fractionView(f common.Fraction) map[string]interface{} {
	return map[string]interface{}{
		"value": f,
		"float": f.Float64(),
		"hash":  f.Hash(),
	}
}

func recordView(r *storage.Record) map[string]interface{} {
	view := fractionView(r.Value)
	view["name"] = r.Name
	view["updated_at"] = r.UpdatedAt
	return view
}
