// Package mapper decodes backend and search-provider JSON bodies into records.
//
// Decoding is strict: every required key must be present with the exact JSON
// type (no number/string coercion, null is never accepted). Unknown keys are
// ignored. A failure anywhere fails the whole body; there are no partial results.
package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"fsanano/rest-client/internal/apperr"
	"fsanano/rest-client/internal/model"
)

const itemsKey = "items"

// DecodeItem decodes a single {"title","price"} object.
func DecodeItem(body []byte) (model.Item, error) {
	obj, err := parseObject(body, "body")
	if err != nil {
		return model.Item{}, err
	}
	return obj.item()
}

// DecodeItems decodes the array under "items" into Items, preserving order.
func DecodeItems(body []byte) ([]model.Item, error) {
	return decodeList(body, fields.item)
}

func decodeShoppingItem(body []byte) (model.ShoppingItem, error) {
	obj, err := parseObject(body, "body")
	if err != nil {
		return model.ShoppingItem{}, err
	}
	return obj.shoppingItem()
}

func DecodeShoppingItems(body []byte) ([]model.ShoppingItem, error) {
	return decodeList(body, fields.shoppingItem)
}

func decodeList[T any](body []byte, decode func(fields) (T, error)) ([]T, error) {
	root, err := parseObject(body, "body")
	if err != nil {
		return nil, err
	}

	raw, ok := root.values[itemsKey]
	if !ok {
		return nil, malformed("body: missing field %q", itemsKey)
	}
	if kind := jsonKind(raw); kind != "array" {
		return nil, malformed("body: field %q: expected array, got %s", itemsKey, kind)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, malformed("body: field %q: %v", itemsKey, err)
	}

	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		obj, err := parseObject(elem, fmt.Sprintf("items[%d]", i))
		if err != nil {
			return nil, err
		}
		rec, err := decode(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// fields is one JSON object with its location, used in error messages.
type fields struct {
	where  string
	values map[string]json.RawMessage
}

func parseObject(data []byte, where string) (fields, error) {
	if kind := jsonKind(data); kind != "object" {
		if !json.Valid(data) {
			return fields{}, malformed("%s: invalid JSON", where)
		}
		return fields{}, malformed("%s: expected object, got %s", where, kind)
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return fields{}, malformed("%s: invalid JSON: %v", where, err)
	}
	return fields{where: where, values: values}, nil
}

func (f fields) item() (model.Item, error) {
	title, err := f.str("title")
	if err != nil {
		return model.Item{}, err
	}
	price, err := f.integer("price")
	if err != nil {
		return model.Item{}, err
	}
	return model.Item{Title: title, Price: price}, nil
}

func (f fields) shoppingItem() (model.ShoppingItem, error) {
	var (
		it  model.ShoppingItem
		err error
	)
	if it.Title, err = f.str("title"); err != nil {
		return model.ShoppingItem{}, err
	}
	if it.Link, err = f.str("link"); err != nil {
		return model.ShoppingItem{}, err
	}
	if it.Image, err = f.str("image"); err != nil {
		return model.ShoppingItem{}, err
	}
	if it.LowestPrice, err = f.integer("lprice"); err != nil {
		return model.ShoppingItem{}, err
	}
	return it, nil
}

func (f fields) lookup(key, want string) (json.RawMessage, error) {
	raw, ok := f.values[key]
	if !ok {
		return nil, malformed("%s: missing field %q", f.where, key)
	}
	if got := jsonKind(raw); got != want {
		return nil, malformed("%s: field %q: expected %s, got %s", f.where, key, want, got)
	}
	return raw, nil
}

func (f fields) str(key string) (string, error) {
	raw, err := f.lookup(key, "string")
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", malformed("%s: field %q: %v", f.where, key, err)
	}
	return s, nil
}

func (f fields) integer(key string) (int, error) {
	raw, err := f.lookup(key, "number")
	if err != nil {
		return 0, err
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, malformed("%s: field %q: expected integer, got %s", f.where, key, raw)
	}
	return n, nil
}

// jsonKind names the JSON type of raw by its first significant byte.
func jsonKind(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "empty input"
	}
	switch c := raw[0]; {
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == '"':
		return "string"
	case c == 't' || c == 'f':
		return "boolean"
	case c == 'n':
		return "null"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return "invalid JSON"
	}
}

func malformed(format string, args ...any) error {
	return apperr.New(apperr.KindMalformed, "", fmt.Sprintf(format, args...))
}
