package mapper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/rest-client/internal/apperr"
	"fsanano/rest-client/internal/model"
)

func TestDecodeItems_Success(t *testing.T) {
	body := []byte(`{"items":[{"title":"Book","price":1000},{"title":"Pen","price":500}]}`)

	items, err := DecodeItems(body)

	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{Title: "Book", Price: 1000},
		{Title: "Pen", Price: 500},
	}, items)
}

func TestDecodeItems_PreservesOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"items":[`)
	for i := 0; i < 50; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"title":"item-%02d","price":%d}`, i, 50-i)
	}
	sb.WriteString(`]}`)

	items, err := DecodeItems([]byte(sb.String()))

	require.NoError(t, err)
	require.Len(t, items, 50)
	for i, it := range items {
		assert.Equal(t, fmt.Sprintf("item-%02d", i), it.Title)
		assert.Equal(t, 50-i, it.Price)
	}
}

func TestDecodeItems_EmptyArray(t *testing.T) {
	items, err := DecodeItems([]byte(`{"items":[]}`))

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDecodeItems_ExtraFieldsIgnored(t *testing.T) {
	body := []byte(`{"total":1,"items":[{"title":"Book","price":1000,"isbn":"x","tags":[1,2]}]}`)

	items, err := DecodeItems(body)

	require.NoError(t, err)
	assert.Equal(t, []model.Item{{Title: "Book", Price: 1000}}, items)
}

func TestDecodeItems_Idempotent(t *testing.T) {
	body := []byte(`{"items":[{"title":"Book","price":1000},{"title":"Pen","price":500}]}`)

	first, err := DecodeItems(body)
	require.NoError(t, err)
	second, err := DecodeItems(body)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, `{"items":[{"title":"Book","price":1000},{"title":"Pen","price":500}]}`, string(body))
}

func TestDecodeItems_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing items", `{"things":[]}`, `missing field "items"`},
		{"items null", `{"items":null}`, `expected array, got null`},
		{"items object", `{"items":{"title":"Book"}}`, `expected array, got object`},
		{"top-level array", `[{"title":"Book","price":1}]`, `expected object, got array`},
		{"top-level null", `null`, `expected object, got null`},
		{"not json", `not json`, `invalid JSON`},
		{"empty body", ``, `invalid JSON`},
		{"truncated", `{"items":[{"title":"Book"`, `invalid JSON`},
		{"element not object", `{"items":["Book"]}`, `items[0]: expected object, got string`},
		{"missing title", `{"items":[{"price":1}]}`, `items[0]: missing field "title"`},
		{"missing price", `{"items":[{"title":"Book","price":1},{"title":"Pen"}]}`, `items[1]: missing field "price"`},
		{"price as string", `{"items":[{"title":"Book","price":"1000"}]}`, `field "price": expected number, got string`},
		{"price as float", `{"items":[{"title":"Book","price":10.5}]}`, `field "price": expected integer, got 10.5`},
		{"title as number", `{"items":[{"title":7,"price":1}]}`, `field "title": expected string, got number`},
		{"title null", `{"items":[{"title":null,"price":1}]}`, `field "title": expected string, got null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeItems([]byte(tt.body))

			require.Error(t, err)
			assert.Nil(t, items)
			assert.True(t, apperr.Is(err, apperr.KindMalformed), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeItem_Success(t *testing.T) {
	item, err := DecodeItem([]byte(`{"title":"Shoes","price":2500}`))

	require.NoError(t, err)
	assert.Equal(t, model.Item{Title: "Shoes", Price: 2500}, item)
}

func TestDecodeItem_Malformed(t *testing.T) {
	for _, body := range []string{
		`{"title":"Shoes"}`,
		`{"title":"Shoes","price":"2500"}`,
		`{"title":"Shoes","price":null}`,
		`["Shoes",2500]`,
		`<html></html>`,
	} {
		_, err := DecodeItem([]byte(body))
		assert.True(t, apperr.Is(err, apperr.KindMalformed), "body %s: got %v", body, err)
	}
}

func TestDecodeShoppingItems_Success(t *testing.T) {
	body := []byte(`{
		"lastBuildDate": "Mon, 19 Oct 2026 10:00:00 +0900",
		"total": 2,
		"items": [
			{"title":"<b>Shoes</b> A","link":"https://shop/a","image":"https://img/a.jpg","lprice":25000,"hprice":""},
			{"title":"Shoes B","link":"https://shop/b","image":"https://img/b.jpg","lprice":19900}
		]
	}`)

	items, err := DecodeShoppingItems(body)

	require.NoError(t, err)
	assert.Equal(t, []model.ShoppingItem{
		{Title: "<b>Shoes</b> A", Link: "https://shop/a", Image: "https://img/a.jpg", LowestPrice: 25000},
		{Title: "Shoes B", Link: "https://shop/b", Image: "https://img/b.jpg", LowestPrice: 19900},
	}, items)
}

func TestDecodeShoppingItems_Malformed(t *testing.T) {
	_, err := DecodeShoppingItems([]byte(`{"items":[{"title":"A","link":"l","lprice":1}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `items[0]: missing field "image"`)

	_, err = DecodeShoppingItems([]byte(`{"items":[{"title":"A","link":"l","image":"i","lprice":"100"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "lprice": expected number, got string`)
}

func TestDecodeShoppingItem_SingleObject(t *testing.T) {
	item, err := decodeShoppingItem([]byte(`{"title":"A","link":"l","image":"i","lprice":100}`))

	require.NoError(t, err)
	assert.Equal(t, model.ShoppingItem{Title: "A", Link: "l", Image: "i", LowestPrice: 100}, item)
}
