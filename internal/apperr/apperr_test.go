package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := New(KindMalformed, "backend.GetCallList", `missing field "items"`)
	assert.Equal(t, `backend.GetCallList: malformed_response: missing field "items"`, err.Error())

	err = New(KindNotImplemented, "", "no contract")
	assert.Equal(t, "not_implemented: no contract", err.Error())
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	base := New(KindTransport, "op", "connection refused")
	wrapped := fmt.Errorf("outer: %w", base)

	assert.Equal(t, KindTransport, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindTransport))
	assert.False(t, Is(wrapped, KindMalformed))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindTransport))
}

func TestWithOp(t *testing.T) {
	base := New(KindMalformed, "mapper", "bad")
	tagged := WithOp("naver.SearchItems", base)

	assert.Equal(t, KindMalformed, KindOf(tagged))
	assert.Contains(t, tagged.Error(), "naver.SearchItems")
	assert.Equal(t, "mapper", base.Op, "original must not be modified")

	plain := WithOp("backend.GetCallList", errors.New("dial tcp: refused"))
	assert.Equal(t, KindTransport, KindOf(plain))
	assert.ErrorContains(t, plain, "dial tcp: refused")

	assert.NoError(t, WithOp("op", nil))
}
