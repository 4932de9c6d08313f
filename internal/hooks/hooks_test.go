package hooks

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookFiresInRegistrationOrder(t *testing.T) {
	var h Hook[string]
	var calls []string

	h.Subscribe(func(v string) error { calls = append(calls, "first:"+v); return nil })
	h.Subscribe(func(v string) error { calls = append(calls, "second:"+v); return nil })

	require.NoError(t, h.Fire("x"))

	if diff := cmp.Diff([]string{"first:x", "second:x"}, calls); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestHookWithoutSubscribersIsNoop(t *testing.T) {
	var h Hook[*int]
	assert.Equal(t, 0, h.Len())
	assert.NoError(t, h.Fire(nil))
}

func TestHookNilHandlerIgnored(t *testing.T) {
	var h Hook[int]
	handle := h.Subscribe(nil)
	assert.Equal(t, Handle(0), handle)
	assert.Equal(t, 0, h.Len())
}

func TestHookUnsubscribe(t *testing.T) {
	var h Hook[int]
	var got []int

	a := h.Subscribe(func(v int) error { got = append(got, v); return nil })
	b := h.Subscribe(func(v int) error { got = append(got, v*10); return nil })
	require.NotEqual(t, a, b)

	require.True(t, h.Unsubscribe(a))
	assert.False(t, h.Unsubscribe(a), "second removal must report false")
	assert.False(t, h.Unsubscribe(Handle(999)))

	require.NoError(t, h.Fire(2))
	assert.Equal(t, []int{20}, got)
	assert.Equal(t, 1, h.Len())
}

func TestHookUnsubscribeDuringFire(t *testing.T) {
	var h Hook[int]
	var got []string
	var second Handle

	h.Subscribe(func(int) error {
		got = append(got, "first")
		h.Unsubscribe(second)
		return nil
	})
	second = h.Subscribe(func(int) error { got = append(got, "second"); return nil })

	require.NoError(t, h.Fire(1))
	assert.Equal(t, []string{"first", "second"}, got, "current delivery uses the subscriber list at fire time")

	got = nil
	require.NoError(t, h.Fire(1))
	assert.Equal(t, []string{"first"}, got)
}

func TestHookStopsAtFirstError(t *testing.T) {
	var h Hook[int]
	boom := errors.New("boom")
	calls := 0

	h.Subscribe(func(int) error { calls++; return nil })
	failing := h.Subscribe(func(int) error { calls++; return boom })
	h.Subscribe(func(int) error { calls++; return nil })

	err := h.Fire(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)

	var subErr *SubscriberError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, 1, subErr.Position)
	assert.Equal(t, failing, subErr.Handle)
	assert.Equal(t, "subscriber 1: boom", subErr.Error())
}

func TestChainThreadsValue(t *testing.T) {
	var c Chain[string]
	c.Subscribe(func(s string) (string, error) { return strings.ToUpper(s), nil })
	c.Subscribe(func(s string) (string, error) { return s + "!", nil })

	out, err := c.Apply("wix")
	require.NoError(t, err)
	assert.Equal(t, "WIX!", out)
	assert.Equal(t, 2, c.Len())
}

func TestChainWithoutSubscribersReturnsInput(t *testing.T) {
	var c Chain[string]
	out, err := c.Apply("<Wix/>")
	require.NoError(t, err)
	assert.Equal(t, "<Wix/>", out)
}

func TestChainErrorReturnsOriginal(t *testing.T) {
	var c Chain[string]
	c.Subscribe(func(s string) (string, error) { return "changed", nil })
	c.Subscribe(func(string) (string, error) { return "", errors.New("bad format") })

	out, err := c.Apply("original")
	require.Error(t, err)
	assert.Equal(t, "original", out)

	var subErr *SubscriberError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, 1, subErr.Position)
}

func TestChainUnsubscribe(t *testing.T) {
	var c Chain[int]
	h := c.Subscribe(func(v int) (int, error) { return v + 1, nil })
	c.Subscribe(func(v int) (int, error) { return v * 2, nil })

	require.True(t, c.Unsubscribe(h))
	out, err := c.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, 6, out)
	assert.Equal(t, Handle(0), c.Subscribe(nil))
	assert.Equal(t, 1, c.Len())
}
