package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEventTriggered(t *testing.T) {
	out, err := Render(EventTriggered, map[string]string{
		"EventName": "OrderExecuted",
		"OrderID":   "42",
		"Address":   "0xabc",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<b>OrderExecuted</b>")
	assert.Contains(t, out, "<code>42</code>")
	assert.Contains(t, out, "<code>0xabc</code>")
}

func TestRenderStaticMessage(t *testing.T) {
	out, err := Render(NoSubscriptions, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderSubscriptionList(t *testing.T) {
	out, err := Render(Subscriptions, map[string]any{
		"Subscriptions": []map[string]string{
			{"EventName": "OrderExecuted", "Address": "0xabc"},
			{"EventName": "all", "Address": "all"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<b>OrderExecuted</b> on <code>0xabc</code>")
	assert.Contains(t, out, "<b>all</b> on <code>all</code>")
}

func TestRenderUnknownName(t *testing.T) {
	_, err := Render("no-such-message", nil)
	assert.Error(t, err)
}

func TestEveryMessageParses(t *testing.T) {
	for name := range raw {
		_, ok := catalog[name]
		assert.True(t, ok, "message %q missing from catalog", name)
	}
}
