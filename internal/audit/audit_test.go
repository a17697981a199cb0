package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventMeasuresContentWithoutStoringIt(t *testing.T) {
	ev := NewEvent("u_0123456789abcdef", TypeMessage, "symptoms dengue", "symptoms")

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "u_0123456789abcdef", ev.PseudoID)
	assert.Equal(t, TypeMessage, ev.Type)
	assert.Equal(t, len("symptoms dengue"), ev.ContentLen)
	assert.Equal(t, "symptoms", ev.Intent)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestNewEventDefaultsIntentTag(t *testing.T) {
	ev := NewEvent("u_0123456789abcdef", TypeAlert, "advisory text", "")
	assert.Equal(t, "unknown", ev.Intent)
}

func TestMemoryLogAppends(t *testing.T) {
	l := NewMemoryLog()
	require.NoError(t, l.Record(context.Background(), NewEvent("u_1", TypeMessage, "a", "help")))
	require.NoError(t, l.Record(context.Background(), NewEvent("u_2", TypeReminder, "bb", "vaccination_reminder")))

	events := l.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "u_1", events[0].PseudoID)
	assert.Equal(t, TypeReminder, events[1].Type)

	// Events returns a copy; mutating it does not touch the log.
	events[0].PseudoID = "tampered"
	assert.Equal(t, "u_1", l.Events()[0].PseudoID)
}
