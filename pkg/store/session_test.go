package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendHistoryCapsAtLimit(t *testing.T) {
	s := NewSession("abc")
	for i := 0; i < HistoryLimit+5; i++ {
		s.AppendHistory(fmt.Sprintf("m%d", i))
	}

	require.Len(t, s.History, HistoryLimit)
	assert.Equal(t, "m5", s.History[0])
	assert.Equal(t, fmt.Sprintf("m%d", HistoryLimit+4), s.History[HistoryLimit-1])
}

func TestCloneDoesNotShareHistory(t *testing.T) {
	s := NewSession("abc")
	s.AppendHistory("first")
	s.B2B.Active = true

	c := s.Clone()
	c.AppendHistory("second")
	c.B2B.Active = false

	assert.Equal(t, []string{"first"}, s.History)
	assert.True(t, s.B2B.Active)
	assert.Equal(t, []string{"first", "second"}, c.History)

	var nilSession *Session
	assert.Nil(t, nilSession.Clone())
}
