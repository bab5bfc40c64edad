package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueEmpty(t *testing.T) {
	q := NewQueue()
	c, ok := q.Pop()
	assert.False(t, ok)
	assert.Nil(t, c)
	assert.Equal(t, 0, q.Len())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(ShowWidget{ID: "help", Focus: true})
	q.Push(CloseTab{Index: 2})
	q.Push(Quit{})
	require.Equal(t, 3, q.Len())

	var got []Command
	for {
		c, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, []Command{
		ShowWidget{ID: "help", Focus: true},
		CloseTab{Index: 2},
		Quit{},
	}, got)
}

func TestQueuePushDuringDrain(t *testing.T) {
	q := NewQueue()
	q.Push(InputSubmit{Action: SubmitOpenTab{}, Value: "https://example.com"})

	var got []Command
	for {
		c, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, c)
		if sub, isSubmit := c.(InputSubmit); isSubmit {
			q.Push(NewTabURL{Title: "New Tab", URL: sub.Value})
		}
	}
	require.Len(t, got, 2)
	assert.Equal(t, NewTabURL{Title: "New Tab", URL: "https://example.com"}, got[1])
}

func TestQueueReusableAfterDrain(t *testing.T) {
	q := NewQueue()
	q.Push(Quit{})
	_, _ = q.Pop()
	q.Push(RenameTab{Index: 0, Name: "x"})
	c, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, RenameTab{Index: 0, Name: "x"}, c)
}
