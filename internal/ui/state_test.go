package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComputelessComputer/johnjeong/internal/content"
)

func TestNewState(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t, content.Bio, s.Active())
	assert.True(t, s.Running())
	assert.Equal(t, Scroll{}, s.Position(content.Bio))
	assert.Equal(t, Scroll{}, s.Position(content.Contact))
	assert.Equal(t, Selection{Index: 0}, s.Position(content.Writing))
	assert.Equal(t, Selection{Index: NoSelection}, NewState(Header{}, content.NewBundle("", nil)).Position(content.Gallery))
}

func TestState_SwitchTabPreservesPosition(t *testing.T) {
	s := newTestState(t)

	// Give every tab a non-default position.
	s.SwitchTab(content.Bio)
	s.Scroll(7)
	s.SwitchTab(content.Writing)
	s.MoveSelection(1)
	s.MoveSelection(1)
	s.MoveSelection(1)
	s.SwitchTab(content.Links)
	s.MoveSelection(1)

	for _, tab := range content.Tabs {
		for _, other := range content.Tabs {
			if other == tab {
				continue
			}
			s.SwitchTab(tab)
			before := s.Position(tab)

			s.SwitchTab(other)
			s.SwitchTab(tab)

			assert.Equal(t, before, s.Position(tab), "%s via %s", tab, other)
		}
	}

	assert.Equal(t, 3, s.Position(content.Writing).(Selection).Index)
	assert.Equal(t, 7, s.Position(content.Bio).(Scroll).Offset)
}

func TestState_MoveSelectionClamps(t *testing.T) {
	for _, tab := range []content.Tab{content.Writing, content.Projects, content.Links, content.Gallery} {
		t.Run(tab.String(), func(t *testing.T) {
			s := newTestState(t)
			s.SwitchTab(tab)
			n := s.Bundle().Len(tab)
			require.NotZero(t, n)

			for i := 0; i < n+5; i++ {
				s.MoveSelection(1)
			}
			assert.Equal(t, n-1, s.Position(tab).(Selection).Index)

			for i := 0; i < n+5; i++ {
				s.MoveSelection(-1)
			}
			assert.Equal(t, 0, s.Position(tab).(Selection).Index)
		})
	}
}

func TestState_MoveSelectionEmpty(t *testing.T) {
	s := newTestState(t)
	s.SwitchTab(content.Contact)
	s.MoveSelection(1)
	assert.Equal(t, Scroll{}, s.Position(content.Contact))

	s = NewState(Header{}, content.NewBundle("", nil))
	s.SwitchTab(content.Writing)
	s.MoveSelection(1)
	s.MoveSelection(-1)
	assert.Equal(t, Selection{Index: NoSelection}, s.Position(content.Writing))
}

func TestState_MoveSelectionFollowsCursor(t *testing.T) {
	s := newTestState(t)
	// 14 rows leave two rows for the list pane.
	s.Resize(80, 14)
	s.SwitchTab(content.Writing)

	steps := []struct {
		delta int
		want  Selection
	}{
		{1, Selection{Index: 1, Top: 0}},
		{1, Selection{Index: 2, Top: 1}},
		{1, Selection{Index: 3, Top: 2}},
		{-1, Selection{Index: 2, Top: 2}},
		{-1, Selection{Index: 1, Top: 1}},
		{-1, Selection{Index: 0, Top: 0}},
	}
	for _, step := range steps {
		s.MoveSelection(step.delta)
		assert.Equal(t, step.want, s.Position(content.Writing))
	}
}

func TestState_ScrollProse(t *testing.T) {
	s := newTestState(t)
	limit := s.maxOffset(content.Bio)
	require.Greater(t, limit, 0)

	for i := 0; i < 50; i++ {
		s.Scroll(s.Page())
	}
	assert.Equal(t, Scroll{Offset: limit}, s.Position(content.Bio))

	s.ScrollToTop()
	assert.Equal(t, Scroll{}, s.Position(content.Bio))

	s.Scroll(-1)
	assert.Equal(t, Scroll{}, s.Position(content.Bio))

	s.ScrollToBottom()
	assert.Equal(t, Scroll{Offset: limit}, s.Position(content.Bio))
}

func TestState_ScrollEmptyProse(t *testing.T) {
	s := newTestState(t)
	s.SwitchTab(content.Contact)
	s.Scroll(10)
	assert.Equal(t, Scroll{}, s.Position(content.Contact))
}

func TestState_ScrollDetailResetsOnMove(t *testing.T) {
	s := NewState(Header{}, content.NewBundle("", map[content.Tab][]content.Item{
		content.Writing: {
			{Title: "Long", Body: longBody(40)},
			{Title: "Short", Body: "Short."},
		},
	}))
	s.Resize(80, 24)
	s.SwitchTab(content.Writing)

	s.Scroll(5)
	assert.Equal(t, 5, s.Position(content.Writing).(Selection).Detail)

	s.MoveSelection(1)
	assert.Equal(t, Selection{Index: 1}, s.Position(content.Writing))

	// The short item fits in the pane so cannot scroll.
	s.Scroll(5)
	assert.Equal(t, Selection{Index: 1}, s.Position(content.Writing))
}

func TestState_ResizeReclamps(t *testing.T) {
	s := newTestState(t)
	s.ScrollToBottom()
	small := s.Position(content.Bio).(Scroll).Offset

	s.Resize(80, 200)
	big := s.Position(content.Bio).(Scroll).Offset
	assert.Less(t, big, small)
	assert.Equal(t, s.maxOffset(content.Bio), big)
}

func TestState_OpenSelectedLink(t *testing.T) {
	t.Run("no link", func(t *testing.T) {
		s := newTestState(t)
		s.SwitchTab(content.Links)
		s.MoveSelection(1)
		before := s.positions

		rec := &recorder{}
		s.OpenSelectedLink(rec)

		assert.Empty(t, rec.urls)
		assert.Equal(t, before, s.positions)
		assert.Equal(t, "", s.Status())
	})

	t.Run("list item", func(t *testing.T) {
		s := newTestState(t)
		s.SwitchTab(content.Writing)
		s.MoveSelection(1)

		rec := &recorder{}
		s.OpenSelectedLink(rec)

		assert.Equal(t, []string{"https://johnjeong.com/essays/post-1"}, rec.urls)
		assert.Equal(t, "Opened Post 1", s.Status())
	})

	t.Run("prose item", func(t *testing.T) {
		s := newTestState(t)

		rec := &recorder{}
		s.OpenSelectedLink(rec)

		assert.Equal(t, []string{"https://johnjeong.com"}, rec.urls)
	})

	t.Run("empty tab", func(t *testing.T) {
		s := newTestState(t)
		s.SwitchTab(content.Contact)

		rec := &recorder{}
		s.OpenSelectedLink(rec)

		assert.Empty(t, rec.urls)
	})

	t.Run("failure", func(t *testing.T) {
		s := newTestState(t)
		s.SwitchTab(content.Gallery)

		rec := &recorder{err: errors.New("no browser")}
		s.OpenSelectedLink(rec)

		assert.Equal(t, "Failed to open sunset (no browser)", s.Status())
	})
}

func TestState_SetBundleClamps(t *testing.T) {
	s := newTestState(t)
	s.SwitchTab(content.Writing)
	for i := 0; i < 9; i++ {
		s.MoveSelection(1)
	}

	s.SetBundle(content.NewBundle("", map[content.Tab][]content.Item{
		content.Writing: posts(2),
	}))

	assert.Equal(t, 1, s.Position(content.Writing).(Selection).Index)
	assert.Equal(t, Selection{Index: NoSelection}, s.Position(content.Gallery))
	assert.Equal(t, Scroll{}, s.Position(content.Bio))
}

func TestState_Quit(t *testing.T) {
	s := newTestState(t)
	s.Quit()
	assert.False(t, s.Running())
}
