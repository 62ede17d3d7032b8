package mod

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

type mockMod struct {
	mock.Mock
	name string
}

func (m *mockMod) Name() string {
	return m.name
}

func (m *mockMod) OnLoad(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHost_Register(t *testing.T) {
	t.Run("keeps registration order", func(t *testing.T) {
		h := NewHost()
		require.NoError(t, h.Register(&mockMod{name: "b"}))
		require.NoError(t, h.Register(&mockMod{name: "a"}))
		assert.Equal(t, []string{"b", "a"}, h.Mods())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		h := NewHost()
		require.NoError(t, h.Register(&mockMod{name: "a"}))
		err := h.Register(&mockMod{name: "a"})
		assert.True(t, errors.Is(err, domain.ErrDuplicateMod))
		assert.Equal(t, []string{"a"}, h.Mods())
	})

	t.Run("rejects registration after run", func(t *testing.T) {
		h := NewHost()
		require.NoError(t, h.Run(context.Background()))
		err := h.Register(&mockMod{name: "a"})
		assert.True(t, errors.Is(err, domain.ErrModsAlreadyRan))
	})
}

func TestHost_Run(t *testing.T) {
	t.Run("runs each mod once in order with run and mod ids", func(t *testing.T) {
		var order []string
		first := &mockMod{name: "first"}
		second := &mockMod{name: "second"}
		for _, m := range []*mockMod{first, second} {
			m := m
			m.On("OnLoad", mock.MatchedBy(func(ctx context.Context) bool {
				_, ok := logger.RunIDFromContext(ctx)
				return ok
			})).Run(func(mock.Arguments) {
				order = append(order, m.name)
			}).Return(nil).Once()
		}

		h := NewHost()
		require.NoError(t, h.Register(first))
		require.NoError(t, h.Register(second))
		require.NoError(t, h.Run(context.Background()))

		assert.Equal(t, []string{"first", "second"}, order)
		first.AssertExpectations(t)
		second.AssertExpectations(t)

		err := h.Run(context.Background())
		assert.True(t, errors.Is(err, domain.ErrModsAlreadyRan))
		first.AssertNumberOfCalls(t, "OnLoad", 1)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		failing := &mockMod{name: "failing"}
		failing.On("OnLoad", mock.Anything).Return(domain.ErrDocumentNotFound)
		after := &mockMod{name: "after"}

		h := NewHost()
		require.NoError(t, h.Register(failing))
		require.NoError(t, h.Register(after))

		err := h.Run(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDocumentNotFound))
		assert.Contains(t, err.Error(), "mod failing")
		after.AssertNotCalled(t, "OnLoad", mock.Anything)
	})

	t.Run("empty host", func(t *testing.T) {
		assert.NoError(t, NewHost().Run(context.Background()))
	})
}
