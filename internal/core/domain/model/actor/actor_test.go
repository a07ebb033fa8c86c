package actor_test

import (
	"testing"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := map[string]actor.Role{
		"Farmer":     actor.Farmer,
		"rider":      actor.Rider,
		" CONSUMER ": actor.Consumer,
		"admin":      actor.Admin,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := actor.RoleFromString(in)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := actor.RoleFromString("unknown")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, actor.Rider.Validate())
	require.ErrorIs(t, actor.UnknownRole.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, actor.Role(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", actor.Role(42).String())
}

func TestNewActor(t *testing.T) {
	t.Run("should build a valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, actor.Farmer)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, actor.Farmer, a.Role())
		assert.True(t, a.Is(actor.Farmer, id))
		assert.False(t, a.Is(actor.Rider, id))
	})

	t.Run("should reject missing id and role together", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, actor.UnknownRole)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var a actor.Actor

		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}
