package commands_test

import (
	"strings"
	"testing"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proofImage(t *testing.T) *commands.ImageUpload {
	t.Helper()
	upload, err := commands.NewImageUpload("doorstep.png", "image/png", 6, strings.NewReader("\x89PNG.."))
	require.NoError(t, err)
	return &upload
}

func TestNewApplyTransitionCommand(t *testing.T) {
	p := newParties(t)

	t.Run("should accept a proof for delivery", func(t *testing.T) {
		cmd, err := commands.NewApplyTransitionCommand(kernel.NewUUID(), p.rider, order.UploadProofAndDeliver, proofImage(t))

		require.NoError(t, err)
		assert.Equal(t, order.UploadProofAndDeliver, cmd.Action())
		assert.NotNil(t, cmd.Proof())
	})

	t.Run("should accept a delivery without proof and leave the check to the engine", func(t *testing.T) {
		cmd, err := commands.NewApplyTransitionCommand(kernel.NewUUID(), p.rider, order.UploadProofAndDeliver, nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.Proof())
	})

	t.Run("should reject a proof on pickup", func(t *testing.T) {
		_, err := commands.NewApplyTransitionCommand(kernel.NewUUID(), p.rider, order.Pickup, proofImage(t))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown action", func(t *testing.T) {
		_, err := commands.NewApplyTransitionCommand(kernel.NewUUID(), p.rider, order.UnknownAction, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		_, err := commands.NewApplyTransitionCommand(kernel.UUID{}, p.rider, order.Pickup, nil)

		require.Error(t, err)
	})
}
