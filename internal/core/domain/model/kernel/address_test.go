package kernel_test

import (
	"strings"
	"testing"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr error
	}{
		{name: "plain", line: "Purok 3, Brgy. San Isidro, Tarlac", want: "Purok 3, Brgy. San Isidro, Tarlac"},
		{name: "trimmed", line: "  12 Rizal St  ", want: "12 Rizal St"},
		{name: "blank", line: "   ", wantErr: errs.ErrValueIsRequired},
		{name: "too long", line: strings.Repeat("a", kernel.AddressMaxLength+1), wantErr: errs.ErrValueIsOutOfRange},
		{name: "max length", line: strings.Repeat("é", kernel.AddressMaxLength), want: strings.Repeat("é", kernel.AddressMaxLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := kernel.NewAddress(tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, addr.Validate())
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestAddress_ZeroValueIsInvalid(t *testing.T) {
	var a kernel.Address

	require.ErrorIs(t, a.Validate(), kernel.ErrAddressIsNotConstructed)
}
