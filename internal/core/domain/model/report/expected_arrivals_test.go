package report_test

import (
	"testing"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/report"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpectedArrivals(t *testing.T) {
	tests := []struct {
		name    string
		city    kernel.UnLocode
		count   int
		wantErr error
	}{
		{name: "valid", city: kernel.MustUnLocode("AUMEL"), count: 3},
		{name: "zero cargoes", city: kernel.MustUnLocode("AUMEL"), count: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "missing city", city: kernel.UnLocode{}, count: 1, wantErr: kernel.ErrUnLocodeIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := report.NewExpectedArrivals(tt.city, tt.count)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.city, a.City)
			assert.Equal(t, tt.count, a.NumberOfCargoes)
		})
	}
}
