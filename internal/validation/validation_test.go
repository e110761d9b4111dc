package validation

import (
	"testing"

	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	badColor := "red"
	longName := "0123456789012345678901234567890123456789012345678901"

	tests := []struct {
		name    string
		entry   entity.CatalogEntry
		wantErr string
	}{
		{name: "valid", entry: entity.CatalogEntry{Name: "chronic"}},
		{name: "missing name", entry: entity.CatalogEntry{}, wantErr: "name: required"},
		{name: "name too long", entry: entity.CatalogEntry{Name: longName}, wantErr: "name: max=50"},
		{name: "bad color", entry: entity.CatalogEntry{Name: "x", ColorCode: &badColor}, wantErr: "color_code: hexcolor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.entry)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.True(t, domainerrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFailed(t *testing.T) {
	err := Failed("category", "required for status_types")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Input validation failed: category: required for status_types", err.Error())
}
