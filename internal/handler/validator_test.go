package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnchantInput struct {
	Material string `validate:"required,material"`
	Levels   int    `validate:"gte=0"`
}

func TestValidator_MaterialValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		material string
		wantErr  bool
	}{
		{"valid sword", "diamond_sword", false},
		{"valid book", "book", false},
		{"valid armor", "netherite_chestplate", false},

		// Required catches empty before the material tag runs
		{"empty material", "", true},

		{"unknown material", "obsidian_sword", true},
		{"typo", "diamond_sord", true},
		{"uppercase not accepted", "DIAMOND_SWORD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testEnchantInput{
				Material: tt.material,
				Levels:   10,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_LevelsValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		levels  int
		wantErr bool
	}{
		{"typical budget", 30, false},
		{"zero is allowed", 0, false},
		{"large budget", 10000, false},
		{"negative", -1, true},
		{"very negative", -999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testEnchantInput{
				Material: "diamond_sword",
				Levels:   tt.levels,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for levels=%d", tt.levels)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("field errors are mapped without struct names", func(t *testing.T) {
		err := v.ValidateStruct(testEnchantInput{Material: "obsidian_sword", Levels: -1})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Unknown material", fields["material"])
		assert.Equal(t, "Must be 0 or greater", fields["levels"])
	})

	t.Run("required field", func(t *testing.T) {
		err := v.ValidateStruct(testEnchantInput{Levels: 1})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["material"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
