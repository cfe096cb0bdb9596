package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid mixed case", "Passw0rd", nil},
		{"valid letters only", "Abcdefgh", nil},
		{"valid long with symbols", "CorrectHorse!battery", nil},
		{"too short", "Abcdefg", ErrWeakPassword},
		{"no uppercase", "abcdefgh", ErrWeakPassword},
		{"no lowercase", "ABCDEFGH", ErrWeakPassword},
		{"digits only", "12345678", ErrWeakPassword},
		{"empty", "", ErrWeakPassword},
		{"exactly eight mixed", "aBcdefgh", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword_NoDigitOrSymbolRequirement(t *testing.T) {
	// The policy is intentionally length plus mixed case only.
	assert.NoError(t, ValidatePassword("OnlyLetters"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, CheckPassword("Sup3rSecret", hash))
	assert.False(t, CheckPassword("sup3rsecret", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	h2, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
