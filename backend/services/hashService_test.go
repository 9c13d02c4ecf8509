// backend/services/hashService_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHasherDeterministic(t *testing.T) {
	h := LegacyHasher{}

	a, err := h.Hash("senha123")
	require.NoError(t, err)
	b, err := h.Hash("senha123")
	require.NoError(t, err)

	assert.Equal(t, a, b, "senhas iguais devem produzir o mesmo digest")
	assert.Len(t, a, 64, "digest deve ser hexadecimal de comprimento fixo")
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
}

func TestLegacyHasherDistinctInputs(t *testing.T) {
	h := LegacyHasher{}

	a, _ := h.Hash("senha123")
	b, _ := h.Hash("senha124")
	assert.NotEqual(t, a, b)
}

func TestLegacyHasherCompare(t *testing.T) {
	h := LegacyHasher{}

	stored, _ := h.Hash("correta")
	assert.NoError(t, h.Compare(stored, "correta"))
	assert.ErrorIs(t, h.Compare(stored, "errada"), ErrHashMismatch)
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := BcryptHasher{Cost: 4} // custo baixo para o teste correr rápido

	stored, err := h.Hash("segredo")
	require.NoError(t, err)

	assert.NoError(t, h.Compare(stored, "segredo"))
	assert.ErrorIs(t, h.Compare(stored, "outro"), ErrHashMismatch)

	// Ao contrário do esquema legado, o bcrypt usa sal: dois hashes da mesma
	// senha diferem.
	other, err := h.Hash("segredo")
	require.NoError(t, err)
	assert.NotEqual(t, stored, other)
}
