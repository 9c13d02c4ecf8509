// backend/services/hashService.go
package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/sqpaloma/novak-sub002/backend/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrHashMismatch é devolvido por Compare quando a senha não corresponde ao
// hash guardado. Os chamadores traduzem para a falha de autenticação certa.
var ErrHashMismatch = errors.New("hash mismatch")

// Hasher abstrai o esquema de hash de senhas para que um esquema mais forte
// possa substituir o legado sem tocar nos chamadores.
type Hasher interface {
	Hash(secret string) (string, error)
	Compare(stored, secret string) error
}

// LegacyHasher reproduz o esquema original: SHA-256 em hexadecimal, sem sal.
// Determinístico — senhas iguais produzem sempre o mesmo digest. É uma
// fraqueza conhecida mantida por compatibilidade com os hashes já gravados.
type LegacyHasher struct{}

func (LegacyHasher) Hash(secret string) (string, error) {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:]), nil
}

func (h LegacyHasher) Compare(stored, secret string) error {
	digest, err := h.Hash(secret)
	if err != nil {
		return err
	}
	if digest != stored {
		return ErrHashMismatch
	}
	return nil
}

// BcryptHasher é o esquema reforçado (com sal, custo configurável),
// selecionado com HASH_SCHEME=bcrypt.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = 10
	}
	out, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h BcryptHasher) Compare(stored, secret string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)); err != nil {
		return ErrHashMismatch
	}
	return nil
}

// NewHasher devolve o esquema configurado em HASH_SCHEME.
func NewHasher() Hasher {
	if config.AppConfig != nil && config.AppConfig.HashScheme == "bcrypt" {
		return BcryptHasher{Cost: 10}
	}
	return LegacyHasher{}
}
