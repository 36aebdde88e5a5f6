package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Identity is the anonymous-but-consistent reviewer identity: the same
// name/password pair always yields the same hash and emoji, without
// storing either input.
type Identity struct {
	Hash    string
	Emoji   string
	Display string
}

var identityEmojis = []string{"🌮", "🌯", "🍕", "🍜", "☕", "🍩", "🥟", "🍦", "🥪", "🍣"}

// GenerateIdentity derives a reviewer identity from an optional username
// and password. Returns nil when both are absent after trimming.
func GenerateIdentity(username, password string) *Identity {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" && password == "" {
		return nil
	}

	var usernameHash, passwordHash string
	if username != "" {
		usernameHash = sha256Hex(username)
	}
	if password != "" {
		passwordHash = sha256Hex(password)
	}

	hash := sha256Hex(usernameHash + ":" + passwordHash)
	emoji := emojiFromHash(hash)

	return &Identity{
		Hash:    hash,
		Emoji:   emoji,
		Display: fmt.Sprintf("%s %s", emoji, hash[len(hash)-4:]),
	}
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// emojiFromHash selects an emoji from the hash's leading 16 bits.
func emojiFromHash(hash string) string {
	n, err := strconv.ParseInt(hash[:4], 16, 64)
	if err != nil {
		return identityEmojis[0]
	}
	return identityEmojis[int(n%100)%len(identityEmojis)]
}
