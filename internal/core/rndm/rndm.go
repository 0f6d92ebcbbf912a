package rndm

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func String(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func Bytes(l int) []byte {
	token := make([]byte, l)
	rand.Read(token)
	return token
}

func Hex(l int) string {
	return "0x" + hex.EncodeToString(Bytes(l))
}

func EntityID() string {
	return fmt.Sprintf("0.0.%d", 1000+rand.Intn(1_000_000))
}
