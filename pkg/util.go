package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"math"
	"unsafe"
)

// BytesToString converts a byte slice to a string without copying.
// The input slice must not be modified afterwards.
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomString returns a URL-safe, base64 encoded,
// securely generated random string of length n.
func GenerateRandomString(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid random string length")
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(buf)[:n], nil
}

// RoundToDecimal rounds the given value to the given number of decimal places.
func RoundToDecimal(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
