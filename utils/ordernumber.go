package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber produces numbers like ORD-LK3F9A2-QZ7M: a base36
// millisecond timestamp plus a 4-character random suffix.
func GenerateOrderNumber() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Chars[rand.Intn(len(base36Chars))]
	}

	return fmt.Sprintf("ORD-%s-%s", timestamp, suffix)
}

// GenerateDeviceID produces a persistent identifier for devices without a
// logged-in user, matching the mobile client's format.
func GenerateDeviceID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Chars[rand.Intn(len(base36Chars))]
	}
	return fmt.Sprintf("device_%d_%s", time.Now().UnixMilli(), strings.ToLower(string(suffix)))
}
