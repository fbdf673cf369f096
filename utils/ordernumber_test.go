package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{4}$`)

	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestGenerateDeviceID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^device_\d+_[a-z0-9]{9}$`)

	id := GenerateDeviceID()
	assert.Regexp(t, pattern, id)
}
