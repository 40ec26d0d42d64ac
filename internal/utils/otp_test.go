package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		otp := GenerateOTP()
		assert.GreaterOrEqual(t, otp, 1000)
		assert.LessOrEqual(t, otp, 9999)
	}
}

func TestGenerateOTP_NotConstant(t *testing.T) {
	seen := make(map[int]struct{})
	for i := 0; i < 100; i++ {
		seen[GenerateOTP()] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
