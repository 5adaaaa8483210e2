package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode 生成指定位数的数字验证码
func GenerateOTPCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("生成验证码失败: %w", err)
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
