package util

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// ValidateGeoPoint 验证坐标是否为 [经度, 纬度] 两个有限浮点数
func ValidateGeoPoint(fl validator.FieldLevel) bool {
	coords, ok := fl.Field().Interface().([]float64)
	if !ok {
		return false
	}
	if len(coords) != 2 {
		return false
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
