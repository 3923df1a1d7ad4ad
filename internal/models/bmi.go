// ABOUTME: BMI calculation and category thresholds.
// ABOUTME: Height is centimeters, weight is kilograms.
package models

// BMICategory is the WHO adult weight band for a BMI value.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
	BMIUnknown     BMICategory = "Unknown"
)

// CalculateBMI returns weight / (height in meters)^2. It reports false
// when height is not positive.
func CalculateBMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 {
		return 0, false
	}
	h := heightCm / 100
	return weightKg / (h * h), true
}

// CategorizeBMI maps a BMI value to its band.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
