package services

const (
	bmiUnderweightBelow = 18.5
	bmiOverweightFrom   = 25.0
	bmiObeseFrom        = 30.0
)

// BMI computes body mass index from kilograms and centimetres. Returns 0 when
// either input is missing or nonsensical.
func BMI(weightKg float64, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "unknown"
	case bmi < bmiUnderweightBelow:
		return "underweight"
	case bmi < bmiOverweightFrom:
		return "normal"
	case bmi < bmiObeseFrom:
		return "overweight"
	default:
		return "obese"
	}
}

// IdealWeightRange returns the kilogram range corresponding to a normal BMI
// for the given height. Both bounds are 0 when the height is missing.
func IdealWeightRange(heightCm float64) (float64, float64) {
	if heightCm <= 0 {
		return 0, 0
	}
	heightM := heightCm / 100
	return bmiUnderweightBelow * heightM * heightM, bmiOverweightFrom * heightM * heightM
}
