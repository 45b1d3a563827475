package services

import (
	"math"
	"testing"
)

func TestBMIComputesFromMetricInputs(t *testing.T) {
	bmi := BMI(70, 175)
	if math.Abs(bmi-22.857) > 0.01 {
		t.Fatalf("BMI(70, 175) = %f, want ~22.86", bmi)
	}
}

func TestBMIZeroOnMissingInputs(t *testing.T) {
	if got := BMI(0, 175); got != 0 {
		t.Fatalf("BMI with no weight = %f, want 0", got)
	}
	if got := BMI(70, 0); got != 0 {
		t.Fatalf("BMI with no height = %f, want 0", got)
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{0, "unknown"},
		{17.0, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Fatalf("BMICategory(%f) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestIdealWeightRangeMatchesNormalBMI(t *testing.T) {
	min, max := IdealWeightRange(175)
	if math.Abs(min-56.66) > 0.1 || math.Abs(max-76.56) > 0.1 {
		t.Fatalf("IdealWeightRange(175) = (%f, %f), want (~56.7, ~76.6)", min, max)
	}

	min, max = IdealWeightRange(0)
	if min != 0 || max != 0 {
		t.Fatalf("IdealWeightRange(0) = (%f, %f), want (0, 0)", min, max)
	}
}
