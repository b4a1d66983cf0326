package models

import "time"

// Feature names in the order the predictor consumes them.
const (
	FeatureLag1 = "lag_1"
	FeatureLag2 = "lag_2"
	FeatureMA5  = "ma_5"
	FeatureMA20 = "ma_20"
	FeatureRSI  = "rsi"
)

// FeatureOrder fixes the column order of the feature matrix.
var FeatureOrder = []string{FeatureLag1, FeatureLag2, FeatureMA5, FeatureMA20, FeatureRSI}

// FeatureVector maps feature name to value.
type FeatureVector map[string]float64

// TrainingExample is one supervised row: features plus next-day targets.
type TrainingExample struct {
	Features    FeatureVector
	TargetPrice float64
	TargetUp    int
}

// InferenceRow is the latest fully-computed row, captured before targets
// exist. It carries no target by construction.
type InferenceRow struct {
	Date     time.Time
	Close    float64
	Features FeatureVector
}
