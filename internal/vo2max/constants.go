package vo2max

// Regression coefficients for the supported estimators. Each set is kept as
// a named constant so the formula in use is auditable against its source.
const (
	// SitkoIntercept and SitkoSlope define the power-to-weight regression
	// VO2max [ml/kg/min] = SitkoIntercept + SitkoSlope * (W/kg), used by the
	// 5-minute and FTP estimators.
	SitkoIntercept = 16.6
	SitkoSlope     = 8.87

	// SixMinuteSlope and SixMinuteIntercept define the 6-minute regression
	// VO2max [ml/kg/min] = SixMinuteSlope * W / kg + SixMinuteIntercept.
	SixMinuteSlope     = 10.8
	SixMinuteIntercept = 7.0

	// KuipersSlope and KuipersIntercept convert Maximal Aerobic Power to
	// absolute oxygen uptake: VO2max [L/min] = KuipersSlope * MAP + KuipersIntercept.
	KuipersSlope     = 0.01141
	KuipersIntercept = 0.435

	// FTPToVO2maxPowerFactor relates Functional Threshold Power to the power
	// at VO2max: pVO2max ≈ 117% of FTP.
	FTPToVO2maxPowerFactor = 1.17
)

// Default ramp protocol parameters: 25 W stage increments of one minute each.
const (
	DefaultStageIncrementW  = 25.0
	DefaultStageDurationSec = 60.0
)
