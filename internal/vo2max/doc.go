// Package vo2max estimates a cyclist's maximal oxygen uptake from field-test
// performance data.
//
// Four estimators are provided, one per test protocol: a 5-minute maximal
// effort, a 6-minute maximal effort, an incremental ramp test, and an
// FTP-based estimate. All estimators are pure functions: deterministic, free
// of side effects, and total over their documented input domain. Inputs
// outside that domain are rejected with an apperrors.InvalidInputError.
//
// The 5-minute and FTP estimators use the Sitko et al. regression
// (VO2max = 16.6 + 8.87 * W/kg). The 6-minute estimator uses the
// power-based regression VO2max = 10.8 * W / kg + 7. The ramp estimator
// derives Maximal Aerobic Power with the Kuipers interpolation and converts
// it with VO2max [L/min] = 0.01141 * MAP + 0.435.
package vo2max
