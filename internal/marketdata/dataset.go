package marketdata

// Historical monthly closing values for the two blended indices. Both series
// are chronological (oldest first), one close per calendar month, January 2020
// through December 2023. Monthly returns are derived pairwise, so a series of
// n closes yields n-1 return samples.

var sp500Closes = []float64{
	// 2020
	3225.52, 2954.22, 2584.59, 2912.43, 3044.31, 3100.29,
	3271.12, 3500.31, 3363.00, 3269.96, 3621.63, 3756.07,
	// 2021
	3714.24, 3811.15, 3972.89, 4181.17, 4204.11, 4297.50,
	4395.26, 4522.68, 4307.54, 4605.38, 4567.00, 4766.18,
	// 2022
	4515.55, 4373.94, 4530.41, 4131.93, 4132.15, 3785.38,
	4130.29, 3955.00, 3585.62, 3871.98, 4080.11, 3839.50,
	// 2023
	4076.60, 3970.15, 4109.31, 4169.48, 4179.83, 4450.38,
	4588.96, 4507.66, 4288.05, 4193.80, 4567.80, 4769.83,
}

var nasdaqCloses = []float64{
	// 2020
	9150.94, 8567.37, 7700.10, 8889.55, 9489.87, 10058.77,
	10745.27, 11775.46, 11167.51, 10911.59, 12198.74, 12888.28,
	// 2021
	13070.69, 13192.35, 13246.87, 13962.68, 13748.74, 14503.95,
	14672.68, 15259.24, 14448.58, 15498.39, 15537.69, 15644.97,
	// 2022
	14239.88, 13751.40, 14220.52, 12334.64, 12081.39, 11028.74,
	12390.69, 11816.20, 10575.62, 10988.15, 11468.00, 10466.48,
	// 2023
	11584.55, 11455.54, 12221.91, 12226.58, 12935.29, 13787.92,
	14346.02, 14034.97, 13219.32, 12851.24, 14226.22, 15011.35,
}

// Per-index monthly volatility estimates over the historical window.
const (
	sp500Volatility  = 0.044
	nasdaqVolatility = 0.057
)
