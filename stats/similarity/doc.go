// Package similarity compares two equal-length magnitude profiles.
//
// The reference profile is treated as the independent variable and the
// sample (real) profile as the dependent one, bin by bin:
//
//   - R: Pearson correlation coefficient
//   - P: two-sided p-value of R under Student's t with n-2 degrees of freedom
//   - StdErr: standard error of the least-squares slope of real on reference
//   - Distance: Euclidean norm of the element-wise difference
//
// Reported values are rounded half to even: R to 4 decimals, P to 10,
// StdErr to 5 and Distance to 1.
package similarity
