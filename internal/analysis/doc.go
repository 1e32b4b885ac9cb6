// Package analysis provides numerical summaries of generated fields.
//
//   - [Census]: lit-cell counts of a procedure across a parameter range
//   - [PowerSpectrum]: frequency content of a field row
//   - [ParallelFor]: chunked fan-out used by Census
package analysis
