// Package polynomial finds the roots of real polynomials.
//
// Closed forms are used up to degree three; higher degrees go through a
// simultaneous iteration or, with EigenRoots, through the eigenvalues of the
// companion matrix. Roots are always returned sorted by real part, then by
// imaginary part. A vanishing leading coefficient lowers the degree.
package polynomial
