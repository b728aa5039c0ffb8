// Package wold computes the impulse-response (Wold) coefficients of an
// ARMA process.
//
// The coefficients psi are the MA(inf) representation obtained by
// polynomial long division of the MA polynomial by the AR polynomial:
// psi[j] is the sensitivity of the current observation to a unit
// innovation j steps in the past, with psi[0] = 1 always.
//
// The horizon must be at least the AR order p, since the recurrence needs
// p previous coefficients before it becomes self-sustaining.
package wold
