package propagate

import "math/cmplx"

// solveTridiag solves the tridiagonal system with the given diagonal and
// symmetric off-diagonal bands using the Thomas algorithm. cw and dw are
// caller-owned scratch slices of length n; the solution is written to x.
// A vanishing pivot reports a singular system.
func solveTridiag(diag, off, rhs, x, cw, dw []complex128) error {
	n := len(diag)

	pivot := diag[0]
	if pivot == 0 {
		return errSingular(0)
	}
	cw[0] = off[0] / pivot
	dw[0] = rhs[0] / pivot

	for i := 1; i < n; i++ {
		denom := diag[i] - off[i-1]*cw[i-1]
		if cmplx.Abs(denom) == 0 {
			return errSingular(i)
		}
		if i < n-1 {
			cw[i] = off[i] / denom
		}
		dw[i] = (rhs[i] - off[i-1]*dw[i-1]) / denom
	}

	x[n-1] = dw[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dw[i] - cw[i]*x[i+1]
	}
	return nil
}
