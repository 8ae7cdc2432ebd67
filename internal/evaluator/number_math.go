package evaluator

import (
	"math"
	"math/big"
	"math/cmplx"
)

// complexRem is the truncated remainder a - b*trunc(a/b), where trunc
// rounds the real and imaginary parts of the quotient toward zero
// independently. For real operands it matches math.Mod.
func complexRem(a, b complex128) complex128 {
	q := a / b
	q0 := complex(math.Trunc(real(q)), math.Trunc(imag(q)))
	return a - b*q0
}

// complexPow raises a to b, with 0^b = 0 and a^0 = 1.
// A zero base wins over a zero exponent, so 0^0 = 0.
func complexPow(a, b complex128) complex128 {
	if a == 0 {
		return 0
	}
	if b == 0 {
		return 1
	}
	return cmplx.Pow(a, b)
}

// complexLog returns the logarithm of x in a real base.
func complexLog(x complex128, base float64) complex128 {
	return cmplx.Log(x) / complex(math.Log(base), 0)
}

// Lanczos approximation coefficients, g = 7.
var lanczosCoefficients = [8]float64{
	676.5203681218851, -1259.1392167224028,
	771.32342877765313, -176.61502916214059,
	12.507343278686905, -0.13857109526572012,
	9.9843695780195716e-6, 1.5056327351493116e-7,
}

const lanczosBase = 0.99999999999980993

// gamma evaluates the Gamma function for complex z.
func gamma(z complex128) complex128 {
	if real(z) < 0.5 {
		// Reflection: Γ(z) = π / (sin(πz) · Γ(1−z))
		return math.Pi / (cmplx.Sin(math.Pi*z) * gamma(1-z))
	}
	z -= 1
	x := complex(lanczosBase, 0)
	for i, p := range lanczosCoefficients {
		x += complex(p, 0) / (z + complex(float64(i)+1, 0))
	}
	t := z + complex(float64(len(lanczosCoefficients))-0.5, 0)
	return complex(math.Sqrt(2*math.Pi), 0) * cmplx.Pow(t, z+0.5) * cmplx.Exp(-t) * x
}

// factorial computes n! exactly for positive integers and Γ(z+1) otherwise.
func factorial(z complex128) complex128 {
	re, im := real(z), imag(z)
	if im == 0 && re > 0 && re == math.Trunc(re) && !math.IsInf(re, 1) {
		return complex(integerFactorial(re), 0)
	}
	if z == 0 {
		return 1
	}
	return gamma(z + 1)
}

// integerFactorial multiplies n·(n−1)·…·2 in arbitrary precision.
// Results beyond the float64 range become +Inf.
func integerFactorial(n float64) float64 {
	// 171! already overflows float64; skip the product.
	if n > 170 {
		return math.Inf(1)
	}
	acc := new(big.Int).MulRange(1, int64(n))
	f, _ := new(big.Float).SetInt(acc).Float64()
	return f
}
