package poly

// Evaluator evaluates a Polynomial at x. Horner and CompensatedHorner both
// satisfy this signature so refine can select one. isolate evaluates no
// polynomial; it works on coefficient signs only.
type Evaluator func(p Polynomial, x float64) float64

// Horner evaluates p at x using the standard Horner recurrence in d fused
// multiply-adds, where d = len(p)-1.
func Horner(p Polynomial, x float64) float64 {
	p.validate()
	y := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// CompensatedHorner evaluates p at x using Horner's recurrence augmented
// with an error-free transformation at each step (two-product / two-sum,
// Ogita-Rump-Oishi style), accumulating the rounding error of every
// multiply-add into a running compensation term. The returned value carries
// roughly twice the working precision of Horner, and should be preferred
// whenever evaluation happens close to a root.
func CompensatedHorner(p Polynomial, x float64) float64 {
	p.validate()
	y := p[len(p)-1]
	c := 0.0
	for i := len(p) - 2; i >= 0; i-- {
		prod, eProd := twoProduct(y, x)
		sum, eSum := twoSum(prod, p[i])
		y = sum
		c = c*x + (eProd + eSum)
	}
	return y + c
}

// twoProduct returns a*b and the rounding error of that multiplication,
// such that a*b == p+e exactly (the error is recovered with a single FMA).
func twoProduct(a, b float64) (p, e float64) {
	p = a * b
	e = fma(a, b, -p)
	return
}

// twoSum returns a+b and the rounding error of that addition, such that
// a+b == s+e exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bv := s - a
	av := s - bv
	e = (a - av) + (b - bv)
	return
}
