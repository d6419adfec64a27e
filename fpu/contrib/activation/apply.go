package activation

// Apply writes fn(input[i]) to output[i] for the first
// min(len(input), len(output)) elements.
func Apply(input, output []float32, fn func(x float32) float32) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = fn(input[i])
	}
}

// ApplyWithParam is Apply for the two-argument kernels (LeakyReLU, ELU),
// passing the same parameter to every call.
func ApplyWithParam(input, output []float32, param float32, fn func(x, param float32) float32) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = fn(input[i], param)
	}
}
