package alignment

import "math"

// Centroid returns the arithmetic mean of the given vectors.
// Returns nil for an empty input. Vectors shorter than the first are
// treated as zero-padded.
func Centroid(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	dims := len(vectors[0])
	for _, v := range vectors {
		if len(v) > dims {
			dims = len(v)
		}
	}

	centroid := make([]float32, dims)
	for _, v := range vectors {
		for i, val := range v {
			centroid[i] += val
		}
	}

	n := float32(len(vectors))
	for i := range centroid {
		centroid[i] /= n
	}
	return centroid
}

// Cosine returns the cosine similarity of two vectors.
// Higher means more similar; identical directions yield 1.0.
// Returns 0 when either vector has zero magnitude.
func Cosine(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
