package peaks

// SlidingMax — windowed maximum via a monotonic deque
//
// Description:
//
//	For each position i, compute the maximum of the closed neighborhood
//	[i-h, i+h], truncated to the part that lies inside the signal. The
//	classic monotonic-deque technique keeps indices of a non-increasing
//	run of values, so each index enters and leaves the deque at most
//	once.
//
// Algorithm Outline:
//  1. Walk r over 0..n+h-1; when r < n, pop smaller-valued tail indices
//     and push r (its value dominates them for every later window).
//  2. Pop the head once it falls outside [i-h, i+h] for the current i.
//  3. After r has reached i+h (or the end of the signal), the head of
//     the deque is the index of the window maximum for position i.
//
// Complexity:
//
//	Time   = O(n) — amortized one push and one pop per index
//	Memory = O(h) for the deque, O(n) for the result

// SlidingMax returns, for every position of signal, the maximum value in
// its closed [i-h, i+h] neighborhood, truncated at the signal bounds.
// A halfWindow <= 0 returns a copy of the input (each position is its own
// sole neighbor). An empty signal returns an empty, non-nil slice.
func SlidingMax(signal []float64, halfWindow int) []float64 {
	n := len(signal)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if halfWindow <= 0 {
		copy(out, signal)
		return out
	}
	// Clamp: a radius beyond n-1 already covers the whole signal, and the
	// clamp keeps i±halfWindow arithmetic overflow-free.
	if halfWindow > n {
		halfWindow = n
	}

	// Deque of candidate indices; values are non-increasing front→back.
	// A window never holds more than n indices, whatever halfWindow is.
	capHint := 2*halfWindow + 1
	if capHint > n {
		capHint = n
	}
	deque := make([]int, 0, capHint)

	r := 0 // next index to admit into the deque
	for i := 0; i < n; i++ {
		// Admit every index whose window membership starts at or before i.
		for ; r < n && r <= i+halfWindow; r++ {
			for len(deque) > 0 && signal[deque[len(deque)-1]] <= signal[r] {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, r)
		}

		// Retire indices that slid out on the left.
		for deque[0] < i-halfWindow {
			deque = deque[1:]
		}

		out[i] = signal[deque[0]]
	}

	return out
}
