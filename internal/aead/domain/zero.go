package domain

// Zero overwrites a byte slice with zeros; adapters use it to drop key material on Close.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
