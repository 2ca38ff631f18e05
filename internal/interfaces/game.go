package interfaces

// Random — источник случайных чисел для систем
type Random interface {
	Intn(n int) int
	IntRange(min, max int) int
}
