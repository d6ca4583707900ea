package timerb

// Parts3 is a timer with three capture/compare blocks.
type Parts3[T Instance3] struct {
	Timer Timer[T]
	CCR0  Channel[T, CCR0]
	CCR1  Channel[T, CCR1]
	CCR2  Channel[T, CCR2]
}

// Parts7 is a timer with seven capture/compare blocks.
type Parts7[T Instance7] struct {
	Timer Timer[T]
	CCR0  Channel[T, CCR0]
	CCR1  Channel[T, CCR1]
	CCR2  Channel[T, CCR2]
	CCR3  Channel[T, CCR3]
	CCR4  Channel[T, CCR4]
	CCR5  Channel[T, CCR5]
	CCR6  Channel[T, CCR6]
}

// Split3 hands out the counter and blocks of TB0, TB1 or TB2. Call it once
// per instance.
func Split3[T Instance3]() Parts3[T] {
	return Parts3[T]{}
}

// Split7 hands out the counter and blocks of TB3. Call it once.
func Split7[T Instance7]() Parts7[T] {
	return Parts7[T]{}
}
