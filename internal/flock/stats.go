package flock

// MeanSpeed is the average agent speed.
func (f *Flock) MeanSpeed() float64 {
	if len(f.agents) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range f.agents {
		sum += a.Speed()
	}
	return sum / float64(len(f.agents))
}
