package clock

import "time"

// Clock abstracts the wall clock so expiry checks stay deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock { return fixed{t: t} }

type fixed struct {
	t time.Time
}

func (f fixed) Now() time.Time { return f.t }
