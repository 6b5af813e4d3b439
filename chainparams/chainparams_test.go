package chainparams

import "testing"

func TestMainnetForkBoundaries(t *testing.T) {
	cases := []struct {
		number   uint64
		byzantium, london, shanghai, cancun bool
	}{
		{4_369_999, false, false, false, false},
		{4_370_000, true, false, false, false},
		{12_964_999, true, false, false, false},
		{12_965_000, true, true, false, false},
		{17_034_869, true, true, false, false},
		{17_034_870, true, true, true, false},
		{19_426_586, true, true, true, false},
		{19_426_587, true, true, true, true},
	}
	for _, c := range cases {
		if got := Mainnet.IsByzantium(c.number); got != c.byzantium {
			t.Errorf("IsByzantium(%d) = %v, want %v", c.number, got, c.byzantium)
		}
		if got := Mainnet.IsLondon(c.number); got != c.london {
			t.Errorf("IsLondon(%d) = %v, want %v", c.number, got, c.london)
		}
		if got := Mainnet.IsShanghai(c.number); got != c.shanghai {
			t.Errorf("IsShanghai(%d) = %v, want %v", c.number, got, c.shanghai)
		}
		if got := Mainnet.IsCancun(c.number); got != c.cancun {
			t.Errorf("IsCancun(%d) = %v, want %v", c.number, got, c.cancun)
		}
	}
}

func TestHeaderFieldsCount(t *testing.T) {
	cases := []struct {
		number uint64
		want   int
	}{
		{0, 15},
		{12_965_000, 16},
		{17_034_870, 17},
		{19_426_587, 20},
	}
	for _, c := range cases {
		if got := Mainnet.HeaderFieldsCount(c.number); got != c.want {
			t.Errorf("HeaderFieldsCount(%d) = %d, want %d", c.number, got, c.want)
		}
	}
}

func TestScheduleDefaultsToMainnet(t *testing.T) {
	s := NewSchedule()
	if got := s.HeaderFieldsCount(999, 19_426_587); got != 20 {
		t.Fatalf("unregistered chain should default to mainnet schedule, got %d", got)
	}
}

func TestScheduleRegisterOverride(t *testing.T) {
	s := NewSchedule()
	s.Register(5, Forks{Byzantium: 0, London: 0, Shanghai: 0, Cancun: 0})
	if got := s.HeaderFieldsCount(5, 0); got != 20 {
		t.Fatalf("registered chain should use its own schedule, got %d", got)
	}
}
