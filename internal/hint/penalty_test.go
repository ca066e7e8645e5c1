package hint

import "testing"

func TestPenaltySchedule(t *testing.T) {
	want := []int64{30000, 60000, 120000, 240000, 480000}
	for i, w := range want {
		if got := Penalty(i + 1); got != w {
			t.Fatalf("Penalty(%d) = %d, want %d", i+1, got, w)
		}
	}
}

func TestPenaltyCapsBeyondSchedule(t *testing.T) {
	for _, n := range []int{6, 7, 100} {
		if got := Penalty(n); got != 480000 {
			t.Fatalf("Penalty(%d) = %d, want capped 480000", n, got)
		}
	}
}
