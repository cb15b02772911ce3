package content

import "testing"

func TestPointsFor(t *testing.T) {
	tests := []struct {
		kind OptionKind
		want int
	}{
		{KindCNV, 10},
		{KindNeutral, 5},
		{KindPassive, 3},
		{KindProblematic, 0},
		{OptionKind("nonsense"), 0},
	}

	for _, tt := range tests {
		if got := PointsFor(tt.kind); got != tt.want {
			t.Errorf("PointsFor(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestOptionKindValid(t *testing.T) {
	for _, kind := range AllKinds {
		if !kind.Valid() {
			t.Errorf("%s should be valid", kind)
		}
	}
	if OptionKind("aggressive").Valid() {
		t.Error("unknown kind reported valid")
	}
}

func TestScenarioOptionAt(t *testing.T) {
	s := Scenario{
		Situation: "s",
		Options: map[OptionKind]string{
			KindPassive:     "p",
			KindCNV:         "c",
			KindNeutral:     "n",
			KindProblematic: "x",
		},
	}

	want := []struct {
		kind OptionKind
		text string
	}{
		{KindPassive, "p"},
		{KindCNV, "c"},
		{KindNeutral, "n"},
		{KindProblematic, "x"},
	}

	for i, w := range want {
		kind, text := s.OptionAt(i)
		if kind != w.kind || text != w.text {
			t.Errorf("OptionAt(%d) = (%s, %q), want (%s, %q)", i, kind, text, w.kind, w.text)
		}
	}
}
