package sentiment

import "testing"

func financialOverride() map[string]float64 {
	return map[string]float64{
		"jumped": 4.0, "surges": 4.0, "record": 3.5, "high": 3.0,
		"tumbles": -4.0, "plunges": -4.0, "crashes": -4.0, "low": -3.0,
		"dip": -1.5, "war": -0.5, "crisis": -0.5,
	}
}

func TestCompoundRange(t *testing.T) {
	a := NewAnalyzer(financialOverride())
	texts := []string{
		"Shares surges to record high after strong earnings beat",
		"Stock crashes as fraud lawsuit triggers panic selloff",
		"Quarterly report scheduled for Tuesday",
		"",
	}
	for _, txt := range texts {
		c := a.Compound(txt)
		if c < -1 || c > 1 {
			t.Fatalf("compound %v out of range for %q", c, txt)
		}
	}
}

func TestCompoundPolarity(t *testing.T) {
	a := NewAnalyzer(financialOverride())
	if c := a.Compound("Stock surges to record high"); c <= 0.05 {
		t.Fatalf("expected positive compound, got %v", c)
	}
	if c := a.Compound("Shares tumbles to a new low"); c >= -0.05 {
		t.Fatalf("expected negative compound, got %v", c)
	}
	if c := a.Compound("Board meeting on Thursday"); c != 0 {
		t.Fatalf("expected neutral compound, got %v", c)
	}
}

func TestOverrideWinsOverBase(t *testing.T) {
	// "high" is positive in the financial lexicon even though generic
	// usage is ambiguous; "dip" must read mildly negative
	a := NewAnalyzer(financialOverride())
	if c := a.Compound("trading high"); c <= 0 {
		t.Fatalf("expected positive for 'high', got %v", c)
	}
	if c := a.Compound("buying the dip"); c >= 0 {
		t.Fatalf("expected negative for 'dip', got %v", c)
	}
}

func TestNegationFlips(t *testing.T) {
	a := NewAnalyzer(nil)
	pos := a.Compound("a good quarter")
	neg := a.Compound("not a good quarter")
	if pos <= 0 || neg >= 0 {
		t.Fatalf("negation did not flip: pos=%v neg=%v", pos, neg)
	}
}
