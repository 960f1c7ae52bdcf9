package knapsack

import "testing"

func TestEfficiencyComparators(t *testing.T) {
	high := Item{J: 0, W: 2, P: 3} // eff 1.5
	low := Item{J: 1, W: 3, P: 3}  // eff 1.0
	equal := Item{J: 2, W: 4, P: 6} // eff 1.5

	if !effGreater(high, low) {
		t.Errorf("expected %v to have higher efficiency than %v", high, low)
	}
	if effGreater(low, high) {
		t.Errorf("did not expect %v to have higher efficiency than %v", low, high)
	}
	if effLess(high, low) {
		t.Errorf("did not expect %v to have lower efficiency than %v", high, low)
	}
	if !effLess(low, high) {
		t.Errorf("expected %v to have lower efficiency than %v", low, high)
	}
	if !effGreaterEq(high, equal) || !effGreaterEq(equal, high) {
		t.Errorf("expected %v and %v to have equal efficiency", high, equal)
	}
	if effGreater(high, equal) || effGreater(equal, high) {
		t.Errorf("did not expect strict inequality between equal-efficiency items %v, %v", high, equal)
	}
}
