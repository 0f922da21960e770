package fold_test

import (
	"testing"

	"github.com/azizkayumov/lctree/fold"
)

func TestMaxByWeight(t *testing.T) {
	f := fold.MaxByWeight[int]()

	a := f.Seed(9, 0)
	b := f.Seed(1, 1)
	c := f.Seed(8, 2)

	ab := f.Combine(a, b, fold.MaxAgg[int]{}, true, false)
	if ab.Weight != 9 || ab.Handle != 0 {
		t.Fatalf("combine(a,b) = %+v, want weight 9 handle 0", ab)
	}

	abc := f.Combine(ab, c, fold.MaxAgg[int]{}, true, false)
	if abc.Weight != 9 || abc.Handle != 0 {
		t.Fatalf("combine(ab,c) = %+v, want weight 9 handle 0", abc)
	}
}

func TestMaxByWeightTieKeepsShallowerLeft(t *testing.T) {
	f := fold.MaxByWeight[int]()
	left := f.Seed(5, 10)
	self := f.Seed(5, 20)

	got := f.Combine(left, self, fold.MaxAgg[int]{}, true, false)
	if got.Handle != 10 {
		t.Fatalf("a weight tie between left and self should keep the shallower left, got handle %d", got.Handle)
	}
}

func TestMaxByWeightTieBetweenSelfAndRightKeepsSelf(t *testing.T) {
	f := fold.MaxByWeight[int]()
	self := f.Seed(5, 20)
	right := f.Seed(5, 30)

	got := f.Combine(fold.MaxAgg[int]{}, self, right, false, true)
	if got.Handle != 20 {
		t.Fatalf("a weight tie between self and right should keep the shallower self, got handle %d", got.Handle)
	}
}

func TestSumOfWeights(t *testing.T) {
	f := fold.SumOfWeights[int]()

	leaves := []int{8, 1, 9, 2, 4}
	acc := f.Seed(leaves[0], 0)
	for i := 1; i < len(leaves); i++ {
		acc = f.Combine(acc, f.Seed(leaves[i], i), fold.SumAgg[int]{}, true, false)
	}
	if acc.Sum != 24 {
		t.Fatalf("sum = %d, want 24", acc.Sum)
	}
}

func TestXorOfWeights(t *testing.T) {
	f := fold.XorOfWeights[uint64]()

	leaves := []uint64{8, 1, 9, 2, 4}
	acc := f.Seed(leaves[0], 0)
	for i := 1; i < len(leaves); i++ {
		acc = f.Combine(acc, f.Seed(leaves[i], i), fold.XorAgg[uint64]{}, true, false)
	}
	want := leaves[0] ^ leaves[1] ^ leaves[2] ^ leaves[3] ^ leaves[4]
	if acc.Xor != want {
		t.Fatalf("xor = %d, want %d", acc.Xor, want)
	}
}

func TestCombineSkipsAbsentChildren(t *testing.T) {
	f := fold.SumOfWeights[int]()
	self := f.Seed(42, 0)
	got := f.Combine(fold.SumAgg[int]{Sum: 1000}, self, fold.SumAgg[int]{Sum: 2000}, false, false)
	if got.Sum != 42 {
		t.Fatalf("absent children must not be folded in, got %d", got.Sum)
	}
}
