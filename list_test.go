package treelist

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPushBackAndAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	list := New[string]()
	for _, d := range days {
		if err := list.PushBack(d); err != nil {
			t.Fatal(err)
		}
	}
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
	if list.Len() != 7 {
		t.Fatalf("expected list of length 7, has %d", list.Len())
	}
	for i, d := range days {
		if v, err := list.At(i); err != nil || v != d {
			t.Errorf("list[%d] = %q (%v), want %q", i, v, err, d)
		}
	}
}

func TestFilled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	list, err := Filled(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 3 {
		t.Fatalf("expected list of length 3, has %d", list.Len())
	}
	for i := 0; i < 3; i++ {
		if v, _ := list.At(i); v != 1 {
			t.Errorf("list[%d] = %d, want 1", i, v)
		}
	}
	if _, err = Filled(-1, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected negative count to be rejected, got %v", err)
	}
	empty, err := Filled(0, "x")
	if err != nil || !empty.IsEmpty() {
		t.Errorf("expected empty list for count 0, got len=%d err=%v", empty.Len(), err)
	}
}

func TestSetThroughRefAndSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	words := []string{"zero", "ten", "twenty", "thirty", "forty", "fifty",
		"sixty", "seventy", "eighty", "ninety"}
	list, _ := Filled(10, "")
	for i, w := range words {
		if i%2 == 0 {
			p, err := list.Ref(i)
			if err != nil {
				t.Fatal(err)
			}
			*p = w
		} else if err := list.Set(i, w); err != nil {
			t.Fatal(err)
		}
	}
	if list.Len() != 10 {
		t.Fatalf("expected list of length 10, has %d", list.Len())
	}
	for i, w := range words {
		if v, _ := list.At(i); v != w {
			t.Errorf("list[%d] = %q, want %q", i, v, w)
		}
	}
}

func TestInsertAtStart(t *testing.T) {
	list := New[rune]()
	for _, r := range "abc" {
		if err := list.Insert(0, r); err != nil {
			t.Fatal(err)
		}
	}
	if got := string(list.ToSlice()); got != "cba" {
		t.Errorf("expected \"cba\", got %q", got)
	}
}

func TestInsertAtEnd(t *testing.T) {
	list := New[rune]()
	for i, r := range []rune("abcd") {
		if err := list.Insert(i, r); err != nil {
			t.Fatal(err)
		}
	}
	if got := string(list.ToSlice()); got != "abcd" {
		t.Errorf("expected \"abcd\", got %q", got)
	}
}

func TestInsertAtMiddle(t *testing.T) {
	list := New[string]()
	inserts := []struct {
		at int
		s  string
	}{
		{0, "Up"}, {1, "Down"}, {1, "Left"}, {2, "Right"}, {1, "Front"}, {2, "Back"},
	}
	for _, ins := range inserts {
		if err := list.Insert(ins.at, ins.s); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"Up", "Front", "Back", "Left", "Right", "Down"}
	if list.Len() != len(want) {
		t.Fatalf("expected list of length %d, has %d", len(want), list.Len())
	}
	for i, w := range want {
		if v, _ := list.At(i); v != w {
			t.Errorf("list[%d] = %q, want %q", i, v, w)
		}
	}
	if err := list.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertManyAtBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	const N = 100000
	list := New[int]()
	for i := 0; i < N; i++ {
		list.PushBack(i)
	}
	for i := 0; i < N; i++ {
		if v, _ := list.At(i); v != i {
			t.Fatalf("list[%d] = %d", i, v)
		}
	}
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertManyAtFront(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	const N = 300000
	list := New[int]()
	for i := N - 1; i >= 0; i-- {
		list.Insert(0, i)
	}
	for i := 0; i < N; i++ {
		if v, _ := list.At(i); v != i {
			t.Fatalf("list[%d] = %d", i, v)
		}
	}
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
	t.Logf("height of list with %d elements = %d", N, list.Height())
	if list.Height() > 40 {
		t.Errorf("height %d exceeds 40", list.Height())
	}
}

func TestErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	text := "the quick brown fox jumped over the lazy dog"
	list := New[byte]()
	for i := 0; i < len(text); i++ {
		list.PushBack(text[i])
	}
	if list.Len() != len(text) {
		t.Fatalf("expected length %d, has %d", len(text), list.Len())
	}
	erasures := []struct {
		at   int
		char byte
	}{
		{2, 'e'}, {4, 'u'}, {3, 'q'}, {2, ' '}, {12, 'f'}, {11, ' '},
		{10, 'n'}, {9, 'w'}, {11, ' '}, {11, 'j'}, {11, 'u'}, {10, 'x'},
		{11, 'p'}, {12, 'd'}, {11, 'e'}, {13, 'v'}, {13, 'e'}, {19, 'l'},
		{20, 'z'}, {19, 'a'}, {18, ' '}, {22, 'g'},
	}
	model := []byte(text)
	for _, e := range erasures {
		model = append(model[:e.at], model[e.at+1:]...)
		if c, _ := list.At(e.at); c != e.char {
			t.Fatalf("list[%d] = %q, want %q", e.at, c, e.char)
		}
		size := list.Len()
		c, err := list.Erase(e.at)
		if err != nil {
			t.Fatal(err)
		}
		if c != e.char {
			t.Errorf("erase(%d) returned %q, want %q", e.at, c, e.char)
		}
		if list.Len() != size-1 {
			t.Errorf("erase(%d) changed length from %d to %d", e.at, size, list.Len())
		}
	}
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
	if got := string(list.ToSlice()); got != string(model) {
		t.Errorf("remaining text = %q, want %q", got, string(model))
	}
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	list := New[int]()
	for i := 0; i < 20; i++ {
		list.PushBack(i * i)
	}
	list.Clear()
	if list.Len() != 0 || !list.IsEmpty() {
		t.Fatalf("expected empty list after clear, has length %d", list.Len())
	}
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{-1, -8, -27} {
		list.PushBack(v)
	}
	if list.Len() != 3 {
		t.Fatalf("expected length 3, has %d", list.Len())
	}
	for i, want := range []int{-1, -8, -27} {
		if v, _ := list.At(i); v != want {
			t.Errorf("list[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestPopBack(t *testing.T) {
	list := FromSlice([]int{1, 2, 3})
	for want := 3; want > 0; want-- {
		v, err := list.PopBack()
		if err != nil || v != want {
			t.Fatalf("PopBack() = %d, %v; want %d", v, err, want)
		}
	}
	if _, err := list.PopBack(); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected PopBack on empty list to fail, got %v", err)
	}
}

func TestPushFront(t *testing.T) {
	list := New[int]()
	for i := 0; i < 5; i++ {
		list.PushFront(i)
	}
	want := []int{4, 3, 2, 1, 0}
	for i, w := range list.ToSlice() {
		if w != want[i] {
			t.Fatalf("list = %v, want %v", list.ToSlice(), want)
		}
	}
}

func TestBoundsChecks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treelist")
	defer teardown()
	//
	list := FromSlice([]int{10, 20, 30})
	if _, err := list.At(list.Len()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("At(Len()) should fail, got %v", err)
	}
	if _, err := list.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("At(-1) should fail, got %v", err)
	}
	if err := list.Set(3, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Set(Len()) should fail, got %v", err)
	}
	if err := list.Insert(list.Len()+1, 40); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Insert(Len()+1) should fail, got %v", err)
	}
	if err := list.Insert(-1, 40); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Insert(-1) should fail, got %v", err)
	}
	if _, err := list.Erase(list.Len()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Erase(Len()) should fail, got %v", err)
	}
	it := list.Begin()
	if _, err := list.Erase(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Erase(-1) should fail, got %v", err)
	}
	if _, err := it.Value(); err != nil {
		t.Errorf("failed operations must not invalidate iterators, got %v", err)
	}
	got := list.ToSlice()
	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("failed operations mutated the list: %v", got)
	}
}

func TestCapacityExceeded(t *testing.T) {
	list, err := NewWithConfig[int](Config{MaxLen: 2})
	if err != nil {
		t.Fatal(err)
	}
	list.PushBack(1)
	list.PushBack(2)
	if err := list.PushBack(3); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected capacity to be exceeded, got %v", err)
	}
	if list.Len() != 2 {
		t.Errorf("failed insert changed length to %d", list.Len())
	}
	list.PopBack()
	if err := list.PushFront(0); err != nil {
		t.Errorf("expected insert to succeed below maximum length, got %v", err)
	}
}

func TestZeroValueList(t *testing.T) {
	var list List[string]
	if !list.IsEmpty() || list.Height() != 0 {
		t.Fatalf("zero list should be empty")
	}
	if err := list.PushBack("a"); err != nil {
		t.Fatal(err)
	}
	if v, _ := list.At(0); v != "a" {
		t.Errorf("list[0] = %q", v)
	}
	var nilList *List[int]
	if nilList.Len() != 0 || nilList.Insert(0, 1) == nil {
		t.Errorf("nil list should be empty and reject insertion")
	}
}

func TestFromSliceIsBalanced(t *testing.T) {
	for n := 0; n < 130; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		list := FromSlice(items)
		if err := list.Check(); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for i, v := range list.ToSlice() {
			if v != i {
				t.Fatalf("n=%d: list[%d] = %d", n, i, v)
			}
		}
	}
}
