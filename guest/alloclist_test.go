package guest

import "testing"

func TestAllocationListAddFree(t *testing.T) {
	alloc := &testAllocator{}

	al := NewAllocationList()
	al.Add(8, 16, 1)
	al.Add(32, 10, 2)
	al.Add(0, 4, 1) // zero pointer is never freed

	if al.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", al.Count())
	}

	al.Free(alloc)
	if len(alloc.frees) != 2 {
		t.Fatalf("freed %d allocations, want 2", len(alloc.frees))
	}
	if alloc.frees[0] != (Allocation{Ptr: 8, Size: 16, Align: 1}) {
		t.Errorf("first free = %+v", alloc.frees[0])
	}

	al.Release()
}

func TestAllocationListNilAllocator(t *testing.T) {
	al := NewAllocationList()
	defer al.Release()

	al.Add(8, 4, 1)
	al.Free(nil) // must not panic
}

func TestAllocationListReset(t *testing.T) {
	al := NewAllocationList()
	defer al.Release()

	al.Add(8, 4, 1)
	al.Reset()
	if al.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", al.Count())
	}
}
