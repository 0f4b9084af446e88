// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package bitvec

import (
	"testing"
	"unsafe"
)

func TestNbit(t *testing.T) {
	for _, x := range [...][2]int{
		{int(unsafe.Sizeof(uint(0))) * 8, (&V[uint]{}).nbit()},
		{int(unsafe.Sizeof(uint8(0))) * 8, (&V[uint8]{}).nbit()},
		{int(unsafe.Sizeof(uint16(0))) * 8, (&V[uint16]{}).nbit()},
		{int(unsafe.Sizeof(uint32(0))) * 8, (&V[uint32]{}).nbit()},
		{int(unsafe.Sizeof(uint64(0))) * 8, (&V[uint64]{}).nbit()},
		{int(unsafe.Sizeof(uintptr(0))) * 8, (&V[uintptr]{}).nbit()},
	} {
		if x[0] != x[1] {
			t.Fatalf("V[T].nbit:\nhave %d\nwant %d", x[0], x[1])
		}
	}
}

func TestZero(t *testing.T) {
	var v16 V[uint16]
	if n := v16.Len(); n != 0 {
		t.Fatalf("v16.Len:\nhave %d\nwant 0", n)
	}
	if n := v16.Rem(); n != 0 {
		t.Fatalf("v16.Rem:\nhave %d\nwant 0", n)
	}
	if _, ok := v16.Search(); ok {
		t.Fatal("v16.Search:\nhave true\nwant false")
	}
}

func TestGrow(t *testing.T) {
	var v32 V[uint32]
	for _, x := range [...]struct {
		nplus, wantLen int
	}{
		{1, 32},
		{2, 96},
		{0, 96},
		{-1, 96},
		{5, 256},
	} {
		if n, i := v32.Len(), v32.Grow(x.nplus); n != i {
			t.Fatalf("v32.Grow:\nhave %d\nwant %d", i, n)
		}
		if n := v32.Len(); n != x.wantLen {
			t.Fatalf("v32.Grow: Len:\nhave %d\nwant %d", n, x.wantLen)
		}
		if n := v32.Rem(); n != x.wantLen {
			t.Fatalf("v32.Grow: Rem:\nhave %d\nwant %d", n, x.wantLen)
		}
	}
}

func TestSetUnset(t *testing.T) {
	var v8 V[uint8]
	v8.Grow(2)
	for i, x := range [...]struct {
		set     bool
		index   int
		wantRem int
	}{
		{true, 0, 15},
		{true, 0, 15},
		{true, 9, 14},
		{true, 15, 13},
		{false, 9, 14},
		{false, 9, 14},
		{false, 0, 15},
		{true, 7, 14},
	} {
		if x.set {
			v8.Set(x.index)
		} else {
			v8.Unset(x.index)
		}
		if v8.IsSet(x.index) != x.set {
			t.Fatalf("[%d] v8.IsSet(%d):\nhave %t\nwant %t", i, x.index, !x.set, x.set)
		}
		if n := v8.Rem(); n != x.wantRem {
			t.Fatalf("[%d] v8.Rem:\nhave %d\nwant %d", i, n, x.wantRem)
		}
	}
}

func TestSearch(t *testing.T) {
	var v16 V[uint16]
	v16.Grow(1)
	for i := 0; i < 16; i++ {
		idx, ok := v16.Search()
		if !ok || idx != i {
			t.Fatalf("v16.Search:\nhave %d, %t\nwant %d, true", idx, ok, i)
		}
		v16.Set(idx)
	}
	if _, ok := v16.Search(); ok {
		t.Fatal("v16.Search: full vector\nhave true\nwant false")
	}

	v16.Unset(5)
	if idx, ok := v16.Search(); !ok || idx != 5 {
		t.Fatalf("v16.Search:\nhave %d, %t\nwant 5, true", idx, ok)
	}
	v16.Grow(1)
	v16.Set(5)
	if idx, ok := v16.Search(); !ok || idx != 16 {
		t.Fatalf("v16.Search:\nhave %d, %t\nwant 16, true", idx, ok)
	}
}
