package btree

import (
	"encoding/binary"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestInsertRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./btree -run '^$' -fuzz FuzzInsert -fuzztime=10s

// assertTreeMatchesModel checks structural invariants, completeness of the
// in-order walk and that every key is stored in exactly one node.
func assertTreeMatchesModel(t *testing.T, tree *Tree[int, int], model map[int]int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if tree.Len() != len(model) {
		t.Fatalf("length mismatch: got=%d want=%d", tree.Len(), len(model))
	}
	var keys []int
	for k, v := range tree.All() {
		want, ok := model[k]
		if !ok {
			t.Fatalf("unexpected key %d in tree", k)
		}
		if v != want {
			t.Fatalf("value mismatch for %d: got=%d want=%d", k, v, want)
		}
		keys = append(keys, k)
	}
	if len(keys) != len(model) || !slices.IsSorted(keys) {
		t.Fatalf("in-order walk is incomplete or unsorted: %v", keys)
	}
	occurrences := make(map[int]int, len(model))
	tree.Walk(func(v NodeView[int, int]) bool {
		for _, k := range v.Keys() {
			occurrences[k]++
		}
		return true
	})
	for k, n := range occurrences {
		if n != 1 {
			t.Fatalf("key %d stored in %d nodes", k, n)
		}
	}
}

func runRandomInserts(t *testing.T, r *rand.Rand, nodeSize, steps, keyRange int) {
	t.Helper()
	tree := newIntTree(t, nodeSize)
	model := make(map[int]int)
	for step := range steps {
		k := r.Intn(keyRange)
		v := r.Int()
		height := tree.Height()
		_, exists := model[k]
		if ok := tree.Insert(k, v); ok == exists {
			t.Fatalf("node size %d, step %d: Insert(%d) returned %v, key present before: %v",
				nodeSize, step, k, ok, exists)
		}
		if !exists {
			model[k] = v
		}
		if grown := tree.Height() - height; grown < 0 || grown > 1 {
			t.Fatalf("node size %d, step %d: height changed by %d", nodeSize, step, grown)
		}
		if step%17 == 0 {
			assertTreeMatchesModel(t, tree, model)
		}
	}
	assertTreeMatchesModel(t, tree, model)
}

func TestInsertRandomizedProperty(t *testing.T) {
	r := rand.New(rand.NewSource(20201014))
	for nodeSize := 1; nodeSize <= 9; nodeSize++ {
		runRandomInserts(t, r, nodeSize, 600, 400)
	}
	runRandomInserts(t, r, DefaultNodeSize, 5000, 1<<20)
}

func FuzzInsert(f *testing.F) {
	f.Add(uint8(2), []byte{2, 0, 1, 0, 3, 0, 6, 0, 4, 0})
	f.Add(uint8(1), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add(uint8(5), []byte{9, 9, 9, 1, 1, 1})
	f.Fuzz(func(t *testing.T, size uint8, data []byte) {
		nodeSize := int(size%12) + 1
		tree := newIntTree(t, nodeSize)
		model := make(map[int]int)
		for i := 0; i+1 < len(data); i += 2 {
			k := int(binary.LittleEndian.Uint16(data[i:]))
			_, exists := model[k]
			if tree.Insert(k, i) == exists {
				t.Fatalf("Insert(%d) disagrees with model, present before: %v", k, exists)
			}
			if !exists {
				model[k] = i
			}
		}
		assertTreeMatchesModel(t, tree, model)
	})
}
