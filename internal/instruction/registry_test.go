package instruction

import (
	"errors"
	"sort"
	"testing"
)

func TestBuiltinArities(t *testing.T) {
	resetRegistryForTests()

	cases := map[ID]int{
		"integer_add": 0,
		"exec_noop":   0,
		"exec_dup":    1,
		"exec_if":     2,
		"exec_s":      3,
	}
	for id, want := range cases {
		meta, err := Get(id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if meta.Parentheses != want {
			t.Fatalf("%s: expected parentheses=%d, got=%d", id, want, meta.Parentheses)
		}
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	resetRegistryForTests()

	if err := Register("custom_op", Meta{Parentheses: 1}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := Register("custom_op", Meta{Parentheses: 1})
	if !errors.Is(err, ErrInstructionExists) {
		t.Fatalf("expected ErrInstructionExists, got %v", err)
	}
}

func TestRegisterValidates(t *testing.T) {
	resetRegistryForTests()

	if err := Register("", Meta{}); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := Register("bad_arity", Meta{Parentheses: -1}); err == nil {
		t.Fatal("expected error for negative arity")
	}
}

func TestGetUnknownInstruction(t *testing.T) {
	resetRegistryForTests()

	_, err := Get("no_such_instruction")
	if !errors.Is(err, ErrInstructionNotFound) {
		t.Fatalf("expected ErrInstructionNotFound, got %v", err)
	}
}

func TestListIsSorted(t *testing.T) {
	resetRegistryForTests()

	ids := List()
	if len(ids) == 0 {
		t.Fatal("expected built-in instructions")
	}
	if !sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }) {
		t.Fatalf("ids not sorted: %v", ids)
	}
}

func TestBuiltinTableIsSnapshot(t *testing.T) {
	resetRegistryForTests()

	table := BuiltinTable()
	if table.Parentheses("exec_if") != 2 {
		t.Fatalf("unexpected exec_if arity: %d", table.Parentheses("exec_if"))
	}
	if table.Parentheses("no_such_instruction") != 0 {
		t.Fatal("unknown instruction should count as arity 0")
	}

	table["exec_if"] = Meta{Parentheses: 9}
	meta, err := Get("exec_if")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if meta.Parentheses != 2 {
		t.Fatal("mutating the snapshot must not affect the registry")
	}
}
