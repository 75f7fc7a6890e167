package instruction

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrInstructionExists   = errors.New("instruction already registered")
	ErrInstructionNotFound = errors.New("instruction not found")
)

var instructionRegistry = struct {
	mu sync.RWMutex
	m  map[ID]Meta
}{
	m: make(map[ID]Meta),
}

func init() {
	initializeBuiltInInstructions()
}

func initializeBuiltInInstructions() {
	// Arithmetic and comparison instructions consume stack arguments only;
	// they open no code blocks.
	for _, id := range []ID{
		"integer_add", "integer_sub", "integer_mult", "integer_div",
		"integer_mod", "integer_eq", "integer_lt", "integer_gt",
		"boolean_and", "boolean_or", "boolean_not",
		"exec_noop",
	} {
		MustRegister(id, Meta{Parentheses: 0})
	}

	MustRegister("exec_dup", Meta{Parentheses: 1})
	MustRegister("exec_pop", Meta{Parentheses: 1})
	MustRegister("exec_when", Meta{Parentheses: 1})
	MustRegister("exec_do_times", Meta{Parentheses: 1})
	MustRegister("exec_do_count", Meta{Parentheses: 1})
	MustRegister("exec_do_range", Meta{Parentheses: 1})
	MustRegister("exec_y", Meta{Parentheses: 1})
	MustRegister("exec_if", Meta{Parentheses: 2})
	MustRegister("exec_k", Meta{Parentheses: 2})
	MustRegister("exec_swap", Meta{Parentheses: 2})
	MustRegister("exec_rot", Meta{Parentheses: 3})
	MustRegister("exec_s", Meta{Parentheses: 3})
}

// Register adds an instruction to the process-wide registry.
func Register(id ID, meta Meta) error {
	if id == "" {
		return errors.New("instruction id is required")
	}
	if meta.Parentheses < 0 {
		return fmt.Errorf("instruction %s: parentheses arity must be >= 0", id)
	}

	instructionRegistry.mu.Lock()
	defer instructionRegistry.mu.Unlock()

	if _, exists := instructionRegistry.m[id]; exists {
		return fmt.Errorf("%w: %s", ErrInstructionExists, id)
	}
	instructionRegistry.m[id] = meta
	return nil
}

func MustRegister(id ID, meta Meta) {
	if err := Register(id, meta); err != nil {
		panic(err)
	}
}

// Get returns the registered metadata for id.
func Get(id ID) (Meta, error) {
	instructionRegistry.mu.RLock()
	meta, ok := instructionRegistry.m[id]
	instructionRegistry.mu.RUnlock()
	if !ok {
		return Meta{}, fmt.Errorf("%w: %s", ErrInstructionNotFound, id)
	}
	return meta, nil
}

// List returns the registered instruction ids in sorted order.
func List() []ID {
	instructionRegistry.mu.RLock()
	defer instructionRegistry.mu.RUnlock()

	ids := make([]ID, 0, len(instructionRegistry.m))
	for id := range instructionRegistry.m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BuiltinTable returns a snapshot of the registry as a lookup Table.
func BuiltinTable() Table {
	instructionRegistry.mu.RLock()
	defer instructionRegistry.mu.RUnlock()

	table := make(Table, len(instructionRegistry.m))
	for id, meta := range instructionRegistry.m {
		table[id] = meta
	}
	return table
}

func resetRegistryForTests() {
	instructionRegistry.mu.Lock()
	instructionRegistry.m = make(map[ID]Meta)
	instructionRegistry.mu.Unlock()
	initializeBuiltInInstructions()
}
