package guest

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/glotkit/ucbridge"
)

// WrapMemory adapts a wazero api.Memory to the ucbridge.Memory interface.
func WrapMemory(mem api.Memory) ucbridge.Memory {
	if mem == nil {
		return nil
	}
	return &wazeroMemory{mem: mem}
}

type wazeroMemory struct {
	mem api.Memory
}

func (m *wazeroMemory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

func (m *wazeroMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

// WrapAllocator adapts a guest realloc export (cabi_realloc signature) to the
// ucbridge.Allocator interface. The context is captured for the realloc calls.
func WrapAllocator(ctx context.Context, realloc api.Function) ucbridge.Allocator {
	if realloc == nil {
		return nil
	}
	return &reallocAllocator{ctx: ctx, fn: realloc}
}

type reallocAllocator struct {
	ctx context.Context
	fn  api.Function
}

// Alloc allocates guest memory via realloc(0, 0, align, size).
func (a *reallocAllocator) Alloc(size, align uint32) (uint32, error) {
	results, err := a.fn.Call(a.ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, fmt.Errorf("allocation failed: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("allocation returned no result")
	}
	return uint32(results[0]), nil
}

// Free deallocates guest memory via realloc(ptr, size, align, 0).
func (a *reallocAllocator) Free(ptr, size, align uint32) {
	_, _ = a.fn.Call(a.ctx, uint64(ptr), uint64(size), uint64(align), 0)
}
