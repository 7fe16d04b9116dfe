// Package sysinfo describes the host a benchmark runs on and guards
// statevector allocations against exhausting physical memory.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/mem"
	"golang.org/x/sys/cpu"
)

// Host captures the hardware context recorded alongside benchmark results.
// Memory fields are zero when the platform query fails; everything else is
// always available.
type Host struct {
	CPU           string
	Architecture  string
	PhysicalCores int
	LogicalCores  int
	CacheL1D      int // bytes, -1 when unknown
	CacheL2       int
	CacheL3       int

	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	TotalMemory     uint64
	AvailableMemory uint64
}

// Describe collects the host description. Best-effort: fields that cannot be
// determined are left at their zero value rather than failing the caller.
func Describe() Host {
	h := Host{
		CPU:           strings.TrimSpace(cpuid.CPU.BrandName),
		Architecture:  runtime.GOARCH,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheL1D:      cpuid.CPU.Cache.L1D,
		CacheL2:       cpuid.CPU.Cache.L2,
		CacheL3:       cpuid.CPU.Cache.L3,
		HasSSE2:       cpu.X86.HasSSE2,
		HasAVX2:       cpu.X86.HasAVX2,
		HasAVX512:     cpu.X86.HasAVX512,
		HasNEON:       cpu.ARM64.HasASIMD,
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		h.TotalMemory = vm.Total
		h.AvailableMemory = vm.Available
	}

	return h
}

// CanAllocate reports whether an allocation of the given size fits in the
// memory currently available, before the allocation is attempted. A huge
// statevector request should fail with a readable error here instead of
// taking down the process later.
func CanAllocate(bytes uint64) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("failed to query available memory: %w", err)
	}

	if bytes > vm.Available {
		return fmt.Errorf("allocation of %d bytes exceeds available memory (%d of %d bytes free)",
			bytes, vm.Available, vm.Total)
	}

	return nil
}
