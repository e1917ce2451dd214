package siunit

import (
	"sync"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Releasable represents any resource that can be released to free memory.
//
// This interface is implemented by temperature arrays, DataFrames, Series and
// other resources that use Apache Arrow memory management. Always call Release() when done
// with a resource to prevent memory leaks.
//
// The recommended pattern is to use defer for automatic cleanup:
//
//	arr, err := siunit.NewArray([]float64{21.5, 22.0})
//	if err != nil {
//		return err
//	}
//	defer arr.Release() // Automatic cleanup
type Releasable interface {
	Release()
}

// MemoryManager helps track and release multiple resources automatically.
//
// MemoryManager is useful for complex scenarios where many short-lived resources
// are created and need bulk cleanup. For most use cases, prefer the defer pattern
// with individual Release() calls for better readability.
//
// Use MemoryManager when:
//   - Creating many temporary resources in loops
//   - Complex operations with unpredictable resource lifetimes
//   - Bulk operations where individual defer statements are impractical
//
// The MemoryManager is safe for concurrent use from multiple goroutines.
//
// Example:
//
//	err := siunit.WithMemoryManager(mem, func(manager *siunit.MemoryManager) error {
//		for _, day := range days {
//			readings, err := siunit.NewArray(day, siunit.WithAllocator(manager.Allocator()))
//			if err != nil {
//				return err
//			}
//			manager.Track(readings) // Will be released automatically
//		}
//		return summarize()
//	})
//	// All tracked resources are released here
type MemoryManager struct {
	allocator memory.Allocator
	resources []Releasable
	mu        sync.Mutex // Mutex to synchronize access to resources
}

// NewMemoryManager creates a new memory manager with the given allocator
func NewMemoryManager(allocator memory.Allocator) *MemoryManager {
	if allocator == nil {
		allocator = memory.DefaultAllocator
	}
	return &MemoryManager{
		allocator: allocator,
		resources: make([]Releasable, 0),
	}
}

// Track adds a resource to be managed and automatically released
func (m *MemoryManager) Track(resource Releasable) {
	if resource != nil {
		m.mu.Lock()
		m.resources = append(m.resources, resource)
		m.mu.Unlock()
	}
}

// Allocator returns the allocator resources created under the manager should use.
func (m *MemoryManager) Allocator() memory.Allocator {
	return m.allocator
}

// Count returns the number of tracked resources
func (m *MemoryManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resources)
}

// ReleaseAll releases all tracked resources and clears the tracking list
func (m *MemoryManager) ReleaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, resource := range m.resources {
		if resource != nil {
			resource.Release()
		}
	}
	m.resources = m.resources[:0] // Clear the slice but keep capacity
}

// WithDataFrame provides automatic resource management for DataFrame operations.
//
// The factory builds the DataFrame, fn operates on it, and the DataFrame is
// released when fn returns. Any error from fn is returned to the caller.
//
// Example:
//
//	err := siunit.WithDataFrame(func() *siunit.DataFrame {
//		readings, _ := siunit.NewArray([]string{"21.5", "nan", "19.0"})
//		return siunit.NewDataFrame(
//			siunit.NewSeries("city", []string{"Oslo", "Rome", "Lima"}, nil),
//			siunit.NewTemperatureSeries("temp", readings),
//		)
//	}, func(df *siunit.DataFrame) error {
//		fmt.Println(df)
//		return nil
//	})
func WithDataFrame(factory func() *DataFrame, fn func(*DataFrame) error) error {
	df := factory()
	defer df.Release()
	return fn(df)
}

// WithSeries creates a Series, executes a function with it, and automatically releases it
func WithSeries(factory func() ISeries, fn func(ISeries) error) error {
	s := factory()
	defer s.Release()
	return fn(s)
}

// WithArray creates a temperature array, executes fn with it, and releases it.
func WithArray(factory func() (*TemperatureArray, error), fn func(*TemperatureArray) error) error {
	arr, err := factory()
	if err != nil {
		return err
	}
	defer arr.Release()
	return fn(arr)
}

// WithMemoryManager creates a memory manager, executes a function with it, and releases all tracked resources
func WithMemoryManager(allocator memory.Allocator, fn func(*MemoryManager) error) error {
	manager := NewMemoryManager(allocator)
	defer manager.ReleaseAll()
	return fn(manager)
}
