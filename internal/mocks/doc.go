// Package mocks provides centralized mock implementations for testing.
//
// Store, credential and notification mocks use function fields: set the
// field for the method under test, or rely on the default in-memory
// behavior. Service mocks embed testify's mock.Mock so handler tests can
// set expectations with On(...).Return(...).
//
//	func TestSomething(t *testing.T) {
//	    tasks := mocks.NewMockTaskStore()
//	    tasks.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
//	        return nil, store.ErrTaskNotFound
//	    }
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Add a compile-time assertion that the mock satisfies the interface
package mocks
