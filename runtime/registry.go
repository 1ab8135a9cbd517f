package runtime

import (
	"chat-gate/contract"
	"fmt"
	"sort"
	"sync"
)

// TaskRegistry keeps composed tasks by name so the runner can look them up.
type TaskRegistry struct {
	mu    sync.RWMutex
	tasks map[string]contract.Task
}

func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{tasks: make(map[string]contract.Task)}
}

// Register adds task under its own name. Registering a name twice is an error.
func (r *TaskRegistry) Register(task contract.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.Name()]; exists {
		return fmt.Errorf("task %q already registered", task.Name())
	}
	r.tasks[task.Name()] = task
	return nil
}

func (r *TaskRegistry) Get(name string) (contract.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[name]
	return task, ok
}

// Names lists registered task names in alphabetical order.
func (r *TaskRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
