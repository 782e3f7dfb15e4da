package plugin

import (
	"sort"
	"sync"

	"github.com/spf13/cobra"
)

// Registrar collects named subcommands contributed by plugins. It is the
// shared mutable context passed to every registration hook. Two plugins
// contributing the same subcommand name is rejected, so the final state is
// deterministic regardless of registration order.
type Registrar struct {
	mu       sync.Mutex
	commands map[string]*cobra.Command
}

// NewRegistrar creates an empty registrar.
func NewRegistrar() *Registrar {
	return &Registrar{commands: make(map[string]*cobra.Command)}
}

// Add registers a subcommand under its cobra name. It fails with
// ErrNilCommand for a nil command and *CollisionError when the name is
// already taken.
func (r *Registrar) Add(cmd *cobra.Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		return &CollisionError{Name: name}
	}
	r.commands[name] = cmd
	return nil
}

// Commands returns the registered subcommands sorted by name.
func (r *Registrar) Commands() []*cobra.Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmds := make([]*cobra.Command, 0, len(r.commands))
	for _, c := range r.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Len returns the number of registered subcommands.
func (r *Registrar) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// AttachTo adds every registered subcommand to parent, sorted by name.
func (r *Registrar) AttachTo(parent *cobra.Command) {
	for _, c := range r.Commands() {
		parent.AddCommand(c)
	}
}
