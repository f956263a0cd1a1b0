package main

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// Command is one arktools subcommand
type Command interface {
	Name() string
	Usage() string
	Description() string
	Run(ctx context.Context, env *runEnv, args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(w io.Writer, options func()) {
	fmt.Fprintln(w, "Usage: arktools [OPTIONS] <command> <args>")
	fmt.Fprintln(w, "\nCommands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if n := len(cmd.Name()) + len(cmd.Usage()) + 1; n > maxLen {
			maxLen = n
		}
	}
	for _, cmd := range cmds {
		head := cmd.Name() + " " + cmd.Usage()
		padding := maxLen - len(head) + 2
		fmt.Fprintf(w, "  %s%*s%s\n", head, padding, "", cmd.Description())
	}

	fmt.Fprintln(w, "\nOptions:")
	options()
}

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&clusterUploadCommand{})
	r.Register(&clusterImportCommand{})
	r.Register(&inventoryAddCommand{})
	r.Register(&inventoryExportCommand{})
	return r
}
