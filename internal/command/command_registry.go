package command

// Commands register themselves from init(), keyed by slash name. Admin
// gating derives from the command's own RequireAdmin, so a command cannot
// declare itself admin-only and forget the check.

var registry = map[string]Command{}

func Register(cmd Command) {
	if cmd.RequireAdmin() {
		cmd = WithAdminOnly(cmd)
	}
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

func All() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	return list
}
