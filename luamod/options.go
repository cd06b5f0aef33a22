package luamod

// DefaultGlobalName is the global the module table is bound to by Register.
const DefaultGlobalName = "_spanseq"

// Option configures a Module.
type Option func(*Module)

// WithGlobalName binds the module table to name instead of
// DefaultGlobalName. An empty name is ignored.
func WithGlobalName(name string) Option {
	return func(m *Module) {
		if name != "" {
			m.globalName = name
		}
	}
}
