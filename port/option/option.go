// Package option holds the functional option idiom shared by the contracts.
package option

// Option changes a Config.
type Option[Config any] interface {
	Configure(*Config)
}

// Func turns a plain function into an Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig builds a Config by applying opts in order.
// When *Config has an Init method, it is called first to set the defaults.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if d, ok := any(&c).(defaults); ok {
		d.Init()
	}
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

type defaults interface {
	Init()
}
