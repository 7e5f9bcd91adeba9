package runner

import (
	"fmt"
	"sort"
)

// Factory builds runners by strategy tag, sharing one set of options.
type Factory struct {
	constructors map[string]func(...Option) Runner
	opts         []Option
}

// NewDefaultFactory returns a factory with the sequential, mutex and
// channel strategies registered. opts are passed to every runner it builds.
func NewDefaultFactory(opts ...Option) *Factory {
	return &Factory{
		constructors: map[string]func(...Option) Runner{
			StrategySequential: func(o ...Option) Runner { return NewSequential(o...) },
			StrategyMutex:      func(o ...Option) Runner { return NewMutex(o...) },
			StrategyChannel:    func(o ...Option) Runner { return NewChannel(o...) },
		},
		opts: opts,
	}
}

// List returns the registered strategy tags in alphabetical order.
func (f *Factory) List() []string {
	keys := make([]string, 0, len(f.constructors))
	for k := range f.constructors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get builds the runner registered under name.
func (f *Factory) Get(name string) (Runner, error) {
	ctor, ok := f.constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, f.List())
	}
	return ctor(f.opts...), nil
}

// GetAll builds every registered runner, sequential first so that a
// comparison always starts from the reference result.
func (f *Factory) GetAll() []Runner {
	names := f.List()
	sort.SliceStable(names, func(i, j int) bool {
		return names[i] == StrategySequential && names[j] != StrategySequential
	})
	runners := make([]Runner, 0, len(names))
	for _, name := range names {
		r, _ := f.Get(name)
		runners = append(runners, r)
	}
	return runners
}
