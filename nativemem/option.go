// option.go defines functional options for configuring an Arena.

package nativemem

const (
	defaultCells = 512
)

type config struct {
	Cells uint
	Name  string
}

type Option interface {
	apply(*config)
}

type Options []Option

func (s Options) apply(cfg *config) {
	for _, opt := range s {
		opt.apply(cfg)
	}
}

func (s Options) config() config {
	cfg := config{
		Cells: defaultCells,
		Name:  "arena",
	}
	s.apply(&cfg)
	return cfg
}

// OptionCells sets the capacity of the arena in 8-byte cells.
type OptionCells uint

func (opt OptionCells) apply(cfg *config) {
	cfg.Cells = uint(opt)
}

// OptionName sets the name used in logs and in String.
type OptionName string

func (opt OptionName) apply(cfg *config) {
	cfg.Name = string(opt)
}
