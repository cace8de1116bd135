package runner

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int
	Runs       int
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}

func (c Config) normalized() Config {
	if c.WarmupRuns < 0 {
		c.WarmupRuns = 0
	}
	if c.Runs < 1 {
		c.Runs = 1
	}
	return c
}
