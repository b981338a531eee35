package babelconfigs

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Policy decides what a literal query does when it is not a coordinate or a pattern.
type Policy string

const (
	// PolicyScan samples pages until one already contains the literal.
	PolicyScan Policy = "scan"
	// PolicyEmbed plants the literal into a random page.
	PolicyEmbed Policy = "embed"
)

func (p Policy) Valid() bool {
	return p == PolicyScan || p == PolicyEmbed
}

// UnmarshalText rejects unknown policies when a flag is parsed.
func (p *Policy) UnmarshalText(text []byte) error {
	policy := Policy(text)
	if !policy.Valid() {
		return fmt.Errorf("unknown policy %q, want scan or embed", text)
	}
	*p = policy
	return nil
}

const DefaultMaxAttempts = 5000

// SearchOptions bound brute-force searches.
type SearchOptions struct {
	// MaxAttempts is the attempt ceiling.
	MaxAttempts int
	// Timeout caps wall-clock time per search; zero means no cap.
	Timeout time.Duration
	Workers int
	Policy  Policy
	// Seed keys the sampled coordinates; zero picks a fresh seed per search.
	Seed uint64
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxAttempts: DefaultMaxAttempts,
		Workers:     runtime.GOMAXPROCS(0),
		Policy:      PolicyScan,
	}
}

func (s SearchOptions) Validate() error {
	if s.MaxAttempts < 1 {
		return fmt.Errorf("max attempts %d: %w", s.MaxAttempts, ErrNonPositive)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d: %w", s.Workers, ErrNonPositive)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout %v: %w", s.Timeout, ErrNonPositive)
	}
	if !s.Policy.Valid() {
		return fmt.Errorf("unknown policy %q", s.Policy)
	}
	return nil
}

func (s SearchOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("max_attempts", s.MaxAttempts),
		slog.Duration("timeout", s.Timeout),
		slog.Int("workers", s.Workers),
		slog.String("policy", string(s.Policy)),
		slog.Uint64("seed", s.Seed),
	)
}
