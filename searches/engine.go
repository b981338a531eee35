package searches

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/ciphers"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/logs"
	"github.com/reusee/babel/pages"
	"github.com/reusee/babel/syncs"
)

// Engine is safe for concurrent use. Every call builds its own streams.
type Engine struct {
	config  babelconfigs.Configuration
	options babelconfigs.SearchOptions
	logger  logs.Logger
	newSpan logs.NewSpan
}

// NewEngine builds an engine. logger and newSpan may be nil.
func NewEngine(
	config babelconfigs.Configuration,
	options babelconfigs.SearchOptions,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if newSpan == nil {
		newSpan = func(ctx context.Context, what string, args ...any) (context.Context, logs.Span) {
			return ctx, ""
		}
	}
	return &Engine{
		config:  config,
		options: options,
		logger:  logger,
		newSpan: newSpan,
	}
}

func (e *Engine) Config() babelconfigs.Configuration {
	return e.config
}

// Search classifies input and dispatches it. Literal input follows the configured policy.
func (e *Engine) Search(ctx context.Context, input string) (Result, error) {
	switch Classify(input) {
	case ModeCoordinates:
		return e.Lookup(ctx, input)
	case ModePattern:
		return e.Regex(ctx, input)
	}
	if e.options.Policy == babelconfigs.PolicyEmbed {
		return e.Embed(ctx, input)
	}
	return e.Scan(ctx, input)
}

// Lookup generates the page at a "w-s-v-p" or "token-w-s-v-p" address.
func (e *Engine) Lookup(ctx context.Context, address string) (ret Result, err error) {
	ctx, _ = e.newSpan(ctx, "lookup", "address", address)
	c, err := coords.Parse(address, e.config.Bounds())
	if err != nil {
		e.logger.InfoContext(ctx, "invalid address", "error", err)
		return ret, err
	}
	return Result{
		Mode:   ModeCoordinates,
		Page:   pages.Generate(c, e.config),
		Offset: -1,
	}, nil
}

// ByAddress generates the page at a "token-w-s-v-p" address whose token matches its coordinates.
func (e *Engine) ByAddress(ctx context.Context, address string) (ret Result, err error) {
	if !coords.VerifyAddress(address) {
		return ret, fmt.Errorf("%w: %q is not a verified address", ErrInvalidCoordinates, address)
	}
	return e.Lookup(ctx, address)
}

// Title generates the title slot of the volume at a "w-s-v" address.
func (e *Engine) Title(ctx context.Context, address string) (ret Result, err error) {
	ctx, _ = e.newSpan(ctx, "title lookup", "address", address)
	c, err := coords.ParseVolume(address, e.config.Bounds())
	if err != nil {
		e.logger.InfoContext(ctx, "invalid address", "error", err)
		return ret, err
	}
	return Result{
		Mode:   ModeCoordinates,
		Page:   pages.Generate(c, e.config),
		Offset: -1,
	}, nil
}

// Regex samples pages until one matches pattern.
func (e *Engine) Regex(ctx context.Context, pattern string) (ret Result, err error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ret, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	ctx, _ = e.newSpan(ctx, "regex search", "pattern", pattern)
	return e.sample(ctx, ModePattern, re.MatchString)
}

// Scan samples pages until one already contains literal.
func (e *Engine) Scan(ctx context.Context, literal string) (ret Result, err error) {
	ctx, _ = e.newSpan(ctx, "scan search", "literal", literal)
	for _, r := range literal {
		if _, ok := e.config.PageIndex(r); !ok {
			// no page can contain it
			e.logger.InfoContext(ctx, "literal outside page alphabet", "rune", string(r))
			return ret, fmt.Errorf("%w: %q is not a page symbol", ErrNotFound, r)
		}
	}
	return e.sample(ctx, ModeLiteral, func(text string) bool {
		return strings.Contains(text, literal)
	})
}

// Embed plants literal at a random depth of a random page.
func (e *Engine) Embed(ctx context.Context, literal string) (ret Result, err error) {
	seed := e.seed()
	ctx, _ = e.newSpan(ctx, "embed", "literal", literal, "seed", seed)
	src := placementRand(seed)
	c := coords.Random(src, e.config.Bounds())
	depth := ciphers.RandomDepth(src, len(ciphers.Filter(literal, e.config)), e.config)
	embedding := ciphers.Embed(literal, c, depth, e.config)
	ret = Result{
		Mode:   ModeLiteral,
		Page:   embedding.Page,
		Offset: embedding.Offset,
		Seed:   seed,
	}
	e.logger.InfoContext(ctx, "embedded", "result", ret)
	return ret, nil
}

// EmbedExact places literal at a random position of a random page padded with spaces.
func (e *Engine) EmbedExact(ctx context.Context, literal string) (ret Result, err error) {
	seed := e.seed()
	ctx, _ = e.newSpan(ctx, "embed exact", "literal", literal, "seed", seed)
	src := placementRand(seed)
	c := coords.Random(src, e.config.Bounds())
	kept := len(ciphers.Filter(literal, e.config))
	position := 0
	if span := e.config.PageLength() - kept; span > 0 {
		position = src.IntN(span + 1)
	}
	embedding, err := ciphers.EmbedExact(literal, c, position, e.config)
	if err != nil {
		return ret, err
	}
	ret = Result{
		Mode:   ModeLiteral,
		Page:   embedding.Page,
		Offset: embedding.Offset,
		Seed:   seed,
	}
	e.logger.InfoContext(ctx, "embedded", "result", ret)
	return ret, nil
}

// EmbedTitle enciphers literal as the title of a random volume.
func (e *Engine) EmbedTitle(ctx context.Context, literal string) (ret Result, err error) {
	seed := e.seed()
	ctx, _ = e.newSpan(ctx, "embed title", "literal", literal, "seed", seed)
	c := coords.Random(placementRand(seed), e.config.Bounds())
	page, err := ciphers.EmbedTitle(literal, c, e.config)
	if err != nil {
		return ret, err
	}
	ret = Result{
		Mode:   ModeLiteral,
		Page:   page,
		Offset: -1,
		Seed:   seed,
	}
	e.logger.InfoContext(ctx, "embedded", "result", ret)
	return ret, nil
}

func (e *Engine) seed() uint64 {
	if e.options.Seed != 0 {
		return e.options.Seed
	}
	return rand.Uint64()
}

// placement draws from a stream no attempt uses
func placementRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, math.MaxUint64))
}

func attemptCoordinates(seed uint64, attempt int, bounds coords.Bounds) coords.Coordinates {
	return coords.Random(rand.New(rand.NewPCG(seed, uint64(attempt))), bounds)
}

func (e *Engine) sample(ctx context.Context, mode Mode, match func(text string) bool) (ret Result, err error) {
	seed := e.seed()
	if e.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.Timeout)
		defer cancel()
	}
	bounds := e.config.Bounds()

	var (
		mu          sync.Mutex
		best        = -1
		bestCoords  coords.Coordinates
		generated   atomic.Int64
		wg          = new(sync.WaitGroup)
		sem         = syncs.NewSemaphore(e.options.Workers)
		bestAttempt = func() int {
			mu.Lock()
			defer mu.Unlock()
			return best
		}
	)

	for attempt := range e.options.MaxAttempts {
		// every attempt below the best match has been dispatched
		if b := bestAttempt(); b >= 0 && b < attempt {
			break
		}
		if ctx.Err() != nil {
			break
		}
		sem.Go(wg, func() {
			if b := bestAttempt(); b >= 0 && b < attempt {
				return
			}
			c := attemptCoordinates(seed, attempt, bounds)
			text := pages.Content(c, e.config)
			generated.Add(1)
			if !match(text) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if best < 0 || attempt < best {
				best = attempt
				bestCoords = c
			}
		})
	}
	wg.Wait()

	if best < 0 {
		err = fmt.Errorf("%w after %d attempts", ErrNotFound, generated.Load())
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", err, ctxErr)
		}
		e.logger.InfoContext(ctx, "not found",
			"mode", mode,
			"attempts", generated.Load(),
			"seed", seed,
		)
		return ret, err
	}

	ret = Result{
		Mode:     mode,
		Page:     pages.Generate(bestCoords, e.config),
		Attempts: best + 1,
		Offset:   -1,
		Seed:     seed,
	}
	e.logger.InfoContext(ctx, "found",
		"result", ret,
		"generated", generated.Load(),
	)
	return ret, nil
}
