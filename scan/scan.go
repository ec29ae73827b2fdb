package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/catalog"
	"github.com/syssam/modelgraph/dialect"
	"github.com/syssam/modelgraph/graph"
)

// Scanner discovers the relational schema implied by a registry of models.
// It probes each model's eligible methods inside a rollback-only sandbox,
// classifies the relations they produce, and assembles the edges into a
// schema graph.
type Scanner struct {
	registry   *catalog.Registry
	driver     dialect.Driver
	exclusions Exclusions
	timeout    time.Duration
	cache      modelgraph.Cache
	cacheTTL   time.Duration
	reporter   Reporter
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDriver supplies the storage driver probe sessions run against.
// Without one, probes execute on a denying connection: classification and
// extraction still work, but any storage touch fails fast.
func WithDriver(drv dialect.Driver) Option {
	return func(s *Scanner) { s.driver = drv }
}

// WithExclusions supplies the method exclusion configuration.
func WithExclusions(ex Exclusions) Option {
	return func(s *Scanner) { s.exclusions = ex }
}

// WithProbeTimeout bounds each method invocation. Zero (the default)
// means probes run synchronously with no deadline.
func WithProbeTimeout(d time.Duration) Option {
	return func(s *Scanner) { s.timeout = d }
}

// WithCache memoizes scan results under a key derived from the registered
// model set and the exclusion configuration. A ttl of zero caches without
// expiry.
func WithCache(c modelgraph.Cache, ttl time.Duration) Option {
	return func(s *Scanner) { s.cache, s.cacheTTL = c, ttl }
}

// WithReporter streams failures to the given reporter as they occur.
func WithReporter(r Reporter) Option {
	return func(s *Scanner) { s.reporter = r }
}

// New returns a Scanner over the given registry.
func New(reg *catalog.Registry, opts ...Option) *Scanner {
	s := &Scanner{registry: reg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan runs the discovery. Every entity gets a node; method failures are
// recovered into the report and never abort the scan. The only fatal
// errors are environmental ones, such as failing to open a probe
// transaction.
func (s *Scanner) Scan(ctx context.Context) (*graph.Graph, *Report, error) {
	report := newReport()

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, s.cacheKey()); err == nil && data != nil {
			if g, err := graph.Unmarshal(data); err == nil {
				report.FromCache = true
				return g, report, nil
			}
		}
		// Cache misses and cache errors alike fall through to a live scan.
	}

	b := graph.NewBuilder()
	for _, d := range s.registry.Descriptors() {
		b.AddEntity(d.Name(), d.Table())
		if err := s.scanEntity(ctx, d, b, report); err != nil {
			return nil, report, err
		}
	}
	g := b.Graph()

	if s.cache != nil {
		if data, err := graph.Marshal(g); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(), data, s.cacheTTL)
		}
	}
	return g, report, nil
}

// scanEntity probes one model inside its own sandbox session. The session
// is rolled back unconditionally when the entity is done.
func (s *Scanner) scanEntity(ctx context.Context, d *catalog.Descriptor, b *graph.Builder, report *Report) error {
	sess, err := newSession(ctx, s.driver, s.timeout)
	if err != nil {
		return fmt.Errorf("scan: opening probe session for %s: %w", d.Name(), err)
	}
	defer sess.Close()

	inst := d.New()
	inst.Bind(sess.conn)
	for _, m := range eligibleMethods(d, s.exclusions) {
		s.probeMethod(sess, d, inst, m, b, report)
	}
	return nil
}

// probeMethod takes one candidate through classification, confirmation and
// extraction. All failures are recorded and recovered here.
func (s *Scanner) probeMethod(sess *session, d *catalog.Descriptor, inst modelgraph.Model, m reflect.Method, b *graph.Builder, report *Report) {
	c := classifyStatic(m)
	if !c.ok && !c.needsProbe {
		return
	}
	if c.needsProbe {
		v, err := sess.invoke(inst, m)
		if err != nil {
			report.record(s.reporter, d.Name(), m.Name, modelgraph.NewProbeError(d.Name(), m.Name, err))
			return
		}
		if _, cv := classifyValue(v); !cv.ok {
			return // not a relation, silently discard
		}
	}

	// Confirmed. Invoke for a fresh instance to extract metadata from;
	// statically classified methods are invoked here for the first time
	// and can still fail.
	v, err := sess.invoke(inst, m)
	if err != nil {
		report.record(s.reporter, d.Name(), m.Name, modelgraph.NewProbeError(d.Name(), m.Name, err))
		return
	}
	rel, cv := classifyValue(v)
	if !cv.ok {
		report.record(s.reporter, d.Name(), m.Name, &modelgraph.ExtractionError{
			Entity:   d.Name(),
			Relation: m.Name,
			Err:      fmt.Errorf("re-invocation returned %T, not a relation", v),
		})
		return
	}
	edge, err := extract(d.Name(), m.Name, rel)
	if err != nil {
		report.record(s.reporter, d.Name(), m.Name, err)
		return
	}
	if err := b.AddEdge(d.Name(), m.Name, edge); err != nil {
		report.record(s.reporter, d.Name(), m.Name, err)
	}
}

// cacheKey derives a stable key from the registered model set and the
// exclusion configuration. Probe timeout and driver choice do not change
// the resulting graph and are deliberately left out.
func (s *Scanner) cacheKey() string {
	var sb strings.Builder
	for _, d := range s.registry.Descriptors() {
		fmt.Fprintf(&sb, "%s=%s;", d.Name(), d.Table())
	}
	keys := make([]string, 0, len(s.exclusions))
	for k := range s.exclusions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		methods := append([]string(nil), s.exclusions[k]...)
		sort.Strings(methods)
		fmt.Fprintf(&sb, "!%s=%s;", k, strings.Join(methods, ","))
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return "modelgraph:scan:v1:" + hex.EncodeToString(sum[:])
}
