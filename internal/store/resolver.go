package store

import (
	"context"

	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/expr"
)

// Resolver evaluates stored definitions on demand. Values are cached for
// the lifetime of the resolver; create a new one after the store changes.
// A Resolver serves one evaluation at a time.
type Resolver struct {
	ctx          context.Context
	store        Store
	logger       *mdwlog.Logger
	logTolerance float64
	cache        map[string]expr.Value
	visiting     []string
}

// ResolverOptions configures the evaluation of stored definitions
type ResolverOptions struct {
	Logger       *mdwlog.Logger
	LogTolerance float64 // passed to expr.Options; 0 keeps the default
}

// NewResolver creates a resolver over st. ctx bounds every store lookup.
func NewResolver(ctx context.Context, st Store, opts ResolverOptions) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Resolver{
		ctx:          ctx,
		store:        st,
		logger:       logger.WithComponent("store-resolver"),
		logTolerance: opts.LogTolerance,
		cache:        make(map[string]expr.Value),
	}
}

// Resolve implements expr.Resolver. A definition that reaches itself through
// other definitions fails with a cyclic reference error naming the path.
func (r *Resolver) Resolve(name string) (expr.Value, bool, error) {
	if v, ok := r.cache[name]; ok {
		return v, true, nil
	}
	for i, n := range r.visiting {
		if n == name {
			path := append(append([]string{}, r.visiting[i:]...), name)
			return expr.Value{}, false, cycleError(path)
		}
	}
	r.visiting = append(r.visiting, name)
	defer func() { r.visiting = r.visiting[:len(r.visiting)-1] }()

	def, err := r.store.Get(r.ctx, name)
	if err != nil {
		return expr.Value{}, false, err
	}
	if def == nil {
		return expr.Value{}, false, nil
	}

	ev := expr.NewEvaluator(expr.Options{
		Logger:       r.logger,
		Resolver:     r,
		LogTolerance: r.logTolerance,
	})
	v, err := ev.EvaluateString(def.Expression)
	if err != nil {
		return expr.Value{}, false, err
	}

	r.logger.Debug("Definition resolved", mdwlog.Fields{
		"name":  name,
		"value": v.String(),
	})

	r.cache[name] = v
	return v, true, nil
}

// Dependencies returns the free names of a stored definition
func Dependencies(def *Definition) ([]string, error) {
	node, err := expr.Parse(def.Expression)
	if err != nil {
		return nil, err
	}
	return expr.FreeNames(node), nil
}

func cycleError(path []string) error {
	return errors.CyclicReference(errors.ModuleStore, "resolve", path)
}
