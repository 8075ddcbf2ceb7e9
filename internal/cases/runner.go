package cases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/config"
	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/internal/score"
	"github.com/AndreyAkinshin/dictmatch/internal/unordered"
)

// Runner evaluates cases under shared settings.
type Runner struct {
	config *config.Config
	logger *zap.Logger
}

// NewRunner creates a runner. A nil cfg uses config.Default and a nil logger
// discards log output.
func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Comparison == nil {
		withDefaults := *cfg
		withDefaults.Comparison = config.Default().Comparison
		cfg = &withDefaults
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{config: cfg, logger: logger}
}

// Run evaluates cases in order. A failing or erroring case does not stop the
// run; a cancelled context does, returning the results gathered so far.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for i := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r.RunCase(&cases[i]))
	}

	s := Summarize(results)
	r.logger.Info("Run finished",
		zap.Int("total", s.Total),
		zap.Int("passed", s.Passed),
		zap.Int("failed", s.Failed),
		zap.Int("errored", s.Errored))
	return results, nil
}

// RunCase evaluates a single case.
func (r *Runner) RunCase(c *Case) Result {
	start := time.Now()
	res := r.evaluate(c)
	res.Duration = time.Since(start)

	l := r.logger.With(zap.String("case", c.Name), zap.String("kind", string(c.Kind)))
	switch {
	case res.Err != nil:
		l.Error("Case could not be evaluated", zap.Error(res.Err))
	case res.Passed:
		l.Debug("Case passed", zap.Duration("duration", res.Duration))
	default:
		l.Info("Case failed", zap.Int("score", res.Score), zap.Duration("duration", res.Duration))
	}
	return res
}

func (r *Runner) evaluate(c *Case) Result {
	res := Result{Case: c}
	cmp := r.config.Comparison

	name := cmp.ValueComparator
	if c.ValueComparator != "" {
		name = c.ValueComparator
	}
	values, err := compare.LookupComparator(name, cmp.ToleranceMode, cmp.FloatTolerance, cmp.NaNEqualsNaN)
	if err != nil {
		res.Err = errors.CaseError(c.Name, string(c.Kind), errors.Config(err.Error()))
		return res
	}

	weights := r.weights(c)
	reportAll := cmp.ReportAll || c.ReportAll

	switch c.Kind {
	case KindMatchAll:
		actual, _ := c.Actual.([]any)
		m := unordered.Matcher{
			Weights:   weights,
			Values:    values,
			ReportAll: reportAll,
			MaxDepth:  cmp.MaxDepth,
		}
		records, result, err := m.Compare(actual, c.Items)
		if err != nil {
			res.Err = errors.CaseError(c.Name, string(c.Kind), err)
			return res
		}
		res.Passed = result.Passed
		res.Score = result.Cost
		res.Records = records
		res.MatchAll = &result

	default:
		comparer := compare.Comparer{
			Filter: compare.Filter{
				IgnoreKeys: c.IgnoreKeys,
				OnlyKeys:   c.OnlyKeys,
				ReportAll:  reportAll,
			},
			Values:   values,
			MaxDepth: cmp.MaxDepth,
		}
		node := comparer.Compare(nil, c.Expected, c.Actual)
		res.Passed = node.Passed()
		res.Score = score.Score(node, weights)
		res.Rows = compare.Flatten(node)
	}

	return res
}

// weights merges the configured weights with the case's own, which win.
func (r *Runner) weights(c *Case) score.Weights {
	if len(r.config.Weights) == 0 {
		return c.Weights
	}
	w := make(score.Weights, len(r.config.Weights)+len(c.Weights))
	for k, v := range r.config.Weights {
		w[k] = v
	}
	for k, v := range c.Weights {
		w[k] = v
	}
	return w
}
