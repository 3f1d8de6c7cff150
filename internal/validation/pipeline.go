package validation

import "github.com/VarunSharma3520/floatinput/internal/rx"

// Pipeline maps a stream of content snapshots into a status stream and a
// duplicate-free hint stream. It holds no view state.
type Pipeline struct {
	eval   *Evaluator
	status rx.Observable[Status]
	hint   rx.Observable[HintVisibility]
}

// NewPipeline wires the derived streams over content.
func NewPipeline(content rx.Observable[string], rules Rules, reporter Reporter) (*Pipeline, error) {
	eval, err := NewEvaluator(rules, reporter)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		eval:   eval,
		status: rx.Map(content, eval.Status),
		hint:   rx.DistinctUntilChanged(rx.Map(content, eval.Hint)),
	}, nil
}

// Status emits one status per content snapshot.
func (p *Pipeline) Status() rx.Observable[Status] {
	return p.status
}

// Hint emits only when the visibility actually changes.
func (p *Pipeline) Hint() rx.Observable[HintVisibility] {
	return p.hint
}

// Evaluator exposes the underlying evaluator for one-off checks.
func (p *Pipeline) Evaluator() *Evaluator {
	return p.eval
}
