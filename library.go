package gsw

import (
	"github.com/oceanum/gsw/broadcast"
	"github.com/oceanum/gsw/kernel"
	"github.com/oceanum/gsw/shape"
)

// Library is the public operation surface: one method per TEOS-10
// property computation, all sharing the reconcile/dispatch/reshape
// path in the broadcast package. A Library is immutable after New and
// safe for concurrent use; no state persists across calls.
type Library struct {
	k    kernel.Set
	disp broadcast.Options
}

// New builds a Library around an injected kernel set. The set must be
// complete (kernel.ErrIncomplete otherwise), so no operation can
// observe a missing kernel mid-call. nil opts selects DefaultOptions.
func New(k kernel.Set, opts *Options) (*Library, error) {
	if err := k.Complete(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return &Library{k: k, disp: broadcast.Options{Workers: o.Workers}}, nil
}

// mapN reconciles the arguments against the primary and dispatches an
// element-wise kernel; the output carries the primary's shape.
func (l *Library) mapN(fn kernel.Func, primary shape.Value, rest ...shape.Value) shape.Value {
	return broadcast.Map(broadcast.Reconcile(primary, rest...), fn, &l.disp)
}
