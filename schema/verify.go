// Verification: checking whole documents against the finality rules
// without touching a caller's catalog.
package schema

import (
	"go.uber.org/zap"
)

// Violation records one rejected declaration and the error that
// rejected it.
type Violation struct {
	// Class is the declared name of the rejected class.
	Class string

	// Err is the rejection cause. Finality violations satisfy
	// errors.Is(Err, core.ErrFinality); declarations whose bases were
	// themselves rejected surface ErrUnknownBase.
	Err error
}

// Report summarizes one verification run.
type Report struct {
	// Checked counts every declaration in the document.
	Checked int

	// Accepted lists the classes the hierarchy admitted, in declaration
	// order.
	Accepted []string

	// Violations lists the rejected declarations, in declaration order.
	Violations []Violation

	// Finals maps each accepted class to its sealed member names, sorted;
	// classes without sealed members have no entry.
	Finals map[string][]string
}

// Clean reports whether the document produced no violations.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}

// VerifyOption configures optional behavior of Verify.
type VerifyOption func(*verifyOptions)

// verifyOptions holds configurable parameters for one Verify run.
type verifyOptions struct {
	log *zap.Logger
}

// defaultVerifyOptions returns the baseline configuration: a no-op logger.
func defaultVerifyOptions() verifyOptions {
	return verifyOptions{log: zap.NewNop()}
}

// WithLogger routes per-declaration decisions to log: accepted classes
// at Debug, rejected ones at Warn.
// Passing nil panics; use zap.NewNop() to silence logging explicitly.
func WithLogger(log *zap.Logger) VerifyOption {
	return func(o *verifyOptions) {
		if log == nil {
			panic("schema: WithLogger(nil)")
		}
		o.log = log
	}
}

// Verify checks every declaration of f against the finality rules and
// reports the outcome per class. Unlike Build it never fails fast on a
// violation: the offending declaration is recorded and skipped, so one
// run surfaces every violation the document contains. A declaration
// whose base was rejected earlier cascades as ErrUnknownBase.
//
// Classes are materialized into a private catalog; nothing the document
// declares escapes the run. A structurally invalid document is an
// error, not a violation.
func Verify(f *File, opts ...VerifyOption) (*Report, error) {
	// 1. Structural validation up front.
	if err := f.Validate(); err != nil {
		return nil, err
	}
	// 2. Apply optional settings.
	o := defaultVerifyOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Materialize each declaration, recording instead of aborting.
	cat := NewCatalog()
	rep := &Report{
		Checked: len(f.Classes),
		Finals:  make(map[string][]string),
	}
	for _, cd := range f.Classes {
		cls, err := buildClass(cat, cd)
		if err != nil {
			rep.Violations = append(rep.Violations, Violation{Class: cd.Name, Err: err})
			o.log.Warn("declaration rejected",
				zap.String("class", cd.Name),
				zap.Error(err))

			continue
		}
		if err = cat.Define(cls); err != nil {
			return nil, err
		}
		rep.Accepted = append(rep.Accepted, cd.Name)
		finals := cls.FinalNames()
		if len(finals) > 0 {
			rep.Finals[cd.Name] = finals
		}
		o.log.Debug("declaration accepted",
			zap.String("class", cd.Name),
			zap.Strings("final", finals))
	}

	return rep, nil
}
