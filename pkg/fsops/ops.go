// Package fsops implements the tree operations an installer needs when
// deploying files: directory preparation with permission hardening,
// recursive copy with extension exclusion, recursive deletion, and
// recursive pattern matching.
//
// Every bulk operation is best-effort: individual failures are suppressed
// and reported only through a status return the caller may inspect or
// ignore. The single exception is file copying, which surfaces a
// *CopyError after its retry fails. These operations run during upgrades,
// where aborting halfway is worse than an incomplete cleanup.
package fsops

// Ops bundles the tree operations with an injected Policy and an optional
// permission Advisor.
type Ops struct {
	policy  Policy
	advisor Advisor
}

// New creates the toolkit with the given policy. advisor may be nil.
func New(policy Policy, advisor Advisor) *Ops {
	return &Ops{
		policy:  policy,
		advisor: advisor,
	}
}

// NewDefault creates the toolkit with DefaultPolicy and no advisor.
func NewDefault() *Ops {
	return New(DefaultPolicy(), nil)
}

// Policy returns the policy the toolkit was constructed with.
func (o *Ops) Policy() Policy {
	return o.policy
}

func (o *Ops) advice(root string) string {
	if o.advisor == nil {
		return ""
	}
	return o.advisor.PermissionAdvice(root)
}
