// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package batch

// ContinuationDecision tells the dispatcher whether to keep processing the
// remaining sub-requests after a classified failure.
type ContinuationDecision int

const (
	// Terminate stops the batch; remaining sub-requests are reported as
	// not processed.
	Terminate ContinuationDecision = iota

	// Continue proceeds to the next sub-request regardless of the failure.
	Continue
)

// ContinuationPolicy maps a failure's kind to a continuation decision. A
// policy is configured once per deployment and must be safe for concurrent
// use.
//
// [KindUnexpected] failures always terminate the batch; the dispatcher never
// consults the policy for them.
type ContinuationPolicy interface {
	Decide(kind ErrorKind) ContinuationDecision
}

// AlwaysContinuePolicy ignores failures and keeps processing.
type AlwaysContinuePolicy struct{}

// NewAlwaysContinuePolicy constructs the reference keep-going policy.
func NewAlwaysContinuePolicy() *AlwaysContinuePolicy {
	return &AlwaysContinuePolicy{}
}

// Decide implements [ContinuationPolicy]. It always returns [Continue].
func (p *AlwaysContinuePolicy) Decide(ErrorKind) ContinuationDecision {
	return Continue
}

// ConfigurablePolicy decides per kind from a table built at startup.
// Kinds absent from the table terminate the batch.
type ConfigurablePolicy struct {
	table map[ErrorKind]ContinuationDecision
}

// NewConfigurablePolicy constructs a policy from an explicit kind table.
// The table is copied; later mutation of the argument has no effect.
func NewConfigurablePolicy(table map[ErrorKind]ContinuationDecision) *ConfigurablePolicy {
	copied := make(map[ErrorKind]ContinuationDecision, len(table))
	for kind, decision := range table {
		copied[kind] = decision
	}
	return &ConfigurablePolicy{table: copied}
}

// Decide implements [ContinuationPolicy]. Unmapped kinds default to
// [Terminate].
func (p *ConfigurablePolicy) Decide(kind ErrorKind) ContinuationDecision {
	if decision, ok := p.table[kind]; ok {
		return decision
	}
	return Terminate
}
