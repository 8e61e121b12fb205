package workflow

// WorkflowSpec is the configuration collected for a single workflow.
type WorkflowSpec struct {
	// GlobalTriggers holds the workflow-level triggers in insertion order
	// without duplicates.
	GlobalTriggers []Trigger

	// Jobs holds the jobs in collection order.
	Jobs []JobSpec
}

// Triggers returns the union of the global triggers and every job's
// triggers in first-seen order. Each trigger appears once.
func (spec *WorkflowSpec) Triggers() []Trigger {
	out := appendUnique(nil, spec.GlobalTriggers...)
	for i := range spec.Jobs {
		out = appendUnique(out, spec.Jobs[i].Triggers...)
	}
	return out
}

// Builder accumulates jobs and global triggers for a `WorkflowSpec`.
type Builder struct {
	triggers []Trigger
	jobs     []JobSpec
}

// NewBuilder creates an empty `Builder`.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithTrigger adds global triggers. Triggers that were already added are
// ignored.
func (b *Builder) WithTrigger(triggers ...Trigger) *Builder {
	b.triggers = appendUnique(b.triggers, triggers...)
	return b
}

// WithJob appends a copy of `job`.
func (b *Builder) WithJob(job JobSpec) *Builder {
	b.jobs = append(b.jobs, job.clone())
	return b
}

// Len returns the number of jobs added so far.
func (b *Builder) Len() int { return len(b.jobs) }

// Build returns a `WorkflowSpec` holding copies of the accumulated data, so
// the builder may keep being used without affecting the result.
func (b *Builder) Build() *WorkflowSpec {
	spec := &WorkflowSpec{
		GlobalTriggers: append([]Trigger(nil), b.triggers...),
		Jobs:           make([]JobSpec, len(b.jobs)),
	}
	for i, job := range b.jobs {
		spec.Jobs[i] = job.clone()
	}
	return spec
}
