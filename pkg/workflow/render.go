package workflow

import (
	"fmt"
	"strings"
	"text/template"
)

// Variant selects which fields of a `JobSpec` the renderer honors.
type Variant int

const (
	// VariantExtended renders each job's runner image and its cloud
	// provider environment.
	VariantExtended Variant = iota

	// VariantSimple renders every job on the default runner image and never
	// renders an `env` block.
	VariantSimple
)

var variantNames = [...]string{
	VariantExtended: "extended",
	VariantSimple:   "simple",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// UnknownVariantErr is returned when a variant name is neither `simple` nor
// `extended`.
type UnknownVariantErr struct {
	Name string
}

func (err *UnknownVariantErr) Error() string {
	return fmt.Sprintf(
		"unknown variant `%s`: wanted `simple` or `extended`",
		err.Name,
	)
}

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return Variant(v), nil
		}
	}
	return 0, &UnknownVariantErr{Name: s}
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

const (
	DefaultName     = "Generated Workflow"
	DefaultRunsOn   = "ubuntu-latest"
	DefaultCheckout = "actions/checkout@v3"
)

// Renderer renders a `WorkflowSpec` to a GitHub Actions workflow document.
// Empty fields fall back to the package defaults.
type Renderer struct {
	Variant Variant

	// Name is the workflow's `name` field.
	Name string

	// DefaultRunsOn is used for every job in `VariantSimple` and for jobs
	// without a runner image in `VariantExtended`.
	DefaultRunsOn string

	// Checkout is the pinned checkout action each job's single step uses.
	Checkout string
}

// DefaultRenderer renders the extended variant with the package defaults.
var DefaultRenderer = Renderer{
	Variant:       VariantExtended,
	Name:          DefaultName,
	DefaultRunsOn: DefaultRunsOn,
	Checkout:      DefaultCheckout,
}

// Render renders `spec` with `DefaultRenderer`.
func Render(spec *WorkflowSpec) string {
	return DefaultRenderer.Render(spec)
}

// Render renders `spec`. The output depends only on `spec` and the
// renderer's fields.
func (r *Renderer) Render(spec *WorkflowSpec) string {
	var sb strings.Builder
	if err := workflowTemplate.Execute(&sb, r.document(spec)); err != nil {
		// the template only reads fields of `document`
		panic(err)
	}
	return sb.String()
}

type document struct {
	Name     string
	Checkout string
	Triggers []Trigger
	Jobs     []jobBlock
}

type jobBlock struct {
	Name   string
	RunsOn string
	Env    []envVar
	If     string
}

type envVar struct {
	Key   string
	Value string
}

func (r *Renderer) document(spec *WorkflowSpec) *document {
	doc := document{
		Name:     valueOr(r.Name, DefaultName),
		Checkout: valueOr(r.Checkout, DefaultCheckout),
		Triggers: spec.Triggers(),
		Jobs:     make([]jobBlock, len(spec.Jobs)),
	}
	defaultRunsOn := valueOr(r.DefaultRunsOn, DefaultRunsOn)
	for i := range spec.Jobs {
		job := &spec.Jobs[i]
		block := jobBlock{
			Name:   job.Name,
			RunsOn: defaultRunsOn,
			If:     condition(job.Triggers),
		}
		if r.Variant == VariantExtended {
			block.RunsOn = valueOr(job.RunsOn, defaultRunsOn)
			if job.HasEnv() {
				block.Env = env(job)
			}
		}
		doc.Jobs[i] = block
	}
	return &doc
}

func env(job *JobSpec) []envVar {
	var out []envVar
	if job.Cloud != CloudNone {
		out = append(out, envVar{"CLOUD_PROVIDER", string(job.Cloud)})
	}
	if job.AccessKeySecret != "" {
		out = append(out, envVar{"ACCESS_KEY", secret(job.AccessKeySecret)})
	}
	if job.SecretKeySecret != "" {
		out = append(out, envVar{"SECRET_KEY", secret(job.SecretKeySecret)})
	}
	return out
}

// secret renders a reference to the repository secret `name`.
func secret(name string) string {
	return fmt.Sprintf("${{ secrets.%s }}", name)
}

func condition(triggers []Trigger) string {
	clauses := make([]string, len(triggers))
	for i, t := range triggers {
		clauses[i] = fmt.Sprintf("github.event_name == '%s'", t)
	}
	return strings.Join(clauses, " || ")
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var workflowTemplate = template.Must(
	template.
		New("workflow").
		// use different delims so GH's ${{ secrets.XYZ }} syntax doesn't
		// collide
		Delims("{%", "%}").
		Parse(`name: {% .Name %}
on:
{% range .Triggers %}  {% . %}:
{% end %}jobs:
{% range .Jobs %}  {% .Name %}:
    runs-on: {% .RunsOn %}
{% if .Env %}    env:
{% range .Env %}      {% .Key %}: {% .Value %}
{% end %}{% end %}{% if .If %}    if: {% .If %}
{% end %}    steps:
      - uses: {% $.Checkout %}
{% end %}`),
)
