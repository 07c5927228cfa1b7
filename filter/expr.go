package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/s0up4200/onering/theone"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Record fields are not known at compile time, only helpers are
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether record matches. Unsupported records and runtime errors never match.
func (f *exprFilter) Evaluate(record any) bool {
	ok, err := f.Check(record)
	return err == nil && ok
}

// Check evaluates the filter and reports runtime errors
func (f *exprFilter) Check(record any) (bool, error) {
	var env map[string]any
	var name string

	switch r := record.(type) {
	case theone.Movie:
		env, name = movieEnvironment(r), r.Name
	case *theone.Movie:
		env, name = movieEnvironment(*r), r.Name
	case theone.Quote:
		env, name = quoteEnvironment(r), r.ID
	case *theone.Quote:
		env, name = quoteEnvironment(*r), r.ID
	default:
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "unsupported record type",
		}
	}

	// Helpers never shadow record fields
	for k, fn := range f.helpers {
		if _, exists := env[k]; !exists {
			env[k] = fn
		}
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Record:     name,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// contains, startsWith and endsWith are expr operators, so the
	// case-insensitive helpers use distinct names
	env["hasSubstr"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["words"] = func(str string) int {
		return len(strings.Fields(str))
	}
}

// movieEnvironment exposes a movie to expressions. Missing numbers are nil.
func movieEnvironment(movie theone.Movie) map[string]any {
	env := make(map[string]any, 24)

	fields := map[string]any{
		"Runtime":        derefInt(movie.RuntimeInMinutes),
		"Budget":         derefFloat(movie.BudgetInMillions),
		"BoxOffice":      derefFloat(movie.BoxOfficeRevenueInMillions),
		"Nominations":    derefInt(movie.AcademyAwardNominations),
		"Wins":           derefInt(movie.AcademyAwardWins),
		"RottenTomatoes": derefFloat(movie.RottenTomatoesScore),
	}
	maps.Copy(env, fields)

	env["Movie"] = movie
	env["ID"] = movie.ID
	env["Name"] = movie.Name
	env["has"] = func(field string) bool {
		v, ok := fields[field]
		return ok && v != nil
	}

	return env
}

func quoteEnvironment(quote theone.Quote) map[string]any {
	env := make(map[string]any, 16)

	env["Quote"] = quote
	env["ID"] = quote.ID
	env["Dialog"] = quote.Dialog
	env["Movie"] = quote.Movie
	env["Character"] = quote.Character
	env["has"] = func(field string) bool {
		switch field {
		case "Dialog":
			return quote.Dialog != ""
		case "Movie":
			return quote.Movie != ""
		case "Character":
			return quote.Character != ""
		}
		return false
	}

	return env
}

func derefInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
