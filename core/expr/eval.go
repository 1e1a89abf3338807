package expr

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/whatsmygrade/schema"
)

// percentPattern is the fast path for percent literals like "85%" or "72.5%".
// Matching expressions never reach the general evaluator.
var percentPattern = regexp.MustCompile(`^\d+(\.\d+)?%$`)

// Runtime value kinds. Sequences cover both tuple and list literals since
// the builtins treat them interchangeably.
type valueKind int

const (
	numberValue valueKind = iota
	sequenceValue
	unknownValue
)

// value is the evaluator's runtime representation.
type value struct {
	kind valueKind
	num  float64
	seq  []value
}

// Evaluate evaluates a grade file expression into a GradeValue. Any
// expression that cannot be parsed or evaluated under the restricted
// grammar fails with a UserError carrying the original expression text.
func Evaluate(raw string) (schema.GradeValue, error) {
	text := strings.TrimSpace(raw)

	if percentPattern.MatchString(text) {
		n, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
		if err != nil {
			return schema.GradeValue{}, invalidExpression(text)
		}
		return schema.Known(n / 100), nil
	}

	root, err := parse(text)
	if err != nil {
		return schema.GradeValue{}, invalidExpression(text)
	}
	result, err := eval(root)
	if err != nil {
		return schema.GradeValue{}, invalidExpression(text)
	}

	switch result.kind {
	case numberValue:
		return schema.Known(result.num), nil
	case unknownValue:
		return schema.Unknown(), nil
	default:
		// A bare list or tuple is not a grade.
		return schema.GradeValue{}, invalidExpression(text)
	}
}

// invalidExpression builds the canonical rejection error for an expression.
func invalidExpression(text string) *schema.UserError {
	return schema.NewUserError(fmt.Sprintf("Invalid expression %q", text))
}

// eval walks the AST and produces a runtime value.
func eval(n node) (value, error) {
	switch n := n.(type) {
	case numberNode:
		return value{kind: numberValue, num: n.value}, nil

	case nameNode:
		// The only bare identifier in the environment is "unknown".
		if n.name == "unknown" {
			return value{kind: unknownValue}, nil
		}
		return value{}, fmt.Errorf("name %q is not defined", n.name)

	case listNode:
		return evalSequence(n.items)

	case tupleNode:
		return evalSequence(n.items)

	case unaryNode:
		operand, err := eval(n.operand)
		if err != nil {
			return value{}, err
		}
		if operand.kind != numberValue {
			return value{}, fmt.Errorf("unary minus requires a number")
		}
		return value{kind: numberValue, num: -operand.num}, nil

	case binaryNode:
		left, err := eval(n.left)
		if err != nil {
			return value{}, err
		}
		right, err := eval(n.right)
		if err != nil {
			return value{}, err
		}
		// Arithmetic on the symbolic unknown is unsupported.
		if left.kind != numberValue || right.kind != numberValue {
			return value{}, fmt.Errorf("operator %q requires numbers", string(n.op))
		}
		switch n.op {
		case '+':
			return value{kind: numberValue, num: left.num + right.num}, nil
		case '-':
			return value{kind: numberValue, num: left.num - right.num}, nil
		case '*':
			return value{kind: numberValue, num: left.num * right.num}, nil
		default:
			return value{kind: numberValue, num: left.num / right.num}, nil
		}

	case callNode:
		return evalCall(n)

	default:
		return value{}, fmt.Errorf("unsupported expression node")
	}
}

func evalSequence(items []node) (value, error) {
	seq := make([]value, 0, len(items))
	for _, item := range items {
		v, err := eval(item)
		if err != nil {
			return value{}, err
		}
		seq = append(seq, v)
	}
	return value{kind: sequenceValue, seq: seq}, nil
}

// evalCall dispatches to one of the allow-listed builtin functions.
func evalCall(call callNode) (value, error) {
	args := make([]value, 0, len(call.args))
	for _, a := range call.args {
		v, err := eval(a)
		if err != nil {
			return value{}, err
		}
		args = append(args, v)
	}
	kwargs := make(map[string]value, len(call.kwargs))
	for name, kw := range call.kwargs {
		v, err := eval(kw)
		if err != nil {
			return value{}, err
		}
		kwargs[name] = v
	}

	switch call.fn {
	case "grade_parts":
		if len(kwargs) > 0 {
			return value{}, fmt.Errorf("grade_parts takes no keyword arguments")
		}
		return gradeParts(args)
	case "grade_multiple":
		return gradeMultiple(args, kwargs)
	case "percent":
		if len(args) != 1 || len(kwargs) > 0 {
			return value{}, fmt.Errorf("percent takes exactly one argument")
		}
		if args[0].kind != numberValue {
			return value{}, fmt.Errorf("percent requires a number")
		}
		return value{kind: numberValue, num: args[0].num / 100}, nil
	default:
		return value{}, fmt.Errorf("function %q is not defined", call.fn)
	}
}

// gradeParts sums (points_earned, points_possible) pairs and returns
// earned/possible. A zero possible total is not specially guarded and
// propagates as a non-finite number.
func gradeParts(args []value) (value, error) {
	var earned, possible float64
	for _, arg := range args {
		if arg.kind != sequenceValue || len(arg.seq) != 2 {
			return value{}, fmt.Errorf("grade_parts arguments must be (earned, possible) pairs")
		}
		if arg.seq[0].kind != numberValue || arg.seq[1].kind != numberValue {
			return value{}, fmt.Errorf("grade_parts pairs must be numeric")
		}
		earned += arg.seq[0].num
		possible += arg.seq[1].num
	}
	return value{kind: numberValue, num: earned / possible}, nil
}

// gradeMultiple averages a list of raw scores against a common maximum.
// Grades are sorted descending; use_best keeps only the top N, then
// drop_worst removes N entries from the tail of the already-trimmed list.
// A count of zero behaves as unset. An empty remainder scores 0.0.
func gradeMultiple(args []value, kwargs map[string]value) (value, error) {
	params := []string{"grades", "out_of", "use_best", "drop_worst"}
	bound, err := bindArgs("grade_multiple", params, args, kwargs)
	if err != nil {
		return value{}, err
	}

	gradesVal, ok := bound["grades"]
	if !ok || gradesVal.kind != sequenceValue {
		return value{}, fmt.Errorf("grade_multiple requires a sequence of grades")
	}
	outOfVal, ok := bound["out_of"]
	if !ok || outOfVal.kind != numberValue {
		return value{}, fmt.Errorf("grade_multiple requires a numeric out_of")
	}

	grades := make([]float64, 0, len(gradesVal.seq))
	for _, g := range gradesVal.seq {
		if g.kind != numberValue {
			return value{}, fmt.Errorf("grade_multiple grades must be numeric")
		}
		grades = append(grades, g.num)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(grades)))

	if useBest, err := optionalCount(bound, "use_best"); err != nil {
		return value{}, err
	} else if useBest > 0 && useBest < len(grades) {
		grades = grades[:useBest]
	}
	if dropWorst, err := optionalCount(bound, "drop_worst"); err != nil {
		return value{}, err
	} else if dropWorst > 0 {
		if dropWorst >= len(grades) {
			grades = nil
		} else {
			grades = grades[:len(grades)-dropWorst]
		}
	}

	if len(grades) == 0 {
		return value{kind: numberValue, num: 0.0}, nil
	}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	return value{kind: numberValue, num: sum / (outOfVal.num * float64(len(grades)))}, nil
}

// bindArgs binds positional then keyword arguments to named parameters.
func bindArgs(fn string, params []string, args []value, kwargs map[string]value) (map[string]value, error) {
	if len(args) > len(params) {
		return nil, fmt.Errorf("%s takes at most %d arguments", fn, len(params))
	}
	bound := make(map[string]value, len(params))
	for i, arg := range args {
		bound[params[i]] = arg
	}
	for name, v := range kwargs {
		valid := false
		for _, p := range params {
			if p == name {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("%s got an unexpected keyword argument %q", fn, name)
		}
		if _, dup := bound[name]; dup {
			return nil, fmt.Errorf("%s got multiple values for argument %q", fn, name)
		}
		bound[name] = v
	}
	return bound, nil
}

// optionalCount reads an optional integer-valued parameter, treating an
// absent or zero value as unset.
func optionalCount(bound map[string]value, name string) (int, error) {
	v, ok := bound[name]
	if !ok {
		return 0, nil
	}
	if v.kind != numberValue {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return int(v.num), nil
}
