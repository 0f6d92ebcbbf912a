package filter

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Operator is a range query comparison understood by the mirror node.
type Operator string

const (
	GT  Operator = "gt"
	GTE Operator = "gte"
	LT  Operator = "lt"
	LTE Operator = "lte"
	EQ  Operator = "eq"
)

func ParseOperator(s string) (Operator, error) {
	switch op := Operator(strings.ToLower(s)); op {
	case GT, GTE, LT, LTE, EQ:
		return op, nil
	default:
		return "", errors.Errorf("unknown operator '%s'", s)
	}
}

// Invert returns the mirrored comparison: gt <-> lt, gte <-> lte.
func (op Operator) Invert() Operator {
	switch op {
	case GT:
		return LT
	case GTE:
		return LTE
	case LT:
		return GT
	case LTE:
		return GTE
	default:
		return op
	}
}

// Order is the sort order of a paged response.
type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(s)); o {
	case ASC, DESC:
		return o, nil
	default:
		return "", errors.Errorf("unknown order '%s'", s)
	}
}

func (o Order) Reverse() Order {
	if o == ASC {
		return DESC
	}
	return ASC
}

// Apply maps an operator expressed in ascending terms
// ("gt" means "after the key in table order") to the operator the backend
// expects for the given order.
func (o Order) Apply(op Operator) Operator {
	if o == DESC {
		return op.Invert()
	}
	return op
}

// KeyParam renders a range query value like "lt:1700000000.000000001".
// The operator is given in ascending terms and is inverted for descending order.
func KeyParam(op Operator, order Order, value string) string {
	return string(order.Apply(op)) + ":" + value
}

// SplitKeyParam is the reverse of KeyParam for an explicit (already applied) operator.
// A value without an operator prefix is treated as "eq".
func SplitKeyParam(param string) (Operator, string, error) {
	opStr, value, found := strings.Cut(param, ":")
	if !found {
		return EQ, param, nil
	}
	op, err := ParseOperator(opStr)
	if err != nil {
		return "", "", err
	}
	return op, value, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
