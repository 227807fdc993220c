// Package filter selects quality definitions with AIP-160 filter expressions
// such as `category = "Negative" AND limit > 1`.
package filter

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
)

// FieldType describes a supported filter field type.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
)

// Fields defines filterable fields and their types.
type Fields map[string]FieldType

// QualityFields are the fields a quality filter may reference.
var QualityFields = Fields{
	"name":         FieldString,
	"category":     FieldString,
	"cost":         FieldInt,
	"limit":        FieldInt,
	"effect_count": FieldInt,
}

// Parse parses an AIP-160 filter expression for the provided fields. A blank
// filter parses to nil, which matches everything.
func Parse(filterStr string, fields Fields) (*expr.Expr, error) {
	if strings.TrimSpace(filterStr) == "" {
		return nil, nil
	}

	decls, err := declarations(fields)
	if err != nil {
		return nil, err
	}

	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeContentInvalidFilter,
			"parse filter", map[string]string{"Filter": filterStr}, err)
	}

	return filter.CheckedExpr.Expr, nil
}

// Qualities returns the definitions matching filterStr, in input order.
func Qualities(defs []shadowrun.QualityDefinition, filterStr string) ([]shadowrun.QualityDefinition, error) {
	parsed, err := Parse(filterStr, QualityFields)
	if err != nil {
		return nil, err
	}
	out := make([]shadowrun.QualityDefinition, 0, len(defs))
	for _, def := range defs {
		match, err := Evaluate(parsed, QualityResolver(def))
		if err != nil {
			return nil, apperrors.WrapWithMetadata(apperrors.CodeContentInvalidFilter,
				"evaluate filter", map[string]string{"Filter": filterStr}, err)
		}
		if match {
			out = append(out, def)
		}
	}
	return out, nil
}

// QualityResolver resolves QualityFields against one definition.
func QualityResolver(def shadowrun.QualityDefinition) Resolver {
	return func(name string) (any, bool) {
		switch name {
		case "name":
			return def.Name, true
		case "category":
			return string(def.Category), true
		case "cost":
			return def.Cost, true
		case "limit":
			return def.MaxInstances(), true
		case "effect_count":
			return len(def.Effects), true
		default:
			return nil, false
		}
	}
}

func declarations(fields Fields) (*filtering.Declarations, error) {
	decls := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	for name, kind := range fields {
		switch kind {
		case FieldString:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeString))
		case FieldInt:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeInt))
		default:
			return nil, fmt.Errorf("unsupported field type for %s", name)
		}
	}

	return filtering.NewDeclarations(decls...)
}
