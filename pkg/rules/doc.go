// Package rules provides a declarative form-field validation engine built
// around immutable rule sets and a pure evaluation function.
//
// A RuleSet describes the constraints for one named field: a required flag,
// an optional full-match pattern, and optional length bounds, together with
// the human-readable message for each possible violation. Evaluate applies
// the checks in a fixed order and stops at the first failing check, so a
// field always reports exactly one violation at a time. A Set groups the
// rule sets of a whole form and evaluates every field without
// short-circuiting, aggregating failures into a ValidationErrors value that
// satisfies the error interface.
//
// # Architecture
//
// Rule tables are constructed once at startup, either in code via NewSet or
// from a YAML document via LoadSet, and are never mutated afterwards. The
// engine itself holds no state: Evaluate is a pure function of its inputs,
// safe for concurrent use, and never panics on missing rules. A constraint
// that is absent from a rule set is treated as "no constraint", and a field
// name with no registered rule set is always considered valid.
//
// Length bounds use an effective length: for telephone-typed fields only the
// digit characters are counted, so "+1 (234) 567-8900" measures 11, not 17.
// All other fields measure their trimmed rune count.
//
// # Usage
//
//	set := rules.MustNewSet(
//	    rules.Field{Name: "email", Type: rules.FieldTypeEmail, Rules: rules.RuleSet{
//	        Required:  true,
//	        Pattern:   regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
//	        MaxLength: 254,
//	        Messages: map[rules.Violation]string{
//	            rules.ViolationRequired:  "Email is required",
//	            rules.ViolationPattern:   "Please enter a valid email address",
//	            rules.ViolationMaxLength: "Email must not exceed 254 characters",
//	        },
//	    }},
//	)
//
//	res := set.EvaluateField("email", "user@example.com")
//	if !res.Valid {
//	    // res.Violation tells which check failed, res.Message is display-ready
//	}
//
//	if err := set.Evaluate(values); err != nil {
//	    verrs := rules.ExtractValidationErrors(err)
//	    // one entry per failing field, all fields evaluated
//	}
package rules
