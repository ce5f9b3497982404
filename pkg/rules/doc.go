// Package rules holds the declarative rule table for agent behavior settings
// and the matcher that evaluates its predicates.
//
// # Rule Store
//
// A rule set has two collections. Conflicts are grouped by category and list
// mutually exclusive pairs of predicates; a pair fires when both sides hold.
// Warnings list a combination of predicates that fires only when all of them
// hold.
//
//	{
//	  "conflicts": [{
//	    "category": "approval_vs_automation",
//	    "description": "Manual approval cannot be combined with instant replies",
//	    "mutually_exclusive": [["approvalRequired:true", "responseTiming:immediate-auto"]]
//	  }],
//	  "warnings": [{
//	    "combination": ["dailyLimits.comments:>200"],
//	    "message": "High comment volume can trigger platform spam filters",
//	    "severity": "high"
//	  }]
//	}
//
// Rule files can be JSON, YAML or TOML with the same shape. They are checked
// against an embedded JSON schema before use.
//
// # Predicate Grammar
//
//   - `field:value` - the field equals value
//   - `field:>value` - the field is a number strictly greater than value
//   - `field` - the field is set to a truthy value
//
// Predicates are parsed once when a rule set is compiled. A predicate that
// cannot be satisfied (no field name, non-numeric threshold) never holds;
// it does not produce an error. Lint reports such predicates for rule
// authors.
package rules
