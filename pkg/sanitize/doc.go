// Package sanitize provides the input-cleaning helpers that precede form
// validation: whitespace trimming and collapsing, unicode normalisation,
// e-mail and phone normalisation, and HTML stripping for free-text fields
// that are rendered back into markup.
//
// All helpers are small pure functions over strings. None of them returns an
// error; on malformed input they fall back to a safe result, usually the
// input itself. The higher-order Apply and Compose helpers build
// sanitisation pipelines:
//
//	clean := sanitize.Compose(
//	    sanitize.Trim,
//	    sanitize.CollapseWhitespace,
//	    sanitize.NormalizeUnicode,
//	)
//
// The package is stateless and safe for concurrent use.
package sanitize
