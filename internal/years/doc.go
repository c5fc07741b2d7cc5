// Package years converts between textual copyright year specifications and
// sorted year sets.
//
// It offers Parse for extracting years and inclusive ranges from free text
// and Render for compacting a sorted year set back into the canonical
// comma-and-range notation used in copyright notices.
package years
