// Package validate compares a formatted rendering against the original text
// it was produced from, measuring how much of the original content survived.
//
// Two checks are provided. CheckConformity is the full word-set comparison
// with a weighted score used by compliance reporting. CheckPreservation is
// the cheaper gate the formatting engine runs per element: content loss is
// never acceptable, so an element whose formatted text fails this check is
// reverted to its original content.
package validate
