// Package fields models checkout field descriptors and the ordered,
// sectioned collection a checkout form renders from. Descriptors carry a
// closed set of kinds and named attributes; Merge and Reorder keep each
// section sorted by ascending priority with ties resolved by insertion order,
// so the order in which fields are declared never decides where they render.
package fields
