// Package catalog loads and indexes the control catalog: the fixed set of
// security controls, grouped into domains, that an audit is assessed
// against. A catalog is immutable after load and safe for concurrent reads.
package catalog
