// Package reference parses container image references of the form
// "name[:tag][@digest]" in a single forward pass over the input, without
// copying it and without regular expressions.
//
// The grammar is the docker/OCI distribution reference grammar:
//
//	reference          ::= name (":" tag)? ("@" digest)?
//	name               ::= (domain "/")? path
//	domain             ::= host (":" port-number)?
//	host               ::= domain-name | IPv4address | "[" IPv6address "]"
//	domain-name        ::= domain-component ("." domain-component)*
//	domain-component   ::= [a-zA-Z0-9] | [a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]
//	port-number        ::= [0-9]+
//	path               ::= path-component ("/" path-component)*
//	path-component     ::= [a-z0-9]+ (separator [a-z0-9]+)*
//	separator          ::= [_.] | "__" | "-"+
//	tag                ::= [\w][\w.-]{0,127}
//	digest             ::= algorithm ":" encoded
//	algorithm          ::= algorithm-component (algorithm-separator algorithm-component)*
//	algorithm-component ::= [A-Za-z][A-Za-z0-9]*
//	algorithm-separator ::= [+._-]
//	encoded            ::= [a-fA-F0-9]{32,}
//
// The segment before the first "/" is ambiguous between a registry host and
// the first path component. It is committed as a domain exactly when its raw
// bytes say so: it carries a "." or a ":port", it is the literal "localhost",
// or it is a bracketed IPv6 address. Everything else is a path component, so
// "foo/bar" names the repository "foo/bar" with no registry attached.
// Callers decide what an absent domain means; this package never fills in a
// default.
//
// Parsed fields are sub-slices of the one input string. A Reference is a
// fixed-size value that is cheap to copy and safe for concurrent use.
package reference
