// Package gbln reads and writes GBLN, a typed data interchange format.
//
// GBLN looks like JSON with types. Numbers may carry a width suffix and
// strings a length bound, and both survive a round trip:
//
//	{"id":42u32,"name":"api"s16,"ratio":0.5f32,"tags":["a","b"]}
//
// Unsuffixed integers are i64 (u64 past the signed range) and unsuffixed
// floats f64. Source files may use bare keys and # comments:
//
//	# service settings
//	{
//	  port: 8080u16,
//	  debug: false
//	}
//
// The functions of this package cover the common calls; the value tree
// lives in package ir, the settings in config, and the lower layers in
// token, parse, encode and codec. Session offers the same calls for hosts
// that read failures from a last-error channel.
package gbln
