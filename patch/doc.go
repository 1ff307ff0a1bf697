// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to GBLN values.
//
// Patches run on the JSON form of a document, which has no widths, so
// results are reconciled with the original document: a value replaced at
// an existing path keeps the old width or string bound when it fits.
//
//	doc:    {port:80u16,name:"api"s8}
//	patch:  [{"op":"replace","path":"/port","value":8080}]
//	result: {port:8080u16,name:"api"s8}
package patch
