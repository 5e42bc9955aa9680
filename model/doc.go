// Package model defines the shared value types used throughout the typeset
// library: document elements produced by structure detection, style templates
// produced by the resolver, and the renderer-neutral formatted blocks produced
// by the formatting engine.
//
// The types in this package are plain data. They carry no behavior beyond
// small accessors and are safe to share across goroutines once constructed;
// the pipeline treats them as immutable after creation, with the single
// exception of an element's Insight, which may be attached after detection.
package model
