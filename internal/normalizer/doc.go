// Package normalizer turns the items returned by a picker into the ordered
// results delivered to the host.
//
// Photos are scaled by a [resize.Resizer] and encoded by an
// [encoder.Encoder]; videos go straight to the encoder. Items are processed
// strictly in picker order and the first failure discards the whole pass.
package normalizer
