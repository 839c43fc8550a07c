package qd

import "github.com/klauspost/cpuid/v2"

// UseFMA selects the two_prod implementation used throughout this package:
// when true, two_prod computes its correction term with a single fused
// multiply-add (math.FMA); when false it falls back to the Dekker splitting
// path (split + four cross products). The two paths agree to within one ulp
// of the extended significand; results computed with different settings of
// UseFMA are not guaranteed to be bit-identical.
//
// The zero-value default is derived from the host's reported hardware
// support for FMA3, matching the corpus convention of gating code paths on
// runtime CPU feature detection rather than build tags. Targets that lack a
// usable FMA instruction (notably pure-wasm backends, where cpuid reports no
// usable feature set) fall back to the Dekker path automatically; callers
// may also force either path explicitly before any arithmetic runs.
var UseFMA = cpuid.CPU.Supports(cpuid.FMA3)
