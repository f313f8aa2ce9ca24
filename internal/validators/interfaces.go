// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw request parts (path parameters, query,
// body, headers) into typed, constraint-checked values.
//
// Every part goes through the same steps: raw input is rendered as a JSON
// object, forbidden keys are rejected, the object is decoded into a static
// struct, defaults are applied, and declarative `validate` tags are checked.
// A failure at any step yields a [*ValidationError] listing every violation.
//
// Usage patterns:
//  1. Declare a [Schema] per request part and route.
//  2. Call [Schema.ParseRequest] in the transport layer.
//  3. Store the coerced value with [WithInput] and read it back with
//     [InputFromContext] in the endpoint.
package validators

// Normalizer is implemented by request types that fill defaults or trim
// values after decoding and before constraint checks run.
type Normalizer interface {
	Normalize()
}
