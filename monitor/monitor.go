// Copyright (c) 2021 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monitor publishes live container statistics as expvars, so a
// process embedding the containers can expose their shape over the
// standard /debug/vars endpoint.
package monitor

import (
	"encoding/json"
	"expvar"
	"fmt"
	"strings"
)

// Publish registers sample's result under name; sample is typically a
// closure over a container's Stats method. The container is sampled on
// every read of the expvar, so the published value tracks it live.
// Publish panics if name is already registered, like expvar.Publish.
func Publish(name string, sample func() interface{}) {
	expvar.Publish(name, expvar.Func(sample))
}

// VarsToString gives a string with all exported variables
// the returned string is in a pretty format.
func VarsToString() string {
	sb := strings.Builder{}
	sb.WriteString("{\n")
	first := true
	expvar.Do(func(kv expvar.KeyValue) {
		if !first {
			sb.WriteString(",\n")
		}
		first = false
		sb.WriteString(fmt.Sprintf("\t%q: %s", kv.Key, kv.Value))
	})
	sb.WriteString("\n}")
	return sb.String()
}

// Var returns the JSON rendering of the expvar registered under name, or
// the empty string if none is.
func Var(name string) string {
	v := expvar.Get(name)
	if v == nil {
		return ""
	}
	// Round-trip to verify the payload renders as JSON, matching what
	// /debug/vars would serve.
	var check json.RawMessage
	s := v.String()
	if err := json.Unmarshal([]byte(s), &check); err != nil {
		return ""
	}
	return s
}
