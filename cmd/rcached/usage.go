// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

var usage = `%s runs a resynthesis-result cache server.

It takes 1 argument, an address on which to serve.  Addresses
may either be in the form

	@path/to/somewhere

or

	host:port

The first form specifies a unix domain socket by a prefix '@'.

%s takes the following flags.

`
