// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSessionCookie is logged by the session middleware when the incoming
// request carries no session cookie at all. Callers can match against it
// with [errors.Is].
var ErrNoSessionCookie = errors.New("no `session` cookie")
