// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRenderingView is returned when an HTML view cannot be executed.
var ErrRenderingView = errors.New("error rendering view")
