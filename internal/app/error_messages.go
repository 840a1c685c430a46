// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shared by the storefront's
// handlers.
//
// The benchmark client matches some of these byte for byte, so they must not
// be reworded.
package app

const (
	// MsgLoginWelcome is shown on a plain visit to the login page.
	MsgLoginWelcome = "ECサイトで爆買いしよう！！！！"

	// MsgLoginFailed is shown when the email is unknown or the password does
	// not match.
	MsgLoginFailed = "ログインに失敗しました"

	// MsgLoginRequired is shown when an action needs a logged-in user.
	MsgLoginRequired = "先にログインをしてください"

	// MsgInitializeFinished is the body of a successful reset.
	MsgInitializeFinished = "Finish"

	// MsgInternalServerError is written for every failure not mapped to a
	// view.
	MsgInternalServerError = "internal server error"
)
