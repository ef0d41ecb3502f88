// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package telegram adapts Telegram Bot API updates to the router's
// update interface. It extracts features only; polling and sending stay
// with the caller (see examples/02-telegram-bot for a full loop).
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rivaas.dev/botroute"
)

// Wrap exposes a Telegram update to the dispatcher. The command token
// comes from message text starting with "/"; callback data from the
// attached callback query; message text from the message regardless of
// any leading slash.
func Wrap(u tgbotapi.Update) botroute.Update {
	return wrapped{u}
}

// Unwrap returns the raw Telegram update behind an Update produced by
// Wrap, so handlers can reach chat IDs and reply.
func Unwrap(u botroute.Update) (tgbotapi.Update, bool) {
	w, ok := u.(wrapped)
	if !ok {
		return tgbotapi.Update{}, false
	}
	return w.u, true
}

type wrapped struct {
	u tgbotapi.Update
}

func (w wrapped) CommandToken() (string, bool) {
	if w.u.Message == nil {
		return "", false
	}
	return botroute.ParseCommand(w.u.Message.Text)
}

func (w wrapped) CallbackData() (string, bool) {
	if w.u.CallbackQuery == nil || w.u.CallbackQuery.Data == "" {
		return "", false
	}
	return w.u.CallbackQuery.Data, true
}

func (w wrapped) MessageText() (string, bool) {
	if w.u.Message == nil || w.u.Message.Text == "" {
		return "", false
	}
	return w.u.Message.Text, true
}
