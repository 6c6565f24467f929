// Copyright 2025 Naren Yellavula
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
//
// The quotations are taken from the public domain and attributed to
// respective creators.

package main

import (
	"math/rand"
)

var quotes = []string{
	"Everything is a trade-off",
	"When in doubt, use brute force",
	"We already have persistent objects, they're called files",
	"Caches aren't architecture, they're just optimization",
	"Premature optimization is the root of all evil",
	"Avoiding complexity reduces bugs",
	"Trust intuition, but verify",
	"When stuck, talk to the duck",
	"Write boring code to save yourself from debugging later",
	"Don't document bad code - rewrite it.",
	"A tree that never mutates never lies about its past",
	"If you optimize everything, you will always be unhappy",
	"Some problems are better evaded than solved",
	"Prototype, then polish. Get it working before you optimize it",
	"Release early. Release often. And listen to your customers",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	// If the list is empty, return empty string.
	if len(list) == 0 {
		return ""
	}
	// Generate a random index and return the element at that index.
	randomIndex := rand.Intn(len(list))
	return list[randomIndex]
}

func GetRandomQuote() string {
	return pickRandomString(quotes)
}
