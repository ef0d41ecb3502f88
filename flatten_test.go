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

package botroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sources(flat []*Pattern) []string {
	out := make([]string, len(flat))
	for i, p := range flat {
		out[i] = p.Source()
	}
	return out
}

func TestFlatten_PlainPatternsKeepOrder(t *testing.T) {
	table := Patterns("",
		Command("start", "a:start"),
		Callback(`^x$`, "a:x"),
		Message(`hi`, "a:hi"),
	)

	flat, err := Flatten(table, NewMapResolver())
	require.NoError(t, err)
	assert.Equal(t, []string{"start", `^x$`, `hi`}, sources(flat))
}

func TestFlatten_DepthFirstInOrder(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("shop.routes", Patterns("",
		Command("buy", "shop:buy"),
		Command("cart", "shop:cart"),
	))

	table := Patterns("",
		Command("start", "a:start"),
		Include("shop.routes"),
		Command("help", "a:help"),
	)

	flat, err := Flatten(table, res)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "buy", "cart", "help"}, sources(flat))
}

func TestFlatten_NamespacePropagation(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("shop.routes", Table{
		Command("buy", "shop:buy").Named("buy"),
		Command("sell", "shop:sell").Named("sell").WithNamespace("other"),
	})

	table := Table{Include("shop.routes").WithNamespace("ns")}

	flat, err := Flatten(table, res)
	require.NoError(t, err)
	require.Len(t, flat, 2)

	assert.Equal(t, "ns:buy", flat[0].FQName(), "missing namespace must be stamped")
	assert.Equal(t, "other:sell", flat[1].FQName(), "declared namespace must win")
}

func TestFlatten_NamespaceReachesNestedIncludes(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("outer.routes", Table{
		Include("inner.routes"), // no namespace of its own
	})
	res.RegisterTable("inner.routes", Table{
		Command("deep", "inner:deep").Named("deep"),
	})

	table := Table{Include("outer.routes").WithNamespace("ns")}

	flat, err := Flatten(table, res)
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "ns:deep", flat[0].FQName(),
		"include namespace must carry through nested includes")
}

func TestFlatten_CyclicIncludesTerminate(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("a.routes", Table{
		Command("a", "a:a"),
		Include("b.routes"),
	})
	res.RegisterTable("b.routes", Table{
		Command("b", "b:b"),
		Include("a.routes"),
	})

	flat, err := Flatten(Table{Include("a.routes")}, res)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sources(flat),
		"each table's direct patterns must appear exactly once")
}

func TestFlatten_DuplicateIncludeSkipped(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("shop.routes", Table{Command("buy", "shop:buy")})

	flat, err := Flatten(Table{
		Include("shop.routes"),
		Include("shop.routes"),
	}, res)
	require.NoError(t, err)
	assert.Equal(t, []string{"buy"}, sources(flat))
}

func TestFlatten_DefaultTableAttr(t *testing.T) {
	res := NewMapResolver()
	// Registered without an attribute; both spellings resolve the same table.
	res.RegisterTable("shop", Table{Command("buy", "shop:buy")})

	flat, err := Flatten(Table{Include("shop")}, res)
	require.NoError(t, err)
	assert.Equal(t, []string{"buy"}, sources(flat))

	flat, err = Flatten(Table{Include("shop:routes")}, res)
	require.NoError(t, err)
	assert.Equal(t, []string{"buy"}, sources(flat))
}

func TestFlatten_MissingTarget(t *testing.T) {
	_, err := Flatten(Table{Include("nowhere.routes")}, NewMapResolver())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableLoad)
}

func TestFlatten_TargetNotATable(t *testing.T) {
	res := NewMapResolver()
	res.Register("shop:routes", "not a table")

	_, err := Flatten(Table{Include("shop")}, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableLoad)
}

func TestFlatten_FailureIsFatal(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("good.routes", Table{Command("ok", "a:ok")})

	flat, err := Flatten(Table{
		Include("good.routes"),
		Include("missing.routes"),
	}, res)
	require.Error(t, err, "a broken include must fail the whole flatten")
	assert.Nil(t, flat, "no partial route table on failure")
}

func TestPatterns_NamespaceDirectChildrenOnly(t *testing.T) {
	res := NewMapResolver()
	res.RegisterTable("sub.routes", Table{
		Command("inner", "sub:inner").Named("inner"),
	})

	table := Patterns("ns",
		Command("direct", "a:direct").Named("direct"),
		Command("owned", "a:owned").Named("owned").WithNamespace("own"),
		Include("sub.routes"),
	)

	flat, err := Flatten(table, res)
	require.NoError(t, err)
	require.Len(t, flat, 3)

	assert.Equal(t, "ns:direct", flat[0].FQName())
	assert.Equal(t, "own:owned", flat[1].FQName(), "already namespaced entries are left untouched")
	assert.Equal(t, "inner", flat[2].FQName(),
		"Patterns must not namespace through includes; that rule belongs to the include itself")
}
