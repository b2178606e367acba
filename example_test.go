// Copyright (c) 2024 The LensKit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package lenskit_test

import (
	"fmt"
	"os"

	lenskit "github.com/grouplens/lenskit-go"
	"github.com/grouplens/lenskit-go/grapht"
	"github.com/grouplens/lenskit-go/lkevent"
)

func Example() {
	cfg := lenskit.New(grapht.WithLogger(&lkevent.ConsoleLogger{W: os.Stdout}))

	lenskit.Bind[ItemScorer](cfg).To(grapht.TypeOf[*ItemItemScorer]())
	lenskit.Set[NeighborhoodSize](cfg).ToInstance(20)

	within := lenskit.Within[*ItemItemScorer](cfg)
	lenskit.Bind[Normalizer](within).To(grapht.TypeOf[MeanCenter]())

	if err := cfg.Err(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// [LensKit] BIND	/	lenskit_test.ItemScorer => type *lenskit_test.ItemItemScorer
	// [LensKit] BIND	/	[lenskit_test.NeighborhoodSize]int => instance 20
	// [LensKit] WITHIN	*lenskit_test.ItemItemScorer
	// [LensKit] BIND	*lenskit_test.ItemItemScorer	lenskit_test.Normalizer => type lenskit_test.MeanCenter
}

func ExampleCoerce() {
	// The engine's own contexts are wrapped.
	wrapped := lenskit.Coerce(grapht.New())
	fmt.Println(wrapped != nil)

	// A Configuration already is a ConfigContext and is used as is.
	cfg := lenskit.New()
	fmt.Println(lenskit.Coerce(cfg) == lenskit.ConfigContext(cfg))

	// Output:
	// true
	// true
}
