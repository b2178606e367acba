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

// Package lenskit configures the components of a recommender.
//
// A configuration is a set of bindings: which implementation, instance or
// provider satisfies a contract type, optionally restricted by a qualifier
// and by the components it is used within. Bindings are recorded by the
// grapht engine; this package puts a richer interface, ConfigContext, in
// front of it.
//
// # Configuring
//
//	cfg := lenskit.New()
//	lenskit.Bind[ItemScorer](cfg).To(grapht.TypeOf[*ItemItemScorer]())
//	lenskit.Set[NeighborhoodSize](cfg).ToInstance(20)
//
//	within := lenskit.Within[*ItemItemScorer](cfg)
//	lenskit.Bind[VectorNormalizer](within).To(grapht.TypeOf[*MeanCenter]())
//
// # Contexts from elsewhere
//
// Any grapht.Context, however it was obtained, can be used as a
// ConfigContext through Coerce. Contexts that already implement
// ConfigContext are returned as they are; others are wrapped, and every
// context a wrapper narrows to is coerced the same way.
//
// # Building
//
// Configuration.Apply installs the bindings into a dig container, which
// constructs the components.
package lenskit
