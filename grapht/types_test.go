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

package grapht_test

import (
	"errors"

	"github.com/grouplens/lenskit-go/grapht"
)

type scorer interface {
	Score(item int) float64
}

type itemScorer struct{ damping float64 }

func (s *itemScorer) Score(int) float64 { return s.damping }

type userScorer struct{}

func (userScorer) Score(int) float64 { return 1 }

type normalizer interface {
	Normalize(float64) float64
}

type meanCenter struct{}

func (meanCenter) Normalize(v float64) float64 { return v }

// damping is a qualifier type.
type damping struct{}

// named is a qualifier type with distinguishable values.
type named string

// badQualifier cannot be compared.
type badQualifier struct{ parts []string }

// looseQualifier has a comparable type but may hold an uncomparable value.
type looseQualifier struct{ v interface{} }

func newItemScorer() *itemScorer { return &itemScorer{damping: 0.5} }

func newScorerOrError() (*itemScorer, error) { return nil, errors.New("great sadness") }

var (
	scorerType     = grapht.TypeOf[scorer]()
	itemScorerType = grapht.TypeOf[*itemScorer]()
	normalizerType = grapht.TypeOf[normalizer]()
	dampingType    = grapht.TypeOf[damping]()
	namedType      = grapht.TypeOf[named]()
)
